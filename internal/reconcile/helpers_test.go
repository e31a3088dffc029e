package reconcile

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const (
	botLogin      = "mergebot"
	projectNumber = 5
	doneColumn    = "Recently Merged"
	prNodeID      = "PR_kwDOAAAB"
)

// mapResolver resolves names to IDs via a fixed mapping.
type mapResolver map[string]string

func (m mapResolver) LabelID(_ context.Context, name string) (string, error) {
	return m.lookup(name)
}

func (m mapResolver) ColumnID(_ context.Context, name string) (string, error) {
	return m.lookup(name)
}

func (m mapResolver) lookup(name string) (string, error) {
	id, exists := m[name]
	if !exists {
		return "", fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return id, nil
}

var testIDs = mapResolver{
	"bug":             "L_bug",
	"enhancement":     "L_enhancement",
	"needs-review":    "L_needs-review",
	"approved":        "L_approved",
	"Needs Review":    "C_needs-review",
	"Waiting":         "C_waiting",
	"Recently Merged": "C_recently-merged",
}

// testCodec stores the tag in front of the status: "<!--tag-->status".
type testCodec struct{}

func (testCodec) Render(c *ResponseComment) string {
	return "<!--" + c.Tag + "-->" + c.Status
}

func (testCodec) Parse(body string) (tag, status string, ok bool) {
	if !strings.HasPrefix(body, "<!--") {
		return "", "", false
	}

	end := strings.Index(body, "-->")
	if end < 0 {
		return "", "", false
	}

	return body[len("<!--"):end], body[end+len("-->"):], true
}

func botComment(id, tag, status string) *Comment {
	return &Comment{
		ID:     id,
		Author: botLogin,
		Body:   testCodec{}.Render(&ResponseComment{Tag: tag, Status: status}),
	}
}

func testConfig() *Config {
	return &Config{
		RepositoryOwner:       "simplesurance",
		Repository:            "mergebot",
		BotLogin:              botLogin,
		ProjectNumber:         projectNumber,
		DoneColumn:            doneColumn,
		DeleteIfNotPostedTags: []string{"merge-offer", "stale-ping"},
	}
}

func newTestReconciler(t *testing.T, cfg *Config, mutator Mutator, rest RESTCaller) *Reconciler {
	t.Helper()

	t.Cleanup(zap.ReplaceGlobals(zaptest.NewLogger(t).Named(t.Name())))

	return NewReconciler(cfg, testIDs, testIDs, testCodec{}, mutator, rest)
}

func newTestPR() *PullRequest {
	return &PullRequest{
		ID:         prNodeID,
		Number:     42,
		Title:      "Add foo types",
		HeadRefOid: "0d1f5e3c8a7b",
		Author:     "alice",
	}
}
