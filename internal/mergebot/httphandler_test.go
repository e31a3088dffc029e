package mergebot

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplesurance/mergebot/internal/actions"
	"github.com/simplesurance/mergebot/internal/reconcile"
)

func postReconcile(bot *testBot, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reconcile", strings.NewReader(body))
	rec := httptest.NewRecorder()

	bot.HTTPHandler(rec, req)

	return rec
}

func TestHTTPHandlerReconciles(t *testing.T) {
	bot := newTestBot(t)
	pr := testPR()

	bot.ghClient.EXPECT().PullRequest(gomock.Any(), testOwner, testRepo, testPRNr).Return(pr, nil)
	bot.reconciler.EXPECT().
		Reconcile(gomock.Any(), &reconcile.Actions{ShouldClose: true}, pr, true).
		Return(&reconcile.Plan{
			RESTCalls: []*reconcile.RESTCall{{Method: http.MethodPost, Path: "repos/octo/repo/check-suites/1/rerequest"}},
		}, nil)

	rec := postReconcile(bot, `{"pull_request": 42, "dry_run": true, "actions": {"shouldClose": true}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp, "error")
	assert.Equal(t,
		map[string]any{
			"mutations": nil,
			"rest_calls": []any{
				map[string]any{"method": "POST", "path": "repos/octo/repo/check-suites/1/rerequest"},
			},
		},
		resp["plan"],
	)
}

func TestHTTPHandlerUsesDefaultActions(t *testing.T) {
	desired := &reconcile.Actions{ShouldMerge: true}
	bot := newTestBot(t, WithDefaultActions(actions.NewStatic(desired)))
	pr := testPR()

	bot.ghClient.EXPECT().PullRequest(gomock.Any(), testOwner, testRepo, testPRNr).Return(pr, nil)
	bot.reconciler.EXPECT().Reconcile(gomock.Any(), desired, pr, false).Return(&reconcile.Plan{}, nil)

	rec := postReconcile(bot, `{"pull_request": 42}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHTTPHandlerInvalidRequests(t *testing.T) {
	tcs := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{`},
		{name: "unknown field", body: `{"pull_request": 1, "force": true}`},
		{name: "missing pull request", body: `{"dry_run": true}`},
		{name: "negative pull request", body: `{"pull_request": -1}`},
		{name: "no actions", body: `{"pull_request": 1}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			bot := newTestBot(t)

			rec := postReconcile(bot, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHTTPHandlerRejectsGet(t *testing.T) {
	bot := newTestBot(t)

	rec := httptest.NewRecorder()
	bot.HTTPHandler(rec, httptest.NewRequest(http.MethodGet, "/reconcile", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTPHandlerUnknownLabel(t *testing.T) {
	bot := newTestBot(t)
	pr := testPR()

	bot.ghClient.EXPECT().PullRequest(gomock.Any(), testOwner, testRepo, testPRNr).Return(pr, nil)
	bot.reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any(), pr, false).
		Return(nil, fmt.Errorf("resolving id of label %q failed: %w", "nope", reconcile.ErrNotFound))

	rec := postReconcile(bot, `{"pull_request": 42, "actions": {"shouldUpdateLabels": true, "labels": ["nope"]}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp reconcileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Plan)
	assert.Contains(t, resp.Error, "nope")
}
