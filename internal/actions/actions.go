// Package actions provides ways to obtain the desired state of a pull
// request, either from a JSON document or by evaluating a jq query on the
// observed state.
package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/simplesurance/mergebot/internal/reconcile"
)

// Source returns the desired state for a pull request.
type Source interface {
	Actions(ctx context.Context, pr *reconcile.PullRequest) (*reconcile.Actions, error)
}

// Static is a Source that always returns the same Actions.
type Static struct {
	actions *reconcile.Actions
}

// NewStatic returns a Source that returns a for every pull request.
func NewStatic(a *reconcile.Actions) *Static {
	return &Static{actions: a}
}

// Actions returns the Actions passed to NewStatic.
func (s *Static) Actions(context.Context, *reconcile.PullRequest) (*reconcile.Actions, error) {
	if s.actions == nil {
		return nil, errors.New("no actions defined")
	}

	return s.actions, nil
}

// Load decodes a JSON Actions document.
// Unknown fields are rejected.
func Load(r io.Reader) (*reconcile.Actions, error) {
	var result reconcile.Actions

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding actions json failed: %w", err)
	}

	return &result, nil
}

// Query is a Source that computes Actions by running a jq program on the
// JSON representation of a reconcile.PullRequest.
// The program must produce exactly 1 JSON object.
type Query struct {
	query *gojq.Query
	code  *gojq.Code
}

// NewQuery compiles the jq program jqQuery.
func NewQuery(jqQuery string) (*Query, error) {
	query, err := gojq.Parse(jqQuery)
	if err != nil {
		return nil, fmt.Errorf("parsing jq query failed: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("compiling jq query failed: %w", err)
	}

	return &Query{query: query, code: code}, nil
}

func (q *Query) String() string {
	return q.query.String()
}

// Actions evaluates the query for pr.
func (q *Query) Actions(ctx context.Context, pr *reconcile.PullRequest) (*reconcile.Actions, error) {
	prJSON, err := json.Marshal(pr)
	if err != nil {
		return nil, fmt.Errorf("marshaling pull request failed: %w", err)
	}

	var input any
	if err := json.Unmarshal(prJSON, &input); err != nil {
		return nil, fmt.Errorf("unmarshaling pull request json failed: %w", err)
	}

	result, errs := goJQIterToSlice(q.code.RunWithContext(ctx, input))
	if len(errs) != 0 {
		return nil, fmt.Errorf("jq query returned errors, query: %q, errors: %s", q, errString(errs))
	}

	if len(result) != 1 {
		return nil, fmt.Errorf("jq query returned %d results, expected 1, query: %q", len(result), q)
	}

	obj, ok := result[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("jq query returned non-object result: %+v (%T), query: %q", result[0], result[0], q)
	}

	buf, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshaling jq query result failed: %w", err)
	}

	return Load(bytes.NewReader(buf))
}

func goJQIterToSlice(iter gojq.Iter) ([]any, []error) {
	var result []any
	var errs []error

	for {
		res, ok := iter.Next()
		if !ok {
			return result, errs
		}

		if err, isErr := res.(error); isErr {
			errs = append(errs, err)
			continue
		}

		result = append(result, res)
	}
}

func errString(errs []error) string {
	var result strings.Builder

	for i, err := range errs {
		if i > 0 {
			result.WriteString("; ")
		}

		fmt.Fprintf(&result, "error %d: %s", i, err)
	}

	return result.String()
}
