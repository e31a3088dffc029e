package mergebot

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/simplesurance/mergebot/internal/actions"
	"github.com/simplesurance/mergebot/internal/logfields"
	"github.com/simplesurance/mergebot/internal/reconcile"
)

const maxRequestBodySize = 1 << 20

type reconcileRequest struct {
	PullRequest int                `json:"pull_request"`
	DryRun      bool               `json:"dry_run"`
	Actions     *reconcile.Actions `json:"actions"`
}

type reconcileResponse struct {
	Plan  *reconcile.Plan `json:"plan,omitempty"`
	Error string          `json:"error,omitempty"`
}

// HTTPHandler runs a reconciliation pass for the pull request specified in
// the JSON body of a POST request and responds with the JSON representation
// of the plan.
// When the request does not contain actions, the default actions source is
// used.
func (b *Bot) HTTPHandler(resp http.ResponseWriter, req *http.Request) {
	logger := b.logger.With(zap.String("http_remote_addr", req.RemoteAddr))

	if req.Method != http.MethodPost {
		resp.Header().Set("Allow", http.MethodPost)
		http.Error(resp, "only POST requests are supported", http.StatusMethodNotAllowed)
		return
	}

	var rr reconcileRequest

	dec := json.NewDecoder(io.LimitReader(req.Body, maxRequestBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&rr); err != nil {
		logger.Info(
			"received invalid http request, parsing body failed",
			logfields.Event("reconcile_request_parsing_failed"),
			zap.Error(err),
		)
		http.Error(resp, "parsing request body failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	if rr.PullRequest <= 0 {
		http.Error(resp, "pull_request must be a positive number", http.StatusBadRequest)
		return
	}

	logger = logger.With(logfields.PullRequest(rr.PullRequest), logfields.DryRun(rr.DryRun))
	logger.Debug("received reconcile request", logfields.Event("reconcile_request_received"))

	var src actions.Source
	if rr.Actions != nil {
		src = actions.NewStatic(rr.Actions)
	}

	plan, err := b.Reconcile(req.Context(), rr.PullRequest, src, rr.DryRun)

	result := reconcileResponse{Plan: plan}
	status := http.StatusOK

	if err != nil {
		result.Error = err.Error()
		status = errorHTTPStatus(err)
	}

	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(status)

	if err := json.NewEncoder(resp).Encode(&result); err != nil {
		logger.Info(
			"sending http response failed",
			logfields.Event("reconcile_response_sending_failed"),
			zap.Error(err),
		)
	}
}

func errorHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoActions):
		return http.StatusBadRequest
	case errors.Is(err, reconcile.ErrNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
