package mergebot

import (
	"context"

	"github.com/simplesurance/mergebot/internal/reconcile"
)

// GithubClient retrieves the current state of pull requests.
type GithubClient interface {
	PullRequest(ctx context.Context, owner, repo string, number int) (*reconcile.PullRequest, error)
}

// Reconciler brings a pull request into a desired state.
type Reconciler interface {
	Reconcile(ctx context.Context, actions *reconcile.Actions, pr *reconcile.PullRequest, dryRun bool) (*reconcile.Plan, error)
}
