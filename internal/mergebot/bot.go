// Package mergebot runs reconciliation passes for pull requests of a
// repository.
// A pass retrieves the current state of a pull request, computes its
// desired state and applies the difference. When a pass fails with a
// retryable error, the whole pass is run again, including retrieving the
// pull request state.
package mergebot

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/simplesurance/mergebot/internal/actions"
	"github.com/simplesurance/mergebot/internal/logfields"
	"github.com/simplesurance/mergebot/internal/reconcile"
	"github.com/simplesurance/mergebot/internal/retry"
)

const loggerName = "mergebot"

// ErrNoActions is returned when neither an actions source is passed to
// Reconcile nor a default source was configured.
var ErrNoActions = errors.New("no actions source available")

type Bot struct {
	owner string
	repo  string

	ghClient   GithubClient
	reconciler Reconciler
	retryer    *retry.Retryer
	defActions actions.Source

	logger *zap.Logger
}

type Opt func(*Bot)

// WithDefaultActions sets the source of the desired state that is used
// when none is passed to Reconcile.
func WithDefaultActions(src actions.Source) Opt {
	return func(b *Bot) {
		b.defActions = src
	}
}

// WithRetryer sets the Retryer that runs reconciliation passes.
func WithRetryer(r *retry.Retryer) Opt {
	return func(b *Bot) {
		b.retryer = r
	}
}

// New returns a Bot that reconciles pull requests of the repository owner/repo.
func New(owner, repo string, ghClient GithubClient, reconciler Reconciler, opts ...Opt) *Bot {
	b := Bot{
		owner:      owner,
		repo:       repo,
		ghClient:   ghClient,
		reconciler: reconciler,
		logger:     zap.L().Named(loggerName),
	}

	for _, o := range opts {
		o(&b)
	}

	if b.retryer == nil {
		b.retryer = retry.NewRetryer(retry.DefTimeout)
	}

	return &b
}

// Reconcile brings the pull request with the given number into the state
// returned by src.
// If src is nil, the default source is used.
// The plan of the last pass is returned, also when it failed.
func (b *Bot) Reconcile(ctx context.Context, prNumber int, src actions.Source, dryRun bool) (*reconcile.Plan, error) {
	if src == nil {
		src = b.defActions
	}

	if src == nil {
		return nil, ErrNoActions
	}

	logF := []zap.Field{
		logfields.RepositoryOwner(b.owner),
		logfields.Repository(b.repo),
		logfields.PullRequest(prNumber),
		logfields.DryRun(dryRun),
	}
	logger := b.logger.With(logF...)

	var plan *reconcile.Plan

	err := b.retryer.Run(ctx, func(ctx context.Context) error {
		var err error

		plan, err = b.pass(ctx, prNumber, src, dryRun)
		return err
	}, logF)
	if err != nil {
		logger.Info(
			"reconciling pull request failed",
			logfields.Event("pull_request_reconciliation_failed"),
			zap.Error(err),
		)

		return plan, err
	}

	logger.Debug(
		"pull request reconciled",
		logfields.Event("pull_request_reconciled"),
		zap.Stringer("plan", plan),
	)

	return plan, nil
}

func (b *Bot) pass(ctx context.Context, prNumber int, src actions.Source, dryRun bool) (*reconcile.Plan, error) {
	pr, err := b.ghClient.PullRequest(ctx, b.owner, b.repo, prNumber)
	if err != nil {
		return nil, fmt.Errorf("retrieving state of pull request failed: %w", err)
	}

	a, err := src.Actions(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("computing desired state failed: %w", err)
	}

	return b.reconciler.Reconcile(ctx, a, pr, dryRun)
}

// Stop aborts running and waiting retries.
func (b *Bot) Stop() {
	b.retryer.Stop()
}
