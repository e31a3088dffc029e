package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/simplesurance/mergebot/internal/logfields"
)

const loggerName = "reconciler"

// Reconciler plans and applies the changes that bring a pull request into
// the state described by Actions.
type Reconciler struct {
	cfg *Config

	managedLabels     map[string]struct{}
	deleteIfNotPosted map[string]struct{}

	labels  LabelResolver
	columns ColumnResolver
	codec   CommentCodec
	mutator Mutator
	rest    RESTCaller

	logger *zap.Logger
}

// NewReconciler returns a Reconciler for the pull requests of the repository
// specified in cfg. Unset CI settings in cfg are replaced by their defaults.
func NewReconciler(
	cfg *Config,
	labels LabelResolver,
	columns ColumnResolver,
	codec CommentCodec,
	mutator Mutator,
	rest RESTCaller,
) *Reconciler {
	c := cfg.withDefaults()

	return &Reconciler{
		cfg:               c,
		managedLabels:     toStrSet(c.ManagedLabels),
		deleteIfNotPosted: toStrSet(c.DeleteIfNotPostedTags),
		labels:            labels,
		columns:           columns,
		codec:             codec,
		mutator:           mutator,
		rest:              rest,
		logger:            zap.L().Named(loggerName),
	}
}

// Plan computes the operations that change pr to the desired state.
// It does not modify anything on GitHub. Label and project column names are
// resolved concurrently, an unknown name fails the planning with an error
// wrapping ErrNotFound.
func (r *Reconciler) Plan(ctx context.Context, actions *Actions, pr *PullRequest) (*Plan, error) {
	if actions == nil {
		return nil, errors.New("actions are nil")
	}

	if pr == nil {
		return nil, errors.New("pull request is nil")
	}

	var labelMutations, cardMutations []*Mutation

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		labelMutations, err = r.labelMutations(gCtx, actions, pr)
		return err
	})
	g.Go(func() error {
		var err error
		cardMutations, err = r.projectCardMutations(gCtx, actions, pr)
		return err
	})

	botComments := r.botComments(pr)
	commentMutations := r.commentMutations(actions, pr.ID, botComments)
	commentRemovals := r.commentRemovalMutations(actions, botComments)
	stateMutations := lifecycleMutations(actions, pr)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	mutations := make(
		[]*Mutation, 0,
		len(labelMutations)+len(cardMutations)+len(commentMutations)+len(commentRemovals)+len(stateMutations),
	)
	mutations = append(mutations, labelMutations...)
	mutations = append(mutations, cardMutations...)
	mutations = append(mutations, commentMutations...)
	mutations = append(mutations, commentRemovals...)
	mutations = append(mutations, stateMutations...)

	restCalls := make([]*RESTCall, 0, len(actions.ReRunActionsCheckSuiteIDs))
	for _, id := range actions.ReRunActionsCheckSuiteIDs {
		restCalls = append(restCalls, checkSuiteRerequestCall(r.cfg.RepositoryOwner, r.cfg.Repository, id))
	}

	return &Plan{Mutations: mutations, RESTCalls: restCalls}, nil
}

// Reconcile plans the changes for pr and applies them, when dryRun is false.
// The plan is also returned when applying it failed.
func (r *Reconciler) Reconcile(ctx context.Context, actions *Actions, pr *PullRequest, dryRun bool) (*Plan, error) {
	plan, err := r.Plan(ctx, actions, pr)
	if err != nil {
		metrics.PassInc(passResultPlanFailed)
		return nil, fmt.Errorf("planning changes failed: %w", err)
	}

	logger := r.logger.With(
		logfields.PullRequest(pr.Number),
		logfields.PullRequestID(pr.ID),
		logfields.Commit(pr.HeadRefOid),
		logfields.DryRun(dryRun),
	)

	metrics.PlannedInc(plan)

	if plan.Len() == 0 {
		logger.Debug("pull request is in desired state", logEventUptodate)
		metrics.PassInc(passResultUptodate)
		return plan, nil
	}

	if dryRun {
		logger.Info(
			"changes planned, not applying them in dry-run mode",
			logEventPlanned,
			zap.Int("mutations", len(plan.Mutations)),
			zap.Int("rest_calls", len(plan.RESTCalls)),
		)
		metrics.PassInc(passResultDryRun)
		return plan, nil
	}

	if err := r.Apply(ctx, plan); err != nil {
		metrics.PassInc(passResultApplyFailed)
		return plan, err
	}

	logger.Info(
		"pull request changed to desired state",
		logEventApplied,
		zap.Int("mutations", len(plan.Mutations)),
		zap.Int("rest_calls", len(plan.RESTCalls)),
	)
	metrics.PassInc(passResultApplied)

	return plan, nil
}

// Apply runs the mutations of the plan one after the other, followed by the
// REST calls.
// It stops at the first failing operation, operations that were run
// successfully before are not reverted.
func (r *Reconciler) Apply(ctx context.Context, plan *Plan) error {
	for i, m := range plan.Mutations {
		logger := r.logger.With(logfields.MutationKind(string(m.Kind)))

		if err := r.mutator.Mutate(ctx, m); err != nil {
			metrics.MutationInc(m.Kind, resultFailed)
			logger.Info("applying mutation failed", logEventMutationFailed, zap.Error(err))

			return fmt.Errorf("applying mutation %d/%d (%s) failed: %w", i+1, len(plan.Mutations), m.Kind, err)
		}

		metrics.MutationInc(m.Kind, resultApplied)
		logger.Debug("mutation applied", logEventMutationApplied)
	}

	for i, c := range plan.RESTCalls {
		logger := r.logger.With(zap.Stringer("rest_call", c))

		if err := r.rest.DoREST(ctx, c); err != nil {
			metrics.RESTCallInc(resultFailed)
			logger.Info("rest call failed", logEventRESTCallFailed, zap.Error(err))

			return fmt.Errorf("rest call %d/%d (%s) failed: %w", i+1, len(plan.RESTCalls), c, err)
		}

		metrics.RESTCallInc(resultApplied)
		logger.Debug("rest call sent", logEventRESTCallSent)
	}

	return nil
}
