package githubclt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/simplesurance/mergebot/internal/logfields"
	"github.com/simplesurance/mergebot/internal/reconcile"
)

type mutationResult struct {
	ClientMutationID *string
}

type (
	addLabelsMutation struct {
		Result mutationResult `graphql:"addLabelsToLabelable(input: $input)"`
	}
	removeLabelsMutation struct {
		Result mutationResult `graphql:"removeLabelsFromLabelable(input: $input)"`
	}
	addProjectCardMutation struct {
		Result mutationResult `graphql:"addProjectCard(input: $input)"`
	}
	moveProjectCardMutation struct {
		Result mutationResult `graphql:"moveProjectCard(input: $input)"`
	}
	deleteProjectCardMutation struct {
		Result mutationResult `graphql:"deleteProjectCard(input: $input)"`
	}
	addCommentMutation struct {
		Result mutationResult `graphql:"addComment(input: $input)"`
	}
	updateIssueCommentMutation struct {
		Result mutationResult `graphql:"updateIssueComment(input: $input)"`
	}
	deleteIssueCommentMutation struct {
		Result mutationResult `graphql:"deleteIssueComment(input: $input)"`
	}
	mergePullRequestMutation struct {
		Result mutationResult `graphql:"mergePullRequest(input: $input)"`
	}
	closePullRequestMutation struct {
		Result mutationResult `graphql:"closePullRequest(input: $input)"`
	}
)

func mutationFor(kind reconcile.MutationKind) (any, error) {
	switch kind {
	case reconcile.MutationAddLabels:
		return &addLabelsMutation{}, nil
	case reconcile.MutationRemoveLabels:
		return &removeLabelsMutation{}, nil
	case reconcile.MutationAddProjectCard:
		return &addProjectCardMutation{}, nil
	case reconcile.MutationMoveProjectCard:
		return &moveProjectCardMutation{}, nil
	case reconcile.MutationDeleteProjectCard:
		return &deleteProjectCardMutation{}, nil
	case reconcile.MutationAddComment:
		return &addCommentMutation{}, nil
	case reconcile.MutationUpdateComment:
		return &updateIssueCommentMutation{}, nil
	case reconcile.MutationDeleteComment:
		return &deleteIssueCommentMutation{}, nil
	case reconcile.MutationMergePullRequest:
		return &mergePullRequestMutation{}, nil
	case reconcile.MutationClosePullRequest:
		return &closePullRequestMutation{}, nil
	default:
		return nil, fmt.Errorf("unsupported mutation: %q", kind)
	}
}

// Mutate runs the GraphQL mutation described by m.
func (clt *Client) Mutate(ctx context.Context, m *reconcile.Mutation) error {
	mutation, err := mutationFor(m.Kind)
	if err != nil {
		return err
	}

	if err := clt.graphQLClt.Mutate(ctx, mutation, m.Input, nil); err != nil {
		return clt.wrapGraphQLRetryableErrors(err)
	}

	clt.logger.Debug(
		"graphql mutation executed",
		logfields.Event("github_graphql_mutation_executed"),
		logfields.MutationKind(string(m.Kind)),
		zap.Any("input", m.Input),
	)

	return nil
}
