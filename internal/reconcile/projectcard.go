package reconcile

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"

	"github.com/simplesurance/mergebot/internal/logfields"
)

// trackedCard returns the first card of pr on the tracked project board, nil
// if it has none.
func (r *Reconciler) trackedCard(pr *PullRequest) *ProjectCard {
	for _, card := range pr.ProjectCards {
		if card != nil && card.ProjectNumber == r.cfg.ProjectNumber {
			return card
		}
	}

	return nil
}

func (r *Reconciler) projectCardMutations(ctx context.Context, actions *Actions, pr *PullRequest) ([]*Mutation, error) {
	if actions.ProjectColumn == "" {
		return nil, nil
	}

	card := r.trackedCard(pr)

	if actions.ProjectColumn == RemoveFromProject {
		if card == nil {
			return nil, nil
		}

		// cards in the terminal column stay on the board
		if r.cfg.DoneColumn != "" && card.Column == r.cfg.DoneColumn {
			r.logger.Debug(
				"not removing project card, it is in the done column",
				logfields.Event("project_card_removal_skipped"),
				logfields.PullRequest(pr.Number),
				logfields.ProjectColumn(card.Column),
			)

			return nil, nil
		}

		return []*Mutation{
			newMutation(MutationDeleteProjectCard, githubv4.DeleteProjectCardInput{
				CardID: githubv4.ID(card.ID),
			}),
		}, nil
	}

	if card != nil && card.Column == actions.ProjectColumn {
		return nil, nil
	}

	columnID, err := r.columns.ColumnID(ctx, actions.ProjectColumn)
	if err != nil {
		return nil, fmt.Errorf("resolving id of project column %q failed: %w", actions.ProjectColumn, err)
	}

	if card != nil {
		return []*Mutation{
			newMutation(MutationMoveProjectCard, githubv4.MoveProjectCardInput{
				CardID:   githubv4.ID(card.ID),
				ColumnID: githubv4.ID(columnID),
			}),
		}, nil
	}

	return []*Mutation{
		newMutation(MutationAddProjectCard, githubv4.AddProjectCardInput{
			ProjectColumnID: githubv4.ID(columnID),
			ContentID:       githubv4.NewID(githubv4.ID(pr.ID)),
		}),
	}, nil
}
