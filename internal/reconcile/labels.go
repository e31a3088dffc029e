package reconcile

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"
)

// labelMutations returns the mutations that change the labels of pr to
// actions.Labels.
// At most one add and one remove mutation is returned, none for an empty
// label set.
func (r *Reconciler) labelMutations(ctx context.Context, actions *Actions, pr *PullRequest) ([]*Mutation, error) {
	if !actions.ShouldUpdateLabels {
		return nil, nil
	}

	observed := toStrSet(pr.Labels)
	desired := toStrSet(actions.Labels)

	var toAdd, toRemove []string

	for _, label := range uniqueStrings(actions.Labels) {
		if !r.isManagedLabel(label) {
			continue
		}

		if _, exists := observed[label]; !exists {
			toAdd = append(toAdd, label)
		}
	}

	for _, label := range uniqueStrings(pr.Labels) {
		if !r.isManagedLabel(label) {
			continue
		}

		if _, exists := desired[label]; !exists {
			toRemove = append(toRemove, label)
		}
	}

	var result []*Mutation

	if len(toAdd) > 0 {
		ids, err := r.labelIDs(ctx, toAdd)
		if err != nil {
			return nil, err
		}

		result = append(result, newMutation(MutationAddLabels, githubv4.AddLabelsToLabelableInput{
			LabelableID: githubv4.ID(pr.ID),
			LabelIDs:    ids,
		}))
	}

	if len(toRemove) > 0 {
		ids, err := r.labelIDs(ctx, toRemove)
		if err != nil {
			return nil, err
		}

		result = append(result, newMutation(MutationRemoveLabels, githubv4.RemoveLabelsFromLabelableInput{
			LabelableID: githubv4.ID(pr.ID),
			LabelIDs:    ids,
		}))
	}

	return result, nil
}

func (r *Reconciler) labelIDs(ctx context.Context, names []string) ([]githubv4.ID, error) {
	result := make([]githubv4.ID, 0, len(names))

	for _, name := range names {
		id, err := r.labels.LabelID(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolving id of label %q failed: %w", name, err)
		}

		result = append(result, githubv4.ID(id))
	}

	return result, nil
}

func (r *Reconciler) isManagedLabel(label string) bool {
	if len(r.managedLabels) == 0 {
		return true
	}

	_, exists := r.managedLabels[label]
	return exists
}
