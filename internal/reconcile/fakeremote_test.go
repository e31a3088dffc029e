package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/shurcooL/githubv4"
)

var errMutationFailed = errors.New("mutation failed")

// fakeRemote applies mutations to a PullRequest snapshot.
type fakeRemote struct {
	pr      *PullRequest
	idNames map[string]string

	// failAt is the 1-based number of the Mutate call that fails, 0
	// disables failing.
	failAt int

	mutateCalls int
	applied     []*Mutation
	restCalls   []*RESTCall
	nextID      int
}

func newFakeRemote(pr *PullRequest) *fakeRemote {
	idNames := make(map[string]string, len(testIDs))
	for name, id := range testIDs {
		idNames[id] = name
	}

	return &fakeRemote{pr: pr, idNames: idNames}
}

func (f *fakeRemote) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s_new%d", prefix, f.nextID)
}

func (f *fakeRemote) name(id githubv4.ID) string {
	return f.idNames[id.(string)]
}

func (f *fakeRemote) Mutate(_ context.Context, m *Mutation) error {
	f.mutateCalls++
	if f.mutateCalls == f.failAt {
		return errMutationFailed
	}

	pr := f.pr

	switch in := m.Input.(type) {
	case githubv4.AddLabelsToLabelableInput:
		for _, id := range in.LabelIDs {
			pr.Labels = append(pr.Labels, f.name(id))
		}

	case githubv4.RemoveLabelsFromLabelableInput:
		remove := map[string]struct{}{}
		for _, id := range in.LabelIDs {
			remove[f.name(id)] = struct{}{}
		}

		var labels []string
		for _, l := range pr.Labels {
			if _, exists := remove[l]; !exists {
				labels = append(labels, l)
			}
		}
		pr.Labels = labels

	case githubv4.AddProjectCardInput:
		pr.ProjectCards = append(pr.ProjectCards, &ProjectCard{
			ID:            f.newID("PC"),
			ProjectNumber: projectNumber,
			Column:        f.name(in.ProjectColumnID),
		})

	case githubv4.MoveProjectCardInput:
		for _, c := range pr.ProjectCards {
			if c.ID == in.CardID {
				c.Column = f.name(in.ColumnID)
			}
		}

	case githubv4.DeleteProjectCardInput:
		var cards []*ProjectCard
		for _, c := range pr.ProjectCards {
			if c.ID != in.CardID {
				cards = append(cards, c)
			}
		}
		pr.ProjectCards = cards

	case githubv4.AddCommentInput:
		pr.Comments = append(pr.Comments, &Comment{
			ID:     f.newID("IC"),
			Author: botLogin,
			Body:   string(in.Body),
		})

	case githubv4.UpdateIssueCommentInput:
		for _, c := range pr.Comments {
			if c.ID == in.ID {
				c.Body = string(in.Body)
			}
		}

	case githubv4.DeleteIssueCommentInput:
		var comments []*Comment
		for _, c := range pr.Comments {
			if c.ID != in.ID {
				comments = append(comments, c)
			}
		}
		pr.Comments = comments

	default:
		return fmt.Errorf("fakeRemote: unsupported mutation input: %T", m.Input)
	}

	f.applied = append(f.applied, m)

	return nil
}

func (f *fakeRemote) DoREST(_ context.Context, c *RESTCall) error {
	f.restCalls = append(f.restCalls, c)
	return nil
}
