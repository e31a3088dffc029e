package githubclt

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"

	"github.com/simplesurance/mergebot/internal/reconcile"
)

const (
	maxLabels       = 100
	maxProjectCards = 100
	maxComments     = 100
)

type queryActor struct {
	Login string
}

type queryPullRequest struct {
	ID         string
	Number     int
	Title      string
	HeadRefOid string
	Author     *queryActor

	Labels struct {
		Nodes []struct {
			Name string
		}
	} `graphql:"labels(first: $labelsFirst)"`

	ProjectCards struct {
		Nodes []struct {
			ID      string
			Project struct {
				Number int
			}
			Column *struct {
				Name string
			}
		}
	} `graphql:"projectCards(first: $cardsFirst)"`

	// the latest comments are the relevant ones, when more than
	// maxComments exist
	Comments struct {
		Nodes []struct {
			ID     string
			Body   string
			Author *queryActor
		}
	} `graphql:"comments(last: $commentsLast)"`
}

// PullRequest returns the current state of a pull request.
// Only the first 100 labels and project cards, and the last 100 comments are
// retrieved.
func (clt *Client) PullRequest(ctx context.Context, owner, repo string, number int) (*reconcile.PullRequest, error) {
	var q struct {
		Repository struct {
			PullRequest *queryPullRequest `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	vars := map[string]any{
		"owner":        githubv4.String(owner),
		"name":         githubv4.String(repo),
		"number":       githubv4.Int(number),
		"labelsFirst":  githubv4.Int(maxLabels),
		"cardsFirst":   githubv4.Int(maxProjectCards),
		"commentsLast": githubv4.Int(maxComments),
	}

	if err := clt.graphQLClt.Query(ctx, &q, vars); err != nil {
		return nil, clt.wrapGraphQLRetryableErrors(err)
	}

	if q.Repository.PullRequest == nil {
		return nil, fmt.Errorf("pull request #%d: %w", number, errEmptyResult)
	}

	return q.Repository.PullRequest.toPullRequest(), nil
}

func (a *queryActor) login() string {
	if a == nil {
		return ""
	}

	return a.Login
}

func (q *queryPullRequest) toPullRequest() *reconcile.PullRequest {
	result := reconcile.PullRequest{
		ID:         q.ID,
		Number:     q.Number,
		Title:      q.Title,
		HeadRefOid: q.HeadRefOid,
		Author:     q.Author.login(),
	}

	for _, l := range q.Labels.Nodes {
		result.Labels = append(result.Labels, l.Name)
	}

	for _, c := range q.ProjectCards.Nodes {
		card := reconcile.ProjectCard{
			ID:            c.ID,
			ProjectNumber: c.Project.Number,
		}

		if c.Column != nil {
			card.Column = c.Column.Name
		}

		result.ProjectCards = append(result.ProjectCards, &card)
	}

	for _, c := range q.Comments.Nodes {
		result.Comments = append(result.Comments, &reconcile.Comment{
			ID:     c.ID,
			Author: c.Author.login(),
			Body:   c.Body,
		})
	}

	return &result
}
