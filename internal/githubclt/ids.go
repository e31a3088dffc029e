package githubclt

import (
	"context"
	"errors"
	"fmt"

	"github.com/shurcooL/githubv4"

	"github.com/simplesurance/mergebot/internal/reconcile"
)

type queryNamedNode struct {
	ID   string
	Name string
}

// Labels returns the names and node IDs of all labels of the repository.
func (clt *Client) Labels(ctx context.Context, owner, repo string) (map[string]string, error) {
	var q struct {
		Repository struct {
			Labels struct {
				Nodes    []queryNamedNode
				PageInfo struct {
					EndCursor   string
					HasNextPage bool
				}
			} `graphql:"labels(first: 100, after: $cursor)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	vars := map[string]any{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"cursor": (*githubv4.String)(nil),
	}

	result := map[string]string{}

	for {
		if err := clt.graphQLClt.Query(ctx, &q, vars); err != nil {
			return nil, clt.wrapGraphQLRetryableErrors(err)
		}

		for _, n := range q.Repository.Labels.Nodes {
			result[n.Name] = n.ID
		}

		pageInfo := q.Repository.Labels.PageInfo
		if !pageInfo.HasNextPage {
			return result, nil
		}

		if pageInfo.EndCursor == "" {
			return nil, errors.New("retrieving all labels failed, HasNextPage is true, expected non-empty EndCursor")
		}

		vars["cursor"] = githubv4.NewString(githubv4.String(pageInfo.EndCursor))
	}
}

// ProjectColumns returns the names and node IDs of the columns of a
// repository project board.
func (clt *Client) ProjectColumns(ctx context.Context, owner, repo string, projectNumber int) (map[string]string, error) {
	var q struct {
		Repository struct {
			Project *struct {
				Columns struct {
					Nodes []queryNamedNode
				} `graphql:"columns(first: 100)"`
			} `graphql:"project(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	vars := map[string]any{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"number": githubv4.Int(projectNumber),
	}

	if err := clt.graphQLClt.Query(ctx, &q, vars); err != nil {
		return nil, clt.wrapGraphQLRetryableErrors(err)
	}

	if q.Repository.Project == nil {
		return nil, fmt.Errorf("project %d of repository %s/%s: %w", projectNumber, owner, repo, reconcile.ErrNotFound)
	}

	result := make(map[string]string, len(q.Repository.Project.Columns.Nodes))
	for _, n := range q.Repository.Project.Columns.Nodes {
		result[n.Name] = n.ID
	}

	return result, nil
}
