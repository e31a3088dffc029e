package reconcile

import (
	"fmt"

	"github.com/shurcooL/githubv4"
)

const ghostAuthor = "(ghost)"

// mergeCommitHeadline returns the headline of the squash commit of pr.
func mergeCommitHeadline(pr *PullRequest) string {
	author := pr.Author
	if author == "" {
		author = ghostAuthor
	}

	return fmt.Sprintf("🤖 Merge PR #%d %s by @%s", pr.Number, pr.Title, author)
}

func lifecycleMutations(actions *Actions, pr *PullRequest) []*Mutation {
	var result []*Mutation

	if actions.ShouldMerge {
		mergeMethod := githubv4.PullRequestMergeMethodSquash

		result = append(result, newMutation(MutationMergePullRequest, githubv4.MergePullRequestInput{
			PullRequestID:   githubv4.ID(pr.ID),
			CommitHeadline:  githubv4.NewString(githubv4.String(mergeCommitHeadline(pr))),
			ExpectedHeadOid: githubv4.NewGitObjectID(githubv4.GitObjectID(pr.HeadRefOid)),
			MergeMethod:     &mergeMethod,
		}))
	}

	if actions.ShouldClose {
		result = append(result, newMutation(MutationClosePullRequest, githubv4.ClosePullRequestInput{
			PullRequestID: githubv4.ID(pr.ID),
		}))
	}

	return result
}
