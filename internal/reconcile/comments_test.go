package reconcile

import (
	"testing"

	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deleteCommentMutation(id string) *Mutation {
	return newMutation(MutationDeleteComment, githubv4.DeleteIssueCommentInput{ID: githubv4.ID(id)})
}

func TestBotCommentsIgnoresForeignAndUntaggedComments(t *testing.T) {
	r := newTestReconciler(t, testConfig(), nil, nil)
	pr := newTestPR()
	pr.Comments = []*Comment{
		botComment("IC_1", "welcome", "hello"),
		{ID: "IC_2", Author: "alice", Body: "<!--welcome-->faked by a human"},
		{ID: "IC_3", Author: botLogin, Body: "untagged comment of the bot"},
		nil,
	}

	comments := r.botComments(pr)
	require.Len(t, comments, 1)
	assert.Equal(t, &BotComment{
		ID:     "IC_1",
		Tag:    "welcome",
		Status: "hello",
		Body:   "<!--welcome-->hello",
	}, comments[0])
}

func TestCommentMutations(t *testing.T) {
	codec := testCodec{}

	testcases := []struct {
		name     string
		desired  []*ResponseComment
		existing []*Comment
		want     []*Mutation
	}{
		{
			name:    "add",
			desired: []*ResponseComment{{Tag: "welcome", Status: "hello"}},
			want: []*Mutation{newMutation(MutationAddComment, githubv4.AddCommentInput{
				SubjectID: githubv4.ID(prNodeID),
				Body:      githubv4.String(codec.Render(&ResponseComment{Tag: "welcome", Status: "hello"})),
			})},
		},
		{
			name:     "uptodate",
			desired:  []*ResponseComment{{Tag: "welcome", Status: "hello"}},
			existing: []*Comment{botComment("IC_1", "welcome", "hello")},
		},
		{
			name:     "update",
			desired:  []*ResponseComment{{Tag: "welcome", Status: "hello again"}},
			existing: []*Comment{botComment("IC_1", "welcome", "hello")},
			want: []*Mutation{newMutation(MutationUpdateComment, githubv4.UpdateIssueCommentInput{
				ID:   githubv4.ID("IC_1"),
				Body: githubv4.String(codec.Render(&ResponseComment{Tag: "welcome", Status: "hello again"})),
			})},
		},
		{
			name:    "each_duplicate_converges_independently",
			desired: []*ResponseComment{{Tag: "welcome", Status: "v2"}},
			existing: []*Comment{
				botComment("IC_1", "welcome", "v1"),
				botComment("IC_2", "welcome", "v2"),
				botComment("IC_3", "welcome", "v0"),
			},
			want: []*Mutation{
				newMutation(MutationUpdateComment, githubv4.UpdateIssueCommentInput{
					ID:   githubv4.ID("IC_1"),
					Body: githubv4.String(codec.Render(&ResponseComment{Tag: "welcome", Status: "v2"})),
				}),
				newMutation(MutationUpdateComment, githubv4.UpdateIssueCommentInput{
					ID:   githubv4.ID("IC_3"),
					Body: githubv4.String(codec.Render(&ResponseComment{Tag: "welcome", Status: "v2"})),
				}),
			},
		},
		{
			name:     "human_comment_with_same_tag_is_no_match",
			desired:  []*ResponseComment{{Tag: "welcome", Status: "hello"}},
			existing: []*Comment{{ID: "IC_9", Author: "alice", Body: codec.Render(&ResponseComment{Tag: "welcome", Status: "x"})}},
			want: []*Mutation{newMutation(MutationAddComment, githubv4.AddCommentInput{
				SubjectID: githubv4.ID(prNodeID),
				Body:      githubv4.String(codec.Render(&ResponseComment{Tag: "welcome", Status: "hello"})),
			})},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestReconciler(t, testConfig(), nil, nil)
			pr := newTestPR()
			pr.Comments = tc.existing

			mutations := r.commentMutations(&Actions{ResponseComments: tc.desired}, pr.ID, r.botComments(pr))
			assert.Equal(t, tc.want, mutations)
		})
	}
}

func TestCommentRemovalKeepsAtMostOneCIComment(t *testing.T) {
	r := newTestReconciler(t, testConfig(), nil, nil)
	pr := newTestPR()
	pr.Comments = []*Comment{
		botComment("IC_1", "ci-a", "failed"),
		botComment("IC_2", "ci-b", "green"),
		botComment("IC_3", "ci-c", "pending"),
	}

	mutations := r.commentRemovalMutations(
		&Actions{ResponseComments: []*ResponseComment{{Tag: "ci-complaint-x", Status: "failed"}}},
		r.botComments(pr),
	)

	assert.Equal(t, []*Mutation{
		deleteCommentMutation("IC_1"),
		deleteCommentMutation("IC_2"),
		deleteCommentMutation("IC_3"),
	}, mutations)
}

func TestCommentRemovalRetainsDesiredCIComment(t *testing.T) {
	r := newTestReconciler(t, testConfig(), nil, nil)
	pr := newTestPR()
	pr.Comments = []*Comment{
		botComment("IC_1", "ci-complaint-x", "failed"),
		botComment("IC_2", "ci-complaint-y", "failed"),
		botComment("IC_3", "welcome", "hello"),
	}

	mutations := r.commentRemovalMutations(
		&Actions{ResponseComments: []*ResponseComment{{Tag: "ci-complaint-x", Status: "failed again"}}},
		r.botComments(pr),
	)

	assert.Equal(t, []*Mutation{deleteCommentMutation("IC_2")}, mutations)
}

func TestCommentRemovalWithoutDesiredCIComment(t *testing.T) {
	r := newTestReconciler(t, testConfig(), nil, nil)
	pr := newTestPR()
	pr.Comments = []*Comment{
		botComment("IC_1", "ci-complaint-x", "failed"),
		botComment("IC_2", "welcome", "hello"),
	}

	mutations := r.commentRemovalMutations(
		&Actions{ResponseComments: []*ResponseComment{{Tag: "welcome", Status: "hello"}}},
		r.botComments(pr),
	)

	assert.Equal(t, []*Mutation{deleteCommentMutation("IC_1")}, mutations)
}

// Only the first desired CI complaint is retained, further desired CI
// complaints are updated by commentMutations and deleted by
// commentRemovalMutations in the same pass.
func TestCommentRemovalOnlyFirstDesiredCIComplaintIsRetained(t *testing.T) {
	r := newTestReconciler(t, testConfig(), nil, nil)
	pr := newTestPR()
	pr.Comments = []*Comment{
		botComment("IC_1", "ci-complaint-x", "failed"),
		botComment("IC_2", "ci-complaint-y", "failed"),
	}

	actions := &Actions{ResponseComments: []*ResponseComment{
		{Tag: "ci-complaint-x", Status: "failed"},
		{Tag: "ci-complaint-y", Status: "failed again"},
	}}

	existing := r.botComments(pr)
	assert.Equal(t, "ci-complaint-x", r.ciTagToKeep(actions))
	assert.Equal(t, []MutationKind{MutationUpdateComment}, (&Plan{Mutations: r.commentMutations(actions, pr.ID, existing)}).Kinds())
	assert.Equal(t, []*Mutation{deleteCommentMutation("IC_2")}, r.commentRemovalMutations(actions, existing))
}

func TestCommentRemovalDeleteIfNotPosted(t *testing.T) {
	r := newTestReconciler(t, testConfig(), nil, nil)
	pr := newTestPR()
	pr.Comments = []*Comment{
		botComment("IC_1", "merge-offer", "ready to merge"),
		botComment("IC_2", "stale-ping", "ping"),
		botComment("IC_3", "welcome", "hello"),
		{ID: "IC_4", Author: botLogin, Body: "untagged stale-ping"},
	}

	mutations := r.commentRemovalMutations(
		&Actions{ResponseComments: []*ResponseComment{{Tag: "stale-ping", Status: "ping"}}},
		r.botComments(pr),
	)

	assert.Equal(t, []*Mutation{deleteCommentMutation("IC_1")}, mutations)
}
