package reconcile

import (
	"strings"

	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"

	"github.com/simplesurance/mergebot/internal/logfields"
)

// botComments returns the comments of pr that were posted by the bot and
// carry a tag. Other comments are never modified.
func (r *Reconciler) botComments(pr *PullRequest) []*BotComment {
	var result []*BotComment

	for _, c := range pr.Comments {
		if c == nil || c.Author != r.cfg.BotLogin {
			continue
		}

		tag, status, ok := r.codec.Parse(c.Body)
		if !ok {
			r.logger.Debug(
				"ignoring bot comment without tag",
				logfields.Event("comment_untagged"),
				zap.String("comment_id", c.ID),
			)
			continue
		}

		result = append(result, &BotComment{
			ID:     c.ID,
			Tag:    tag,
			Status: status,
			Body:   c.Body,
		})
	}

	return result
}

// commentMutations returns mutations that post the desired comments that do
// not exist yet and update existing ones whose status changed.
// All existing comments with the tag of a desired comment are updated.
func (r *Reconciler) commentMutations(actions *Actions, prID string, existing []*BotComment) []*Mutation {
	var result []*Mutation

	for _, wanted := range actions.ResponseComments {
		if wanted == nil {
			continue
		}

		var sameTag []*BotComment
		for _, c := range existing {
			if c.Tag == wanted.Tag {
				sameTag = append(sameTag, c)
			}
		}

		if len(sameTag) == 0 {
			result = append(result, newMutation(MutationAddComment, githubv4.AddCommentInput{
				SubjectID: githubv4.ID(prID),
				Body:      githubv4.String(r.codec.Render(wanted)),
			}))

			continue
		}

		for _, c := range sameTag {
			if c.Status == wanted.Status {
				continue
			}

			result = append(result, newMutation(MutationUpdateComment, githubv4.UpdateIssueCommentInput{
				ID:   githubv4.ID(c.ID),
				Body: githubv4.String(r.codec.Render(wanted)),
			}))
		}
	}

	return result
}

// ciTagToKeep returns the tag of the first desired comment that is a CI
// complaint, an empty string if none is.
func (r *Reconciler) ciTagToKeep(actions *Actions) string {
	for _, c := range actions.ResponseComments {
		if c != nil && strings.HasPrefix(c.Tag, r.cfg.CIComplaintPrefix) {
			return c.Tag
		}
	}

	return ""
}

// commentRemovalMutations returns mutations deleting stale CI comments and
// comments with a tag from the delete-if-not-posted list that is not desired
// anymore.
func (r *Reconciler) commentRemovalMutations(actions *Actions, existing []*BotComment) []*Mutation {
	keepCITag := r.ciTagToKeep(actions)

	postedTags := make(map[string]struct{}, len(actions.ResponseComments))
	for _, c := range actions.ResponseComments {
		if c != nil {
			postedTags[c.Tag] = struct{}{}
		}
	}

	var result []*Mutation

	for _, c := range existing {
		if r.shouldDeleteComment(c, keepCITag, postedTags) {
			r.logger.Debug(
				"bot comment is obsolete",
				logfields.Event("comment_obsolete"),
				logfields.CommentTag(c.Tag),
				zap.String("comment_id", c.ID),
			)

			result = append(result, newMutation(MutationDeleteComment, githubv4.DeleteIssueCommentInput{
				ID: githubv4.ID(c.ID),
			}))
		}
	}

	return result
}

func (r *Reconciler) shouldDeleteComment(c *BotComment, keepCITag string, postedTags map[string]struct{}) bool {
	if strings.Contains(c.Tag, r.cfg.CIMarker) && c.Tag != keepCITag {
		return true
	}

	if _, deletable := r.deleteIfNotPosted[c.Tag]; deletable {
		_, posted := postedTags[c.Tag]
		return !posted
	}

	return false
}
