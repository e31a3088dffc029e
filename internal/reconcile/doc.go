// Package reconcile brings a GitHub pull request into a desired state.
//
// The desired state is described by Actions, the observed state by a
// PullRequest snapshot. A Reconciler compares both and plans the mutations
// that are required to change the labels, the project board card, the
// comments of the bot and the open/merged/closed state of the pull request.
// Planning has no side effects, the resulting mutations are pure values.
//
// When a plan is applied, mutations are sent one at a time in a fixed order:
// labels, project card, added and updated comments, deleted comments, merge
// and close. The check-suite re-run requests are sent afterwards via the REST
// API. Application stops at the first failure, mutations that were applied
// before are not undone.
//
// The Reconciler keeps no state between invocations. Each planner is a no-op
// when the remote already matches the desired state, a failed pass is
// recovered by running a new pass against a fresh snapshot.
package reconcile
