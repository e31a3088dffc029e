package reconcile

import "github.com/simplesurance/mergebot/internal/logfields"

var (
	logEventUptodate        = logfields.Event("pull_request_uptodate")
	logEventPlanned         = logfields.Event("changes_planned")
	logEventApplied         = logfields.Event("changes_applied")
	logEventMutationApplied = logfields.Event("github_mutation_applied")
	logEventMutationFailed  = logfields.Event("github_mutation_failed")
	logEventRESTCallSent    = logfields.Event("github_rest_call_sent")
	logEventRESTCallFailed  = logfields.Event("github_rest_call_failed")
)
