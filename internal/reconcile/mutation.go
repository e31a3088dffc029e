package reconcile

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shurcooL/githubv4"
)

// MutationKind is the name of a GitHub GraphQL mutation.
type MutationKind string

const (
	MutationAddLabels         MutationKind = "addLabelsToLabelable"
	MutationRemoveLabels      MutationKind = "removeLabelsFromLabelable"
	MutationAddProjectCard    MutationKind = "addProjectCard"
	MutationMoveProjectCard   MutationKind = "moveProjectCard"
	MutationDeleteProjectCard MutationKind = "deleteProjectCard"
	MutationAddComment        MutationKind = "addComment"
	MutationUpdateComment     MutationKind = "updateIssueComment"
	MutationDeleteComment     MutationKind = "deleteIssueComment"
	MutationMergePullRequest  MutationKind = "mergePullRequest"
	MutationClosePullRequest  MutationKind = "closePullRequest"
)

// Mutation describes a single GraphQL write operation.
// Input is one of the githubv4 *Input structs (as value) that belongs to
// Kind.
type Mutation struct {
	Kind  MutationKind    `json:"kind"`
	Input githubv4.Input `json:"input"`
}

func newMutation(kind MutationKind, input githubv4.Input) *Mutation {
	return &Mutation{Kind: kind, Input: input}
}

func (m *Mutation) String() string {
	return fmt.Sprintf("%s: %+v", m.Kind, m.Input)
}

// RESTCall describes a write operation via the GitHub REST API.
// Path is relative to the API base URL.
type RESTCall struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

func (c *RESTCall) String() string {
	return c.Method + " " + c.Path
}

func checkSuiteRerequestCall(owner, repo string, checkSuiteID int64) *RESTCall {
	return &RESTCall{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("repos/%s/%s/check-suites/%d/rerequest", owner, repo, checkSuiteID),
	}
}

// Plan is the ordered list of operations that bring a pull request into the
// desired state.
type Plan struct {
	Mutations []*Mutation `json:"mutations"`
	RESTCalls []*RESTCall `json:"rest_calls"`
}

// Len returns the number of operations in the plan.
func (p *Plan) Len() int {
	return len(p.Mutations) + len(p.RESTCalls)
}

// Kinds returns the mutation kinds of the plan in order.
func (p *Plan) Kinds() []MutationKind {
	result := make([]MutationKind, 0, len(p.Mutations))
	for _, m := range p.Mutations {
		result = append(result, m.Kind)
	}

	return result
}

func (p *Plan) String() string {
	if p.Len() == 0 {
		return "no changes"
	}

	var result strings.Builder

	if len(p.Mutations) > 0 {
		result.WriteString("Mutations:\n")
		for _, m := range p.Mutations {
			fmt.Fprintf(&result, "  %s\n", m)
		}
	}

	if len(p.RESTCalls) > 0 {
		result.WriteString("REST Calls:\n")
		for _, c := range p.RESTCalls {
			fmt.Fprintf(&result, "  %s\n", c)
		}
	}

	return result.String()
}
