package reconcile

// RemoveFromProject is the Actions.ProjectColumn value requesting to remove
// the pull request from the project board.
const RemoveFromProject = "*REMOVE*"

// Actions describes the desired state of a pull request.
type Actions struct {
	// ShouldUpdateLabels enables label reconciliation, when it is false
	// Labels is ignored.
	ShouldUpdateLabels bool     `json:"shouldUpdateLabels"`
	Labels             []string `json:"labels"`
	// ProjectColumn is the name of the column the pull request should be
	// in. When empty the project card is not changed, RemoveFromProject
	// requests deletion of the card.
	ProjectColumn    string             `json:"projectColumn,omitempty"`
	ResponseComments []*ResponseComment `json:"responseComments"`
	ShouldMerge      bool               `json:"shouldMerge"`
	ShouldClose      bool               `json:"shouldClose"`
	// ReRunActionsCheckSuiteIDs are the IDs of check suites that should
	// be rerun.
	ReRunActionsCheckSuiteIDs []int64 `json:"reRunActionsCheckSuiteIDs,omitempty"`
}

// ResponseComment is a comment that the bot should have posted on the pull
// request.
// Comments are identified by their Tag. The Status is the content of the
// comment, a posted comment with the same Tag and Status is up to date.
type ResponseComment struct {
	Tag    string `json:"tag"`
	Status string `json:"status"`
}

// PullRequest is the observed state of a pull request.
type PullRequest struct {
	// ID is the GraphQL node ID.
	ID     string `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	// HeadRefOid is the commit ID of the head of the pull request branch.
	HeadRefOid string `json:"headRefOid"`
	// Author is the login of the author, it is empty when the account was
	// deleted.
	Author       string         `json:"author"`
	Labels       []string       `json:"labels"`
	ProjectCards []*ProjectCard `json:"projectCards"`
	Comments     []*Comment     `json:"comments"`
}

// ProjectCard is a card of the pull request on a classic project board.
type ProjectCard struct {
	ID            string `json:"id"`
	ProjectNumber int    `json:"projectNumber"`
	// Column is empty when the card is not in a column.
	Column string `json:"column"`
}

// Comment is an issue comment on a pull request.
type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

// BotComment is a comment posted by the bot that carries a tag.
type BotComment struct {
	ID     string
	Tag    string
	Status string
	Body   string
}
