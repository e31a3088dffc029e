package reconcile

import "context"

// LabelResolver returns the GraphQL node ID of a repository label.
// When no label with the name exists, an error wrapping ErrNotFound is
// returned.
type LabelResolver interface {
	LabelID(ctx context.Context, name string) (string, error)
}

// ColumnResolver returns the GraphQL node ID of a column of the tracked
// project board.
// When no column with the name exists, an error wrapping ErrNotFound is
// returned.
type ColumnResolver interface {
	ColumnID(ctx context.Context, name string) (string, error)
}

// CommentCodec converts between a ResponseComment and the body of a posted
// comment.
// Parse(Render(c)) must return c.Tag and c.Status.
type CommentCodec interface {
	Parse(body string) (tag, status string, ok bool)
	Render(c *ResponseComment) string
}

// Mutator applies a GraphQL mutation.
type Mutator interface {
	Mutate(ctx context.Context, mutation *Mutation) error
}

// RESTCaller sends a request to the GitHub REST API.
// A response status code outside of [200, 300) results in an error.
type RESTCaller interface {
	DoREST(ctx context.Context, c *RESTCall) error
}
