package reconcile

import "errors"

// ErrNotFound is returned when a label or project column name can not be
// resolved to an ID.
var ErrNotFound = errors.New("not found")
