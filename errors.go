package nav

import (
	"errors"
	"fmt"
)

// ErrNilSequence is returned by New and Parse when the input sequence is
// absent. An empty sequence is valid; a nil one is a caller error.
var ErrNilSequence = errors.New("sequence cannot be nil")

// ErrNilListener is returned by Subscribe when the listener is nil.
// Use Unsubscribe to clear the listener slot.
var ErrNilListener = errors.New("listener cannot be nil")

// NavigationError reports a traversal that stopped before visiting every
// node. Index and Value identify the node at which traversal stopped; nodes
// after it were not visited in that call. Err is the original cause, either
// the listener's error or the context's, and remains reachable through
// errors.Is and errors.As.
type NavigationError struct {
	Index int
	Value int
	Err   error
}

// Error returns a description including the failing node and the cause.
func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation stopped at node %d (value %d): %v", e.Index, e.Value, e.Err)
}

// Unwrap returns the original cause.
func (e *NavigationError) Unwrap() error {
	return e.Err
}
