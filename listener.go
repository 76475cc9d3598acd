package nav

// Listener is notified once per node visited during a traversal.
// Implementations receive values synchronously, in storage order, and must
// not block longer than the caller of Navigate is willing to wait.
//
// A non-nil error aborts the remainder of the traversal; the navigator
// reports it as a *NavigationError wrapping the returned error.
type Listener interface {
	// NodeVisited is called with the value of each visited node.
	NodeVisited(value int) error
}

// ListenerFunc adapts an ordinary function to the Listener interface.
type ListenerFunc func(value int) error

// NodeVisited calls f(value).
func (f ListenerFunc) NodeVisited(value int) error {
	return f(value)
}
