package nav

// State represents the listener slot of a Navigator.
type State int32

const (
	// StateUnsubscribed indicates no listener is subscribed. Traversal
	// still visits every node but produces no notifications.
	StateUnsubscribed State = iota

	// StateSubscribed indicates a listener is subscribed and will be
	// notified once per visited node.
	StateSubscribed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnsubscribed:
		return "unsubscribed"
	case StateSubscribed:
		return "subscribed"
	default:
		return "unknown"
	}
}

// FeedState represents the current state of a Feed.
type FeedState int32

const (
	// FeedLoading indicates the Feed is initializing and has not yet
	// processed any sequence document.
	FeedLoading FeedState = iota

	// FeedHealthy indicates the Feed holds a navigator built from the most
	// recent document.
	FeedHealthy

	// FeedDegraded indicates the last document failed to parse, validate,
	// or navigate. The previous navigator remains current.
	FeedDegraded

	// FeedEmpty indicates the initial document failed and no navigator has
	// ever been built. The Feed continues watching for valid updates.
	FeedEmpty
)

// String returns the string representation of the feed state.
func (s FeedState) String() string {
	switch s {
	case FeedLoading:
		return "loading"
	case FeedHealthy:
		return "healthy"
	case FeedDegraded:
		return "degraded"
	case FeedEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
