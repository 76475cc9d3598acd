package nav

import "github.com/zoobzio/capitan"

// Field keys for traversal and feed events.
var (
	// KeySize is the number of nodes in the sequence.
	KeySize = capitan.NewIntKey("size")

	// KeyVisited is the number of nodes visited in a traversal.
	KeyVisited = capitan.NewIntKey("visited")

	// KeyIndex is the index of the node at which a traversal stopped.
	KeyIndex = capitan.NewIntKey("index")

	// KeyValue is the value of the node at which a traversal stopped.
	KeyValue = capitan.NewIntKey("value")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyListener is the type name of the subscribed listener, or "none".
	KeyListener = capitan.NewStringKey("listener")

	// KeyDuration is the elapsed time of a traversal.
	KeyDuration = capitan.NewDurationKey("duration")

	// KeyDebounce is the configured debounce duration of a Feed.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyState is the feed state at the time of the event.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous feed state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new feed state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")
)
