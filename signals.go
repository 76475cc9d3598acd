package nav

import "github.com/zoobzio/capitan"

// Navigator traversal signals.
var (
	// NavigateStarted is emitted when a traversal begins.
	NavigateStarted = capitan.NewSignal(
		"nav.navigate.started",
		"Traversal started",
	)

	// NavigateCompleted is emitted when a traversal visits every node.
	NavigateCompleted = capitan.NewSignal(
		"nav.navigate.completed",
		"Traversal completed",
	)

	// NavigateFailed is emitted when a traversal stops early because the
	// listener failed or the context was canceled.
	NavigateFailed = capitan.NewSignal(
		"nav.navigate.failed",
		"Traversal stopped before completion",
	)
)

// Feed lifecycle signals.
var (
	// FeedStarted is emitted when a Feed begins watching its source.
	FeedStarted = capitan.NewSignal(
		"nav.feed.started",
		"Feed watching started",
	)

	// FeedStopped is emitted when a Feed stops watching.
	FeedStopped = capitan.NewSignal(
		"nav.feed.stopped",
		"Feed watching stopped",
	)

	// FeedChangeReceived is emitted when raw data is received from the watcher.
	FeedChangeReceived = capitan.NewSignal(
		"nav.feed.change.received",
		"Raw change received from watcher",
	)

	// FeedLoaded is emitted when a document produces a navigator and the
	// traversal succeeds.
	FeedLoaded = capitan.NewSignal(
		"nav.feed.loaded",
		"Sequence loaded and navigated",
	)

	// FeedLoadFailed is emitted when a document fails to parse, validate,
	// or navigate.
	FeedLoadFailed = capitan.NewSignal(
		"nav.feed.load.failed",
		"Sequence load failed",
	)

	// FeedStateChanged is emitted when a Feed transitions between states.
	FeedStateChanged = capitan.NewSignal(
		"nav.feed.state.changed",
		"Feed state transition",
	)
)
