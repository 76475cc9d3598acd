package nav

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key navigator events.
type MetricsProvider interface {
	// OnStateChange is called when the listener slot transitions between states.
	OnStateChange(from, to State)

	// OnNodeVisited is called after each successful listener notification.
	OnNodeVisited()

	// OnNavigateSuccess is called when a traversal visits every node.
	// Visited is the number of nodes notified; duration is the traversal time.
	OnNavigateSuccess(visited int, duration time.Duration)

	// OnNavigateFailure is called when a traversal stops early.
	// Index is the node at which traversal stopped.
	OnNavigateFailure(index int, duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)                 {}
func (NoOpMetricsProvider) OnNodeVisited()                           {}
func (NoOpMetricsProvider) OnNavigateSuccess(_ int, _ time.Duration) {}
func (NoOpMetricsProvider) OnNavigateFailure(_ int, _ time.Duration) {}
