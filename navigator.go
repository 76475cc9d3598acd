package nav

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Navigator traverses a fixed sequence of integers and notifies a single
// subscribed Listener once per visited node, in storage order.
//
// The sequence is copied at construction and never mutated afterwards. The
// listener slot holds at most one listener; Subscribe replaces it silently
// and Unsubscribe clears it.
//
// A Navigator is not safe for concurrent use. It assumes a single logical
// owner; callers that share an instance across goroutines must serialize
// access themselves.
type Navigator struct {
	values   []int
	listener Listener

	metrics      MetricsProvider
	clock        clockz.Clock
	errorHistory *errorRing
}

// config holds configuration options for a Navigator.
type config struct {
	metrics      MetricsProvider
	clock        clockz.Clock
	errorHistory int
}

// Option configures a Navigator.
type Option func(*config)

// WithMetrics sets a metrics provider to receive traversal callbacks.
func WithMetrics(m MetricsProvider) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithClock sets a custom clock for traversal timing.
// Use this with clockz.FakeClock for deterministic duration testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithErrorHistory retains the last n navigation failures, retrievable via
// ErrorHistory and LastNavigationError. Zero (the default) disables history.
func WithErrorHistory(n int) Option {
	return func(c *config) {
		c.errorHistory = n
	}
}

// New creates a Navigator holding a copy of values.
//
// A nil slice is rejected with ErrNilSequence; an empty slice is a valid
// empty navigator. The initial state is StateUnsubscribed.
func New(values []int, opts ...Option) (*Navigator, error) {
	if values == nil {
		return nil, ErrNilSequence
	}

	cfg := &config{
		metrics: NoOpMetricsProvider{},
		clock:   clockz.RealClock,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	stored := make([]int, len(values))
	copy(stored, values)

	return &Navigator{
		values:       stored,
		metrics:      cfg.metrics,
		clock:        cfg.clock,
		errorHistory: newErrorRing(cfg.errorHistory),
	}, nil
}

// Subscribe stores l as the current listener, replacing any previously
// subscribed listener. Subsequent traversals notify l instead.
//
// A nil listener is rejected with ErrNilListener and leaves the current
// listener untouched; use Unsubscribe to clear the slot.
func (n *Navigator) Subscribe(l Listener) error {
	if l == nil {
		return ErrNilListener
	}
	old := n.State()
	n.listener = l
	if old != StateSubscribed {
		n.metrics.OnStateChange(old, StateSubscribed)
	}
	return nil
}

// Unsubscribe clears the current listener. Calling it with no listener
// subscribed is a no-op.
func (n *Navigator) Unsubscribe() {
	old := n.State()
	n.listener = nil
	if old != StateUnsubscribed {
		n.metrics.OnStateChange(old, StateUnsubscribed)
	}
}

// Listener returns the current listener, or nil if none is subscribed.
func (n *Navigator) Listener() Listener {
	return n.listener
}

// Size returns the number of stored nodes.
func (n *Navigator) Size() int {
	return len(n.values)
}

// IsEmpty reports whether the navigator holds no nodes.
func (n *Navigator) IsEmpty() bool {
	return len(n.values) == 0
}

// State returns StateSubscribed if a listener is subscribed, otherwise
// StateUnsubscribed.
func (n *Navigator) State() State {
	if n.listener != nil {
		return StateSubscribed
	}
	return StateUnsubscribed
}

// Navigate traverses the sequence from first to last node. For each node,
// the current listener (if any) is notified synchronously before the next
// node is visited. With no listener subscribed the traversal still completes
// and produces no notifications; that is not an error.
//
// Each call re-traverses the full sequence from the start; no cursor is
// retained between calls.
//
// If the listener returns an error, or ctx is canceled between nodes, the
// remainder of the traversal is aborted and the failure is reported as a
// *NavigationError identifying the node at which traversal stopped. The
// original cause is preserved through Unwrap.
func (n *Navigator) Navigate(ctx context.Context) error {
	capitan.Emit(ctx, NavigateStarted,
		KeySize.Field(len(n.values)),
		KeyListener.Field(n.listenerName()),
	)

	start := n.clock.Now()

	for i, value := range n.values {
		if err := ctx.Err(); err != nil {
			return n.fail(ctx, i, value, err, start)
		}

		if n.listener == nil {
			continue
		}

		if err := n.listener.NodeVisited(value); err != nil {
			return n.fail(ctx, i, value, err, start)
		}
		n.metrics.OnNodeVisited()
	}

	duration := n.clock.Since(start)
	n.metrics.OnNavigateSuccess(len(n.values), duration)
	capitan.Emit(ctx, NavigateCompleted,
		KeyVisited.Field(len(n.values)),
		KeyDuration.Field(duration),
	)

	return nil
}

// fail records and reports a traversal that stopped at node index.
func (n *Navigator) fail(ctx context.Context, index, value int, cause error, start time.Time) error {
	navErr := &NavigationError{Index: index, Value: value, Err: cause}
	n.errorHistory.push(navErr)

	duration := n.clock.Since(start)
	n.metrics.OnNavigateFailure(index, duration)
	capitan.Emit(ctx, NavigateFailed,
		KeyIndex.Field(index),
		KeyValue.Field(value),
		KeyError.Field(cause.Error()),
		KeyDuration.Field(duration),
	)

	return navErr
}

// ErrorHistory returns the most recent navigation failures, oldest first.
// Returns nil unless WithErrorHistory was set.
func (n *Navigator) ErrorHistory() []*NavigationError {
	return n.errorHistory.all()
}

// LastNavigationError returns the most recent navigation failure, or nil.
// Returns nil unless WithErrorHistory was set.
func (n *Navigator) LastNavigationError() *NavigationError {
	return n.errorHistory.latest()
}

// String returns a diagnostic snapshot of the navigator: node count, whether
// a listener is subscribed, and the stored values. It is intended for
// debugging output, not control decisions.
func (n *Navigator) String() string {
	return fmt.Sprintf("Navigator{size=%d, subscribed=%t, values=%v}",
		len(n.values), n.listener != nil, n.values)
}

// listenerName returns the type name of the current listener for
// observability fields, or "none".
func (n *Navigator) listenerName() string {
	if n.listener == nil {
		return "none"
	}
	return fmt.Sprintf("%T", n.listener)
}
