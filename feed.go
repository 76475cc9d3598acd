package nav

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for feed change processing.
const DefaultDebounce = 100 * time.Millisecond

// Feed watches a source of sequence documents, rebuilds a Navigator on every
// change, and navigates it with the subscribed listener.
//
// A document must parse, validate, and navigate successfully before its
// navigator replaces the current one; on any failure the previous navigator
// is retained and the error is recorded.
type Feed struct {
	watcher  Watcher
	listener Listener
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	codec    Codec
	navOpts  []Option

	state     atomic.Int32
	current   atomic.Pointer[Navigator]
	lastError atomic.Pointer[error]

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// feedConfig holds configuration options for a Feed.
type feedConfig struct {
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	codec    Codec
	navOpts  []Option
}

// FeedOption configures a Feed.
type FeedOption func(*feedConfig)

// WithDebounce sets the debounce duration for change processing.
// Changes arriving within this duration are coalesced into a single update.
func WithDebounce(d time.Duration) FeedOption {
	return func(c *feedConfig) {
		c.debounce = d
	}
}

// WithSyncMode enables synchronous processing for testing.
// In sync mode, changes are processed immediately without debouncing
// or async goroutines, making tests deterministic.
func WithSyncMode() FeedOption {
	return func(c *feedConfig) {
		c.syncMode = true
	}
}

// WithFeedClock sets a custom clock for debounce timing.
// Use this with clockz.FakeClock for deterministic debounce testing.
func WithFeedClock(clock clockz.Clock) FeedOption {
	return func(c *feedConfig) {
		c.clock = clock
	}
}

// WithCodec enforces a document format for incoming data.
// Without this option, format is auto-detected per document.
func WithCodec(codec Codec) FeedOption {
	return func(c *feedConfig) {
		c.codec = codec
	}
}

// WithNavigatorOptions passes options through to every Navigator the feed
// builds.
func WithNavigatorOptions(opts ...Option) FeedOption {
	return func(c *feedConfig) {
		c.navOpts = opts
	}
}

// NewFeed creates a Feed for a single source.
//
// The watcher emits raw bytes when the source changes. Bytes are unmarshaled
// into a Sequence document (via yaml/json struct tags), validated, and built
// into a Navigator. On success the listener is subscribed and the navigator
// traversed, so the listener observes every value of every accepted update.
//
// A nil listener is allowed: the feed still loads navigators, and traversals
// simply produce no notifications.
//
// Example:
//
//	feed := nav.NewFeed(
//	    nav.NewFileWatcher("sequence.yaml"),
//	    nav.ListenerFunc(func(value int) error {
//	        fmt.Println("visited", value)
//	        return nil
//	    }),
//	)
func NewFeed(watcher Watcher, listener Listener, opts ...FeedOption) *Feed {
	cfg := &feedConfig{
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &Feed{
		watcher:  watcher,
		listener: listener,
		debounce: cfg.debounce,
		syncMode: cfg.syncMode,
		clock:    cfg.clock,
		codec:    cfg.codec,
		navOpts:  cfg.navOpts,
	}
	f.state.Store(int32(FeedLoading))

	return f
}

// State returns the current state of the Feed.
func (f *Feed) State() FeedState {
	return FeedState(f.state.Load())
}

// Current returns the navigator built from the most recent accepted document
// and true, or nil and false if no document has ever been accepted.
func (f *Feed) Current() (*Navigator, bool) {
	n := f.current.Load()
	if n == nil {
		return nil, false
	}
	return n, true
}

// LastError returns the last error encountered, or nil if no error occurred.
func (f *Feed) LastError() error {
	ptr := f.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Start begins watching for changes. It blocks until the first document is
// processed (success or failure), then continues watching asynchronously.
//
// If the initial document fails, Start returns the error but continues
// watching in the background for valid updates.
//
// In sync mode, Start only processes the initial value. Use ProcessNext() to
// manually trigger processing of subsequent values.
//
// Start can only be called once. Subsequent calls return an error.
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return fmt.Errorf("feed already started")
	}
	f.started = true
	f.mu.Unlock()

	capitan.Emit(ctx, FeedStarted,
		KeyDebounce.Field(f.debounce),
	)

	changes, err := f.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	// Wait for first value and process synchronously
	var initialErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return fmt.Errorf("watcher closed before emitting initial value")
		}
		capitan.Emit(ctx, FeedChangeReceived)
		initialErr = f.process(ctx, raw)
	}

	if f.syncMode {
		// In sync mode, store channel for manual processing
		f.changes = changes
		return initialErr
	}

	// Continue watching asynchronously
	go f.watch(ctx, changes)

	return initialErr
}

// ProcessNext reads and processes the next value from the watcher.
// This is only available in sync mode and is used for deterministic testing.
// Returns false if no value is available or the channel is closed.
func (f *Feed) ProcessNext(ctx context.Context) bool {
	if !f.syncMode {
		return false
	}

	select {
	case raw, ok := <-f.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, FeedChangeReceived)
		_ = f.process(ctx, raw) //nolint:errcheck // Errors stored via setError
		return true
	default:
		return false
	}
}

// process parses, validates, and navigates a single document.
func (f *Feed) process(ctx context.Context, raw []byte) error {
	oldState := f.State()

	navigator, err := Parse(raw, f.codec, f.navOpts...)
	if err != nil {
		f.setError(err)
		f.transitionState(ctx, oldState, f.failureState())
		capitan.Emit(ctx, FeedLoadFailed,
			KeyError.Field(err.Error()),
		)
		return err
	}

	if f.listener != nil {
		if err := navigator.Subscribe(f.listener); err != nil {
			f.setError(err)
			f.transitionState(ctx, oldState, f.failureState())
			capitan.Emit(ctx, FeedLoadFailed,
				KeyError.Field(err.Error()),
			)
			return err
		}
	}

	if err := navigator.Navigate(ctx); err != nil {
		f.setError(err)
		f.transitionState(ctx, oldState, f.failureState())
		capitan.Emit(ctx, FeedLoadFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("navigation failed: %w", err)
	}

	// Success
	f.current.Store(navigator)
	f.lastError.Store(nil)
	f.transitionState(ctx, oldState, FeedHealthy)
	capitan.Emit(ctx, FeedLoaded,
		KeySize.Field(navigator.Size()),
	)

	return nil
}

// failureState returns the appropriate failure state based on whether a
// navigator has ever been built.
func (f *Feed) failureState() FeedState {
	if f.current.Load() == nil {
		return FeedEmpty
	}
	return FeedDegraded
}

// transitionState updates the state and emits a state change event if changed.
func (f *Feed) transitionState(ctx context.Context, oldState, newState FeedState) {
	if oldState == newState {
		return
	}
	f.state.Store(int32(newState))
	capitan.Emit(ctx, FeedStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
}

// setError stores an error atomically.
func (f *Feed) setError(err error) {
	e := err
	f.lastError.Store(&e)
}

// watch processes changes from the watcher channel with debouncing.
func (f *Feed) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		capitan.Emit(ctx, FeedStopped,
			KeyState.Field(f.State().String()),
		)
	}()

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		// Get timer channel or nil if no timer
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				// Channel closed, process any pending change
				if hasPending {
					_ = f.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				}
				return
			}

			capitan.Emit(ctx, FeedChangeReceived)
			pending = raw
			hasPending = true

			// Reset or start debounce timer
			if timer == nil {
				timer = f.clock.NewTimer(f.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(f.debounce)
			}

		case <-timerC:
			if hasPending {
				_ = f.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				hasPending = false
			}
		}
	}
}
