/*
Package nav provides observed traversal of integer sequences: a Navigator
holds a fixed sequence and notifies a single subscribed Listener once per
visited node, in order.

nav is designed to be embedded within programs that want to react to each
element of a sequence as it is visited, without coupling the traversal to the
reaction. It is a deliberately small subject/observer contract: one subject,
one listener slot, synchronous notification.

# Basic Usage

Create a navigator and subscribe a listener:

	navigator, err := nav.New([]int{10, 20, 30, 40, 50})
	if err != nil {
	    return err
	}

	rec := &nav.RecordingListener{}
	if err := navigator.Subscribe(rec); err != nil {
	    return err
	}

	if err := navigator.Navigate(ctx); err != nil {
	    return err
	}

	fmt.Println(rec.Visited()) // [10 20 30 40 50]

Listeners are plain functions if you prefer:

	navigator.Subscribe(nav.ListenerFunc(func(value int) error {
	    fmt.Println("visited", value)
	    return nil
	}))

Subscribing replaces any prior listener; Unsubscribe clears the slot. Each
Navigate call independently re-traverses the full sequence from the start.

# Failure Semantics

A listener that returns an error aborts the remainder of that traversal. The
navigator reports the failure as a *NavigationError carrying the node index,
the node value, and the original cause:

	var navErr *nav.NavigationError
	if errors.As(navigator.Navigate(ctx), &navErr) {
	    log.Printf("stopped at node %d (value %d): %v",
	        navErr.Index, navErr.Value, navErr.Err)
	}

# Sequence Documents

Sequences can be loaded from JSON or YAML documents and validated before a
navigator is built:

	navigator, err := nav.Parse([]byte("values: [1, 2, 3]"), nil)

A document whose values key is absent or null is rejected; an explicitly
empty list is a valid empty navigator.

# Feeds

For sequences that live in a changing source, a Feed watches the source,
rebuilds the navigator on every change, and re-navigates it with the
subscribed listener:

	feed := nav.NewFeed(
	    nav.NewFileWatcher("sequence.yaml"),
	    listener,
	    nav.WithDebounce(200*time.Millisecond),
	)

	if err := feed.Start(ctx); err != nil {
	    log.Printf("initial load failed: %v", err)
	}

A document that fails to parse, validate, or navigate never replaces the
current navigator; the feed keeps the last good one and records the error.

# Observability

Lifecycle events are emitted as capitan signals (NavigateStarted,
NavigateCompleted, NavigateFailed, and the Feed* family). Hook them for
logging or debugging:

	capitan.Hook(nav.NavigateCompleted, func(_ context.Context, e *capitan.Event) {
	    visited, _ := nav.KeyVisited.From(e)
	    fmt.Printf("visited %d nodes\n", visited)
	})

For metrics backends, implement MetricsProvider and pass it via WithMetrics.
*/
package nav
