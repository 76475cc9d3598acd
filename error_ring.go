package nav

import "sync"

// errorRing is a thread-safe ring buffer of recent navigation failures.
type errorRing struct {
	mu     sync.RWMutex
	errors []*NavigationError
	size   int
	head   int
	count  int
}

// newErrorRing creates a ring buffer with the given capacity.
// If size is 0 or negative, history is disabled and nil is returned.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{
		errors: make([]*NavigationError, size),
		size:   size,
	}
}

// push adds a failure to the ring buffer, evicting the oldest when full.
func (r *errorRing) push(err *NavigationError) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors[r.head] = err
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// all returns the recorded failures, oldest first, or nil if none.
func (r *errorRing) all() []*NavigationError {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	out := make([]*NavigationError, 0, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		out = append(out, r.errors[(start+i)%r.size])
	}
	return out
}

// latest returns the most recent failure, or nil if none.
func (r *errorRing) latest() *NavigationError {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}
	return r.errors[(r.head-1+r.size)%r.size]
}

// clear removes all recorded failures.
func (r *errorRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.errors {
		r.errors[i] = nil
	}
	r.head = 0
	r.count = 0
}
