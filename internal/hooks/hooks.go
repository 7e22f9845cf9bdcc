// Package hooks provides small fetch-state containers for handlers that
// render remote data. A hook runs a fetch function, tracks the
// loading/data/error triple, and can be refetched after mutations without the
// caller re-implementing the bookkeeping each time.
package hooks

import "sync"

// Snapshot is the observable state of a hook at one point in time. Loading
// is true from creation until the first fetch settles; afterwards exactly
// one of Data or Err carries the outcome of the most recent fetch.
type Snapshot[T any] struct {
	Data    T
	Err     error
	Loading bool
}

// Hook fetches a value and caches the result until the next Refetch.
type Hook[T any] struct {
	mu    sync.Mutex
	fetch func() (T, error)

	data    T
	err     error
	loading bool

	// generation invalidates fetches that settle after Close or after a
	// newer Refetch started.
	generation int
	closed     bool
}

// New creates a hook in the loading state and runs the initial fetch.
func New[T any](fetch func() (T, error)) *Hook[T] {
	h := &Hook[T]{
		fetch:   fetch,
		loading: true,
	}
	h.Refetch()

	return h
}

// Refetch runs the fetch function again and replaces the cached outcome.
// The previous data stays visible while the new fetch is in flight.
func (h *Hook[T]) Refetch() {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		return
	}

	h.loading = true
	h.generation++
	generation := h.generation
	fetch := h.fetch

	h.mu.Unlock()

	data, err := fetch()

	h.mu.Lock()
	defer h.mu.Unlock()

	// A result from a superseded or closed fetch is discarded.
	if h.closed || generation != h.generation {
		return
	}

	h.loading = false

	if err != nil {
		var zero T
		h.data = zero
		h.err = err

		return
	}

	h.data = data
	h.err = nil
}

// Snapshot returns the current loading/data/error state.
func (h *Hook[T]) Snapshot() Snapshot[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	return Snapshot[T]{
		Data:    h.data,
		Err:     h.err,
		Loading: h.loading,
	}
}

// Close marks the hook finished. In-flight and later fetches no longer
// change its state.
func (h *Hook[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.generation++
}

// Keyed is a hook whose fetch depends on a lookup key, re-running whenever
// the key changes. An empty key is terminal: the hook settles immediately
// with zero data and no error, and the fetch never runs.
type Keyed[T any] struct {
	mu    sync.Mutex
	fetch func(key string) (T, error)
	key   string
	hook  *Hook[T]
}

// NewKeyed creates a keyed hook and fetches for the initial key.
func NewKeyed[T any](key string, fetch func(key string) (T, error)) *Keyed[T] {
	k := &Keyed[T]{fetch: fetch}
	k.SetKey(key)

	return k
}

// SetKey switches the hook to a new key, fetching when the key actually
// changed. Setting the empty key settles the hook without fetching.
func (k *Keyed[T]) SetKey(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.hook != nil && key == k.key {
		return
	}

	if k.hook != nil {
		k.hook.Close()
	}

	k.key = key

	if key == "" {
		k.hook = &Hook[T]{}
		return
	}

	fetch := k.fetch
	k.hook = New(func() (T, error) {
		return fetch(key)
	})
}

// Refetch re-runs the fetch for the current key. A no-op for the empty key.
func (k *Keyed[T]) Refetch() {
	k.mu.Lock()
	hook := k.hook
	key := k.key
	k.mu.Unlock()

	if key == "" {
		return
	}

	hook.Refetch()
}

// Snapshot returns the state for the current key.
func (k *Keyed[T]) Snapshot() Snapshot[T] {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.hook.Snapshot()
}

// Close marks the hook finished for every key.
func (k *Keyed[T]) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.hook != nil {
		k.hook.Close()
	}
}
