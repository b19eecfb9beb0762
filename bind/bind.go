// Package bind provides a minimal observable value used to expose widget
// state, such as the current spinner selection, to the embedding application.
package bind

// Bind holds a value and a set of listeners notified when it changes.
// It is meant to be driven from the toolkit's event loop goroutine.
type Bind[T any] struct {
	value     T
	equal     func(T, T) bool
	listeners map[uint64]func(T)
	nextID    uint64
}

// New creates a binding for a comparable value.
func New[T comparable](v T) *Bind[T] {
	return NewWithEqual(v, func(a, b T) bool {
		return a == b
	})
}

// NewWithEqual creates a binding with a custom equality check, used by Set to
// suppress notifications for unchanged values.
func NewWithEqual[T any](v T, equal func(T, T) bool) *Bind[T] {
	return &Bind[T]{
		value:     v,
		equal:     equal,
		listeners: map[uint64]func(T){},
	}
}

// Get returns the current value.
func (b *Bind[T]) Get() T {
	return b.value
}

// Set stores the value and notifies listeners, unless it equals the current one.
func (b *Bind[T]) Set(value T) {
	if b.equal != nil && b.equal(b.value, value) {
		return
	}

	b.Notify(value)
}

// Notify stores the value and notifies all listeners unconditionally.
func (b *Bind[T]) Notify(value T) {
	b.value = value
	for _, fn := range b.listeners {
		fn(value)
	}
}

// Listen registers a handler for future changes. The returned function
// unregisters it.
func (b *Bind[T]) Listen(fn func(T)) func() {
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn

	return func() {
		delete(b.listeners, id)
	}
}

// Bind registers a handler and calls it immediately with the current value.
func (b *Bind[T]) Bind(fn func(T)) func() {
	fn(b.value)

	return b.Listen(fn)
}

// UnbindAll drops every registered listener.
func (b *Bind[T]) UnbindAll() {
	clear(b.listeners)
}
