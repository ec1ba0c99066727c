package core

// Observable is a minimal current-value subject: it holds the latest value
// and a list of listeners invoked synchronously whenever the value changes.
// All mutation happens on the single frame-update goroutine, so no locking
// is needed.
type Observable[T comparable] struct {
	value     T
	listeners []func(T)
}

// NewObservable creates an observable holding the given initial value.
func NewObservable[T comparable](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	return o.value
}

// Set updates the value and notifies listeners if it changed.
func (o *Observable[T]) Set(v T) {
	if v == o.value {
		return
	}
	o.value = v
	for _, fn := range o.listeners {
		fn(v)
	}
}

// Subscribe registers a listener and immediately invokes it with the current
// value, so subscribers never miss the state that existed before they joined.
func (o *Observable[T]) Subscribe(fn func(T)) {
	o.listeners = append(o.listeners, fn)
	fn(o.value)
}
