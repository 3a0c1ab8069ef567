package folio

// Value is an observable cell. Set notifies subscribers only when the value
// actually changes; subscribers run synchronously in registration order.
type Value[T comparable] struct {
	v      T
	subs   []valueSub[T]
	nextID uint32
}

type valueSub[T comparable] struct {
	id uint32
	fn func(T)
}

// NewValue creates a cell holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (c *Value[T]) Get() T {
	return c.v
}

// Set stores v and notifies subscribers if it differs from the current value.
func (c *Value[T]) Set(v T) {
	if c.v == v {
		return
	}
	c.v = v
	if len(c.subs) == 1 {
		c.subs[0].fn(v)
		return
	}
	// Snapshot so subscribers may unsubscribe while being notified.
	subs := append([]valueSub[T](nil), c.subs...)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe registers fn to run after every change. It does not run for the
// current value.
func (c *Value[T]) Subscribe(fn func(T)) Subscription {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, valueSub[T]{id: id, fn: fn})
	return Subscription{remove: func() {
		c.subs = removeByID(c.subs, id, func(s valueSub[T]) uint32 { return s.id })
	}}
}

// NumSubscribers returns the number of active subscriptions.
func (c *Value[T]) NumSubscribers() int {
	return len(c.subs)
}

// Subscription is returned by Value.Subscribe.
type Subscription struct {
	remove func()
}

// Remove cancels the subscription. Removing twice is a no-op.
func (s *Subscription) Remove() {
	if s.remove == nil {
		return
	}
	s.remove()
	s.remove = nil
}

// ReadOnly exposes a Value without Set.
type ReadOnly[T comparable] interface {
	Get() T
	Subscribe(fn func(T)) Subscription
}
