package bind

// SubscriptionID identifies an Emitter subscription; zero is never issued.
type SubscriptionID uint64

type subscription[T any] struct {
	id SubscriptionID
	fn func(T)
}

// Emitter is a typed, synchronous publish/subscribe list owned by a single
// component.
type Emitter[T any] struct {
	subs []subscription[T]
	next SubscriptionID
}

// Subscribe registers fn and returns its id.
func (e *Emitter[T]) Subscribe(fn func(T)) SubscriptionID {
	if fn == nil {
		return 0
	}
	e.next++
	e.subs = append(e.subs, subscription[T]{id: e.next, fn: fn})
	return e.next
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (e *Emitter[T]) Unsubscribe(id SubscriptionID) {
	for i, sub := range e.subs {
		if sub.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// Emit calls every subscriber in subscription order.
func (e *Emitter[T]) Emit(value T) {
	snapshot := append([]subscription[T](nil), e.subs...)
	for _, sub := range snapshot {
		sub.fn(value)
	}
}

// Len reports the number of live subscriptions.
func (e *Emitter[T]) Len() int { return len(e.subs) }
