package event

// Bus is a single-threaded FIFO event queue
type Bus struct {
	handlers map[Kind][]func(Event)
	queue    []Event
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]func(Event))}
}

// Subscribe registers fn for events of type T. T must be one of the concrete
// event structs.
func Subscribe[T Event](b *Bus, fn func(T)) {
	var zero T
	kind := zero.Kind()
	b.handlers[kind] = append(b.handlers[kind], func(e Event) {
		if ev, ok := e.(T); ok {
			fn(ev)
		}
	})
}

// Publish enqueues e. Events nobody subscribed to are dropped and Publish
// returns false.
func (b *Bus) Publish(e Event) bool {
	if len(b.handlers[e.Kind()]) == 0 {
		return false
	}
	b.queue = append(b.queue, e)
	return true
}

// Poll dispatches the oldest queued event to its subscribers. It returns
// false when the queue was empty.
func (b *Bus) Poll() bool {
	if len(b.queue) == 0 {
		return false
	}

	e := b.queue[0]
	b.queue[0] = nil
	b.queue = b.queue[1:]

	for _, h := range b.handlers[e.Kind()] {
		h(e)
	}
	return true
}

// Len returns the number of queued events
func (b *Bus) Len() int {
	return len(b.queue)
}

// Clear drops every queued event
func (b *Bus) Clear() {
	b.queue = nil
}
