package scroll

import "sync"

type listener struct {
	id      uint64
	handler func()
}

// Listeners is a listener registry concrete sources can embed to satisfy
// Source. The zero value is ready to use.
type Listeners struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[Event][]listener
}

// Listen registers handler and returns an idempotent remove func
func (l *Listeners) Listen(event Event, handler func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handlers == nil {
		l.handlers = make(map[Event][]listener)
	}
	l.nextID++
	id := l.nextID
	l.handlers[event] = append(l.handlers[event], listener{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(event, id) })
	}
}

func (l *Listeners) remove(event Event, id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	handlers := l.handlers[event]
	for i, h := range handlers {
		if h.id == id {
			l.handlers[event] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every handler registered for event, in registration order.
// Handlers run outside the registry lock so they may add or remove listeners.
func (l *Listeners) Emit(event Event) {
	l.mu.Lock()
	handlers := make([]listener, len(l.handlers[event]))
	copy(handlers, l.handlers[event])
	l.mu.Unlock()

	for _, h := range handlers {
		h.handler()
	}
}

// Count returns how many handlers are registered for event
func (l *Listeners) Count(event Event) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handlers[event])
}
