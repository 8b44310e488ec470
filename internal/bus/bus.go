package bus

import (
	"sync"

	"github.com/rs/zerolog"
)

// Handler receives the arguments passed to Emit.
type Handler func(args ...any)

// Subscription identifies a single registered handler.
// Handlers are funcs and cannot be compared, so removal goes through the token.
type Subscription struct {
	event string
	id    uint64
}

type entry struct {
	id    uint64
	fn    Handler
	async bool
}

// Bus dispatches named events to registered handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]entry
	nextID   uint64
	logger   zerolog.Logger
}

// New initializes an empty bus. Handler failures are reported through logger.
func New(logger zerolog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]entry),
		logger:   logger,
	}
}

// On registers a handler invoked synchronously on Emit, in registration order.
func (b *Bus) On(event string, fn Handler) Subscription {
	return b.subscribe(event, fn, false)
}

// OnAsync registers a handler scheduled on its own goroutine per Emit.
func (b *Bus) OnAsync(event string, fn Handler) Subscription {
	return b.subscribe(event, fn, true)
}

func (b *Bus) subscribe(event string, fn Handler, async bool) Subscription {
	if fn == nil {
		return Subscription{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.handlers[event] = append(b.handlers[event], entry{id: b.nextID, fn: fn, async: async})
	return Subscription{event: event, id: b.nextID}
}

// Off removes the handler identified by sub. Unknown tokens are a no-op.
func (b *Bus) Off(event string, sub Subscription) {
	if sub.id == 0 || sub.event != event {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.handlers[event]
	for i, e := range entries {
		if e.id == sub.id {
			b.handlers[event] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(b.handlers[event]) == 0 {
		delete(b.handlers, event)
	}
}

// OffAll removes every handler registered for event.
func (b *Bus) OffAll(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, event)
}

// HandlerCount returns the number of handlers registered for event.
func (b *Bus) HandlerCount(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[event])
}

// Emit delivers args to every handler registered for event at call time.
// Synchronous handlers run inline in registration order; asynchronous handlers
// are scheduled on their own goroutines. A panicking handler never interrupts
// delivery to the rest.
func (b *Bus) Emit(event string, args ...any) {
	b.mu.RLock()
	entries := b.handlers[event]
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)
	b.mu.RUnlock()

	for _, e := range snapshot {
		if e.async {
			go b.invoke(event, e, args)
			continue
		}
		b.invoke(event, e, args)
	}
}

func (b *Bus) invoke(event string, e entry, args []any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("event", event).
				Uint64("subscription", e.id).
				Any("panic", r).
				Msg("bus.Bus handler panicked")
		}
	}()
	e.fn(args...)
}
