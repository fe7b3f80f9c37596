package events

import (
	"log"
	"sort"
	"sync"

	devents "trucosrv/domain/events"
)

// Handler reacts to one published event
type Handler func(event devents.Event)

type subscription struct {
	priority int
	handler  Handler
}

// Broker is a typed publish/subscribe registry. Subscriptions are resolved
// per event name at startup; handlers for one event run in ascending
// priority order. Fan-out is best effort: a panicking handler is logged and
// the remaining handlers still run.
type Broker struct {
	mu   sync.RWMutex
	subs map[string][]subscription
}

// NewBroker creates an empty broker
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string][]subscription),
	}
}

// Subscribe registers a handler for the given event name. Lower priorities
// run first.
func (b *Broker) Subscribe(eventName string, priority int, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := append(b.subs[eventName], subscription{priority: priority, handler: handler})
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].priority < subs[j].priority
	})
	b.subs[eventName] = subs
}

// Publish invokes all handlers subscribed to the event's name, in priority
// order. Handlers for one event run sequentially; ordering across separately
// published events is not guaranteed.
func (b *Broker) Publish(event devents.Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs[event.Name()]))
	copy(subs, b.subs[event.Name()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.invoke(sub, event)
	}
}

func (b *Broker) invoke(sub subscription, event devents.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event handler panicked on %s: %v", event.Name(), r)
		}
	}()
	sub.handler(event)
}
