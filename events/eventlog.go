package events

import (
	"fmt"
	"sync"

	devents "trucosrv/domain/events"
)

// EventLog is the interface for recording and retrieving domain events.
type EventLog interface {
	Append(event devents.Event) error
	LoadEvents(gameID string) ([]devents.Event, error)
}

// InMemoryEventLog is an in-memory implementation of the EventLog interface,
// keyed by game ID.
type InMemoryEventLog struct {
	events map[string][]devents.Event
	mutex  sync.RWMutex
}

// NewInMemoryEventLog creates a new in-memory event log.
func NewInMemoryEventLog() *InMemoryEventLog {
	return &InMemoryEventLog{
		events: make(map[string][]devents.Event),
	}
}

// Append adds a new event to the log.
func (l *InMemoryEventLog) Append(event devents.Event) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	gameID := devents.ExtractGameID(event)
	if gameID == "" {
		return fmt.Errorf("event %s has no gameID", event.Name())
	}

	l.events[gameID] = append(l.events[gameID], event)
	return nil
}

// LoadEvents retrieves all events recorded for the given gameID.
func (l *InMemoryEventLog) LoadEvents(gameID string) ([]devents.Event, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if events, exists := l.events[gameID]; exists {
		// Make a copy to avoid potential race conditions
		result := make([]devents.Event, len(events))
		copy(result, events)
		return result, nil
	}

	return []devents.Event{}, nil
}

// GetEvents returns every recorded event across all games.
func (l *InMemoryEventLog) GetEvents() []devents.Event {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var events []devents.Event
	for _, e := range l.events {
		events = append(events, e...)
	}
	return events
}
