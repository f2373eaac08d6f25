// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Calculator event types
const (
	SessionStarted       Type = "session_started"
	OperationSelected    Type = "operation_selected"
	CalculationCompleted Type = "calculation_completed"
	CalculationFailed    Type = "calculation_failed"
	InputRejected        Type = "input_rejected"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := append([]subscriber(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// CalculationEvent describes one calculation request and its outcome
type CalculationEvent struct {
	BaseEvent
	SessionID string
	Operation string
	Result    string
	Err       error
}

// NewCalculationEvent creates a new calculation event
func NewCalculationEvent(eventType Type, source interface{}, sessionID, operation, result string, err error) *CalculationEvent {
	return &CalculationEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		SessionID: sessionID,
		Operation: operation,
		Result:    result,
		Err:       err,
	}
}

// SelectionEvent is published when the selected operation changes
type SelectionEvent struct {
	BaseEvent
	Operation string
	Index     int
}

// NewSelectionEvent creates a new selection event
func NewSelectionEvent(source interface{}, operation string, index int) *SelectionEvent {
	return &SelectionEvent{
		BaseEvent: BaseEvent{
			EventType: OperationSelected,
			Source:    source,
		},
		Operation: operation,
		Index:     index,
	}
}
