// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	SimulationStarted Type = "simulation_started"
	SimulationEnded   Type = "simulation_ended"
	BodyAdded         Type = "body_added"
	BodyRemoved       Type = "body_removed"
	BodyCollision     Type = "body_collision"
	BoundaryHit       Type = "boundary_hit"
	BodyDiverged      Type = "body_diverged"
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

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, reg := range regs {
		if reg.id == id {
			// Copy so a Publish iterating the old slice is unaffected
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			b.handlers[eventType] = next
			return
		}
	}
}

// HandlerCount returns how many handlers are registered for eventType.
func (b *Bus) HandlerCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, reg := range regs {
		reg.handler(event)
	}
}

// BodyEvent concerns a single body
type BodyEvent struct {
	BaseEvent
	BodyID uint64
	Frame  uint64
}

// NewBodyEvent creates a new body event
func NewBodyEvent(eventType Type, source interface{}, bodyID, frame uint64) *BodyEvent {
	return &BodyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BodyID: bodyID,
		Frame:  frame,
	}
}

// CollisionEvent reports that BodyA redirected BodyB
type CollisionEvent struct {
	BaseEvent
	BodyA uint64
	BodyB uint64
	Frame uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, bodyA, bodyB, frame uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: BodyCollision,
			Source:    source,
		},
		BodyA: bodyA,
		BodyB: bodyB,
		Frame: frame,
	}
}

// BoundaryEvent reports a wall bounce
type BoundaryEvent struct {
	BaseEvent
	BodyID uint64
	Wall   string
	Frame  uint64
}

// NewBoundaryEvent creates a new boundary event
func NewBoundaryEvent(source interface{}, bodyID uint64, wall string, frame uint64) *BoundaryEvent {
	return &BoundaryEvent{
		BaseEvent: BaseEvent{
			EventType: BoundaryHit,
			Source:    source,
		},
		BodyID: bodyID,
		Wall:   wall,
		Frame:  frame,
	}
}
