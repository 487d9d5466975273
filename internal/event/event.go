package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Item lifecycle event types
const (
	ItemCreated       Type = "item.created"
	ItemUsed          Type = "item.used"
	ItemUnsupported   Type = "item.unsupported"
	ItemAbilitySynced Type = "item.ability_synced"
)

// Typed event payloads for type safety

// ItemCreatedPayloadV1 is the typed payload for item creation events
type ItemCreatedPayloadV1 struct {
	ItemID    string `json:"item_id"`
	ItemType  string `json:"item_type"`
	Name      string `json:"name"`
	Owned     bool   `json:"owned"`
	Timestamp int64  `json:"timestamp"`
}

// ItemUsedPayloadV1 is the typed payload for item use events
type ItemUsedPayloadV1 struct {
	ItemID    string `json:"item_id"`
	ItemType  string `json:"item_type"`
	Name      string `json:"name"`
	Outcome   string `json:"outcome"`
	Timestamp int64  `json:"timestamp"`
}

// ItemUnsupportedPayloadV1 is the typed payload for rejected type tags
type ItemUnsupportedPayloadV1 struct {
	ItemType  string `json:"item_type"`
	Timestamp int64  `json:"timestamp"`
}

// ItemAbilitySyncedPayloadV1 is the typed payload for skill to ability syncs
type ItemAbilitySyncedPayloadV1 struct {
	SkillID   string `json:"skill_id"`
	AbilityID string `json:"ability_id"`
	Pool      string `json:"pool"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewItemCreatedEvent creates a new item created event
func NewItemCreatedEvent(itemID, itemType, name string, owned bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemCreated,
		Payload: ItemCreatedPayloadV1{
			ItemID:    itemID,
			ItemType:  itemType,
			Name:      name,
			Owned:     owned,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemUsedEvent creates a new item used event
func NewItemUsedEvent(itemID, itemType, name, outcome string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: ItemUsedPayloadV1{
			ItemID:    itemID,
			ItemType:  itemType,
			Name:      name,
			Outcome:   outcome,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemUnsupportedEvent creates a new unsupported type event
func NewItemUnsupportedEvent(itemType string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUnsupported,
		Payload: ItemUnsupportedPayloadV1{
			ItemType:  itemType,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemAbilitySyncedEvent creates a new ability synced event
func NewItemAbilitySyncedEvent(skillID, abilityID, pool string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemAbilitySynced,
		Payload: ItemAbilitySyncedPayloadV1{
			SkillID:   skillID,
			AbilityID: abilityID,
			Pool:      pool,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: MetadataSourceSkill,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously, in subscription order.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
