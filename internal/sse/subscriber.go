package sse

import (
	"context"

	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

// ItemEventTypes are the bus events forwarded to the stream
var ItemEventTypes = []event.Type{
	event.ItemCreated,
	event.ItemUsed,
	event.ItemUnsupported,
	event.ItemAbilitySynced,
}

// Subscriber bridges the event bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarding handler for every item event type
func (s *Subscriber) Subscribe() {
	types := make([]string, len(ItemEventTypes))
	for i, t := range ItemEventTypes {
		s.bus.Subscribe(t, s.forward)
		types[i] = string(t)
	}
	logger.Info(LogMsgSubscribed, "types", types)
}

// forward re-publishes the typed payload. Undecodable payloads are passed
// through unchanged.
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	payload := evt.Payload

	var err error
	switch evt.Type {
	case event.ItemCreated:
		payload, err = decodeAny[event.ItemCreatedPayloadV1](evt.Payload)
	case event.ItemUsed:
		payload, err = decodeAny[event.ItemUsedPayloadV1](evt.Payload)
	case event.ItemUnsupported:
		payload, err = decodeAny[event.ItemUnsupportedPayloadV1](evt.Payload)
	case event.ItemAbilitySynced:
		payload, err = decodeAny[event.ItemAbilitySyncedPayloadV1](evt.Payload)
	}
	if err != nil {
		payload = evt.Payload
	}

	s.hub.Broadcast(string(evt.Type), payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "type", evt.Type)
	return nil
}

func decodeAny[T any](input any) (any, error) {
	v, err := event.DecodePayload[T](input)
	if err != nil {
		return nil, err
	}
	return v, nil
}
