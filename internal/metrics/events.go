package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

// EventMetricsCollector subscribes to item events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all item events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemCreated,
		event.ItemUsed,
		event.ItemUnsupported,
		event.ItemAbilitySynced,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemCreated:
		payload, err := event.DecodePayload[event.ItemCreatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		ItemsCreated.WithLabelValues(payload.ItemType, strconv.FormatBool(payload.Owned)).Inc()

	case event.ItemUsed:
		payload, err := event.DecodePayload[event.ItemUsedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		ItemsUsed.WithLabelValues(payload.ItemType, payload.Outcome).Inc()

	case event.ItemUnsupported:
		payload, err := event.DecodePayload[event.ItemUnsupportedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		UnsupportedVariants.WithLabelValues(payload.ItemType).Inc()

	case event.ItemAbilitySynced:
		AbilitiesSynced.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
