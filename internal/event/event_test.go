package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewItemUnsupportedEvent("spell")))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
}

func TestItemEvents(t *testing.T) {
	created := NewItemCreatedEvent("abc", "weapon", "Broadsword", true)
	assert.Equal(t, ItemCreated, created.Type)
	assert.Equal(t, EventSchemaVersion, created.Version)

	payload, err := DecodePayload[ItemCreatedPayloadV1](created.Payload)
	require.NoError(t, err)
	assert.Equal(t, "weapon", payload.ItemType)
	assert.True(t, payload.Owned)

	synced := NewItemAbilitySyncedEvent("s1", "a1", "speed")
	assert.Equal(t, MetadataSourceSkill, synced.GetMetadataValue(MetadataKeySource))
	assert.Nil(t, created.GetMetadataValue(MetadataKeySource))
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"item_type": "artifact", "outcome": "rolled"}

	payload, err := DecodePayload[ItemUsedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "artifact", payload.ItemType)
	assert.Equal(t, "rolled", payload.Outcome)
}

func TestDecodePayload(t *testing.T) {
	want := ItemUsedPayloadV1{ItemID: "w1", ItemType: "weapon", Outcome: "delegated", Timestamp: 1700000000}

	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{"value", want, false},
		{"pointer", &want, false},
		{"raw json", json.RawMessage(`{"item_id":"w1","item_type":"weapon","outcome":"delegated","timestamp":1700000000}`), false},
		{"decoded json map", map[string]any{"item_id": "w1", "item_type": "weapon", "outcome": "delegated", "timestamp": float64(1700000000)}, false},
		{"nil pointer", (*ItemUsedPayloadV1)(nil), true},
		{"other payload struct", ItemCreatedPayloadV1{ItemID: "w1"}, true},
		{"nil", nil, true},
		{"bad json", []byte(`{"item_id":`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[ItemUsedPayloadV1](tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPayloadType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
