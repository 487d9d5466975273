package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/event"
)

func TestSubscriber_ForwardsItemEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	NewSubscriber(hub, bus).Subscribe()
	client := hub.Register(nil)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewItemUsedEvent("w1", "weapon", "Knife", "rolled")))
	require.NoError(t, bus.Publish(ctx, event.NewItemUnsupportedEvent("vehicle")))

	used := receive(t, client)
	assert.Equal(t, string(event.ItemUsed), used.Type)
	payload, ok := used.Payload.(event.ItemUsedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "w1", payload.ItemID)
	assert.Equal(t, "rolled", payload.Outcome)

	unsupported := receive(t, client)
	assert.Equal(t, string(event.ItemUnsupported), unsupported.Type)
}

func TestSubscriber_DecodesSerializedPayloads(t *testing.T) {
	bus := event.NewMemoryBus()
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	NewSubscriber(hub, bus).Subscribe()
	client := hub.Register(nil)

	evt := event.Event{Type: event.ItemCreated, Payload: map[string]any{"item_id": "c1", "item_type": "cypher", "owned": true}}
	require.NoError(t, bus.Publish(context.Background(), evt))

	payload, ok := receive(t, client).Payload.(event.ItemCreatedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "c1", payload.ItemID)
	assert.True(t, payload.Owned)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=item.used", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEventType := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEventType())

	hub.Broadcast("item.created", nil)
	hub.Broadcast("item.used", map[string]any{"item_id": "w1"})
	assert.Equal(t, "item.used", readEventType())
}
