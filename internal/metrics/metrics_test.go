package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	created := ItemsCreated.WithLabelValues("cypher", "true")
	used := ItemsUsed.WithLabelValues("skill", "rolled")
	unsupported := UnsupportedVariants.WithLabelValues("vehicle")

	beforeCreated := testutil.ToFloat64(created)
	beforeUsed := testutil.ToFloat64(used)
	beforeUnsupported := testutil.ToFloat64(unsupported)
	beforeSynced := testutil.ToFloat64(AbilitiesSynced)

	require.NoError(t, bus.Publish(ctx, event.NewItemCreatedEvent("c1", "cypher", "Detonation", true)))
	require.NoError(t, bus.Publish(ctx, event.NewItemUsedEvent("s1", "skill", "Climbing", "rolled")))
	require.NoError(t, bus.Publish(ctx, event.NewItemUnsupportedEvent("vehicle")))
	require.NoError(t, bus.Publish(ctx, event.NewItemAbilitySyncedEvent("s1", "a1", "speed")))

	assert.Equal(t, beforeCreated+1, testutil.ToFloat64(created))
	assert.Equal(t, beforeUsed+1, testutil.ToFloat64(used))
	assert.Equal(t, beforeUnsupported+1, testutil.ToFloat64(unsupported))
	assert.Equal(t, beforeSynced+1, testutil.ToFloat64(AbilitiesSynced))
}

func TestEventMetricsCollector_BadPayloadIsIgnored(t *testing.T) {
	published := EventsPublished.WithLabelValues(string(event.ItemUsed))
	before := testutil.ToFloat64(published)

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: event.ItemUsed, Payload: "garbage"})
	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(published))
}

func TestMiddleware_LabelsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/library/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/library/{id}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/library/w1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	var f http.Flusher = rw
	f.Flush()
	assert.True(t, rec.Flushed)
}
