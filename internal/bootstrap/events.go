package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/metrics"
	"github.com/osse101/NumeneraItems_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
}

// InitializeEventSystem creates the in-process event bus items publish to.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (item counters)
// - Stream subscriber (forwards item events to SSE clients), when a hub is given
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgStreamSubscriberRegistered)
	}

	return nil
}
