package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/NumeneraItems_Go/internal/server"
	"github.com/osse101/NumeneraItems_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Hub     *sse.Hub
	LogFile io.Closer
}

// GracefulShutdown stops components in order:
// 1. Event stream hub (closes client channels so open streams return)
// 2. HTTP server (stop accepting new requests, drain the rest)
// 3. Log file
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgShuttingDownStream, "clients", components.Hub.ClientCount())
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFile != nil {
		if err := components.LogFile.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
