package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/craftplanner/internal/session"
)

// Stopper is a component that drains in-flight work on shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server first so no request observes a
// half-torn-down store, then reports how many sessions are being dropped.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, server Stopper, sessions session.Store) {
	slog.Info(LogMsgShuttingDownServer)

	if err := server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if sessions != nil {
		slog.Info(LogMsgSessionsDropped, "count", sessions.Len())
	}

	slog.Info(LogMsgServerStopped)
}
