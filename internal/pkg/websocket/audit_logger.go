package websocket

import (
	"context"

	"github.com/rs/zerolog"
)

// AuditLogger writes every session event to the log
type AuditLogger struct {
	hub    *Hub
	logger zerolog.Logger
	events chan *Event
}

// NewAuditLogger creates a new AuditLogger
func NewAuditLogger(hub *Hub, logger zerolog.Logger) *AuditLogger {
	return &AuditLogger{
		hub:    hub,
		logger: logger,
		events: make(chan *Event, 64),
	}
}

// Start begins consuming events until ctx is done
func (a *AuditLogger) Start(ctx context.Context) {
	a.hub.AddListener(a.events)
	go func() {
		defer a.hub.RemoveListener(a.events)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-a.events:
				a.record(event)
			}
		}
	}()
}

func (a *AuditLogger) record(event *Event) {
	a.logger.Info().
		Str("event", event.Type).
		Str("sessionID", event.SessionID).
		Str("activeView", event.ActiveView).
		Bool("sidebarCollapsed", event.SidebarCollapsed).
		Time("at", event.Timestamp).
		Msg("Session event")
}
