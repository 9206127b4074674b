package observability

import (
	"context"

	"go.uber.org/zap"
)

// EventBus publishes generation lifecycle events as structured log entries.
type EventBus struct {
	logger *zap.Logger
}

// NewEventBus creates a new event bus.
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		logger: logger,
	}
}

// Publish publishes an event with the given type and data.
func (e *EventBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if e.logger == nil {
		return
	}

	fields := make([]zap.Field, 0, len(data)+1)
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}

	e.logger.Info(eventType, fields...)
}
