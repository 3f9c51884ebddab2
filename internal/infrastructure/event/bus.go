// Package event provides the in-process domain event bus. Services publish
// after a successful commit; handlers such as the sponsor dashboard
// invalidator run synchronously on the publishing goroutine.
package event

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/acme/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DispatchObserver is told about every handler invocation. err is nil on success.
type DispatchObserver func(eventType string, err error)

// InMemoryEventBus delivers events to registered handlers in process
type InMemoryEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
	observer DispatchObserver
	running  atomic.Bool
}

// BusOption configures the bus
type BusOption func(*InMemoryEventBus)

// WithDispatchObserver hooks handler outcomes, typically into metrics
func WithDispatchObserver(o DispatchObserver) BusOption {
	return func(b *InMemoryEventBus) {
		b.observer = o
	}
}

// NewInMemoryEventBus creates a bus. It accepts events before Start is called.
func NewInMemoryEventBus(logger *zap.Logger, opts ...BusOption) *InMemoryEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
	b.running.Store(true)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish hands each event to its handlers in order. A failing handler is
// logged and does not stop the others; the caller's write has already
// committed, so Publish itself only fails once the bus is stopped.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if !b.running.Load() {
		return fmt.Errorf("event bus stopped")
	}
	for _, ev := range events {
		if ev == nil {
			continue
		}
		for _, handler := range b.registry.HandlersFor(ev.EventType()) {
			err := b.dispatch(ctx, handler, ev)
			if b.observer != nil {
				b.observer(ev.EventType(), err)
			}
			if err != nil {
				b.logger.Error("Event handler failed",
					zap.String("event_type", ev.EventType()),
					zap.String("event_id", ev.EventID().String()),
					zap.String("aggregate_id", ev.AggregateID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers handler for eventTypes, or for handler.EventTypes() when none are given
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("Event handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
}

// Start resumes delivery
func (b *InMemoryEventBus) Start(_ context.Context) error {
	b.running.Store(true)
	b.logger.Info("Event bus started", zap.Int("handlers", b.registry.Len()))
	return nil
}

// Stop rejects further publishes
func (b *InMemoryEventBus) Stop(_ context.Context) error {
	b.running.Store(false)
	b.logger.Info("Event bus stopped")
	return nil
}

func (b *InMemoryEventBus) dispatch(ctx context.Context, handler shared.EventHandler, ev shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler.Handle(ctx, ev)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
