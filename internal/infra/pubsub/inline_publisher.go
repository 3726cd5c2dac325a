package pubsub

import (
	"context"
	"log/slog"

	"stampshop/internal/domain/service"

	"github.com/pkg/errors"
)

// inlinePublisher calls the notification handler synchronously inside the
// storefront process. A nil handler turns publishing into a no-op.
type inlinePublisher struct {
	handler service.OrderEventHandler
	logger  *slog.Logger
}

func NewInlinePublisher(handler service.OrderEventHandler, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{handler: handler, logger: logger}
}

func (p *inlinePublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if p.handler == nil {
		p.logger.Debug("No order event handler, event dropped", slog.String("event_id", event.EventID))

		return nil
	}

	return errors.WithStack(p.handler.HandleOrderEvent(ctx, event))
}

func (p *inlinePublisher) Close() error { return nil }
