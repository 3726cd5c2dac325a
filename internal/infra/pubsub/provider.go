// Package pubsub carries order events from the storefront to the notifier.
//
// Three transports are supported: inline (same process, no queue), local
// (HTTP POST shaped like a Pub/Sub push, for running the notifier beside the
// storefront) and google (a real Pub/Sub topic).
package pubsub

import (
	"context"
	"log/slog"

	"stampshop/config"
	"stampshop/internal/domain/constants"
	"stampshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// Only the inline transport calls it.
	Handler service.OrderEventHandler `optional:"true"`
}

// NewEventPublisher picks the transport named in config. An absent pubsub
// section means inline dispatch.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}
	if err := checkTransport(cfg); err != nil {
		return nil, err
	}

	logger := params.Logger.With(slog.String("transport", transportName(cfg)))

	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case "", constants.PubSubProviderInline:
		logger.Info("Order events are handled in process")

		// nothing to close
		return NewInlinePublisher(params.Handler, logger), nil
	case constants.PubSubProviderLocal:
		logger.Info("Order events are pushed over HTTP", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	case constants.PubSubProviderGoogle:
		logger.Info("Order events are published to Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.StopHook(func() error {
		logger.Info("Closing order event publisher")

		return publisher.Close()
	}))

	return publisher, nil
}

// checkTransport reports the first setting the chosen transport is missing.
func checkTransport(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case "", constants.PubSubProviderInline:
		return nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub: localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("pubsub: projectId is required for the google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("pubsub: topicId is required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func transportName(cfg *config.PubSubConfig) string {
	if cfg.Provider == "" {
		return constants.PubSubProviderInline
	}

	return cfg.Provider
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
