package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"stampshop/internal/domain/service"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"
)

const (
	localPublishAttempts uint = 3
	localPublishTimeout  = 10 * time.Second
)

// localHTTPPublisher POSTs push-shaped messages straight to the notifier, so
// development runs without a Pub/Sub emulator. A 503 from the notifier is
// retried the way Pub/Sub would redeliver.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	backoff  time.Duration
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		backoff:  250 * time.Millisecond,
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	msg, err := NewPushMessage(event, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	push := func() (int, error) {
		status, err := p.post(ctx, body, event.RequestID)
		switch {
		case err != nil:
			return status, backoff.Permanent(err)
		case status == http.StatusServiceUnavailable:
			return status, errors.Errorf("notifier answered %d for event %s", status, event.EventID)
		case status < http.StatusOK || status >= http.StatusMultipleChoices:
			return status, backoff.Permanent(errors.Errorf("notifier answered %d for event %s", status, event.EventID))
		}

		return status, nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.backoff
	if _, err := backoff.Retry(ctx, push,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(localPublishAttempts),
		backoff.WithNotify(func(err error, wait time.Duration) {
			p.logger.Warn("Notifier unavailable, retrying",
				slog.String("event_id", event.EventID),
				slog.Duration("wait", wait),
				slog.Any("error", err),
			)
		}),
	); err != nil {
		return err
	}

	p.logger.Debug("Order event pushed",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "push to notifier")
	}
	resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
