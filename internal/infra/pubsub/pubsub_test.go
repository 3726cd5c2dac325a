package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stampshop/config"
	"stampshop/internal/domain/constants"
	"stampshop/internal/domain/service"
	mockSvc "stampshop/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-1",
		EventID:    "cs_test_123",
		Kind:       service.OrderEventPaid,
		OrderID:    "0191d5a4-0000-7000-8000-000000000001",
		FriendlyID: "SS-ABC123",
		PaymentID:  "cs_test_123",
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "cs_test_123", received.Message.MessageID)
	assert.Equal(t, "SS-ABC123", received.Message.Attributes["friendly_id"])
	assert.Equal(t, "order.paid", received.Message.Attributes["kind"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_RetriesUnavailableNotifier(t *testing.T) {
	t.Run("gives up after every attempt answers 503", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		publisher := newFastLocalPublisher(srv.URL)
		err := publisher.PublishOrderEvent(context.Background(), testEvent())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Equal(t, int32(localPublishAttempts), calls.Load())
	})

	t.Run("succeeds once the notifier recovers", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)

				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		require.NoError(t, newFastLocalPublisher(srv.URL).PublishOrderEvent(context.Background(), testEvent()))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			cancel()
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := newFastLocalPublisher(srv.URL).PublishOrderEvent(ctx, testEvent())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("bad request is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		err := newFastLocalPublisher(srv.URL).PublishOrderEvent(context.Background(), testEvent())
		assert.ErrorContains(t, err, "400")
		assert.Equal(t, int32(1), calls.Load())
	})
}

func newFastLocalPublisher(endpoint string) service.EventPublisher {
	p := NewLocalHTTPPublisher(endpoint, slog.New(slog.DiscardHandler)).(*localHTTPPublisher)
	p.backoff = time.Millisecond

	return p
}

func TestNewPushMessage(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	event := testEvent()
	event.RequestID = ""

	msg, err := NewPushMessage(event, at)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T10:00:00Z", msg.Message.PublishTime)
	assert.NotContains(t, msg.Message.Attributes, "request_id")
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("inline by default", func(t *testing.T) {
		handler := mockSvc.NewMockOrderEventHandler(t)
		handler.EXPECT().
			HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
				return e.FriendlyID == "SS-ABC123"
			})).
			Return(nil).
			Once()

		publisher, err := NewEventPublisher(PublisherParams{
			Lc:      fxtest.NewLifecycle(t),
			Ctx:     context.Background(),
			Config:  &config.Config{},
			Logger:  logger,
			Handler: handler,
		})
		require.NoError(t, err)

		require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
	})

	t.Run("inline returns handler failure", func(t *testing.T) {
		handler := mockSvc.NewMockOrderEventHandler(t)
		handler.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(errors.New("mailgun down"))

		publisher, err := NewEventPublisher(PublisherParams{
			Lc:      fxtest.NewLifecycle(t),
			Ctx:     context.Background(),
			Config:  &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderInline}},
			Logger:  logger,
			Handler: handler,
		})
		require.NoError(t, err)

		assert.ErrorContains(t, publisher.PublishOrderEvent(context.Background(), testEvent()), "mailgun down")
	})

	t.Run("inline without handler", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderInline}},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			Logger: logger,
		})
		assert.Error(t, err)
	})

	t.Run("google requires project", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "orders"}},
			Logger: logger,
		})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "unknown pubsub provider: kafka")
	})
}

func TestCheckTransport(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr string
	}{
		{name: "empty is inline", cfg: config.PubSubConfig{}},
		{name: "local with endpoint", cfg: config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "google complete", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "stamps", TopicID: "orders"}},
		{name: "google without topic", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "stamps"}, wantErr: "topicId is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTransport(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, constants.PubSubProviderInline, transportName(&config.PubSubConfig{}))
}
