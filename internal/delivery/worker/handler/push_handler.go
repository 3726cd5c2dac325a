package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/constants"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/service"
	"stampshop/internal/errors"
	"stampshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body Pub/Sub POSTs to a push endpoint. The local
// publisher sends the same shape.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

var googleIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// tokenValidator checks a push request's OIDC token against the endpoint audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns queued order events into customer emails.
//
// Status codes are the ack protocol: 2xx acknowledges, 503 asks for
// redelivery, 4xx drops a message that can never succeed.
type PushHandler struct {
	verifyPushAuth  bool
	validateToken   tokenValidator
	logger          *slog.Logger
	notificationSvc usecase.NotificationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc usecase.NotificationUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub signs its pushes.
	verify := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verify,
		validateToken:   idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.authenticate(c.Request()); err != nil {
			h.logger.Warn("Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("Dropping undecodable push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := firstNonEmpty(
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
		slog.String("friendly_id", event.FriendlyID),
	)

	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Info("Handling order event",
		slog.String("kind", string(event.Kind)),
		slog.String("message_id", msg.Message.MessageID),
	)

	err = classify(h.notificationSvc.HandleOrderEvent(ctx, event))
	switch {
	case err == nil:
		logger.Info("Order event handled")

		return c.NoContent(http.StatusOK)
	case errors.IsTransient(err):
		logger.Error("Order event failed, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		// A redelivery would resend the emails that already went out.
		logger.Error("Order event failed, acknowledging", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

func decodePush(c echo.Context) (*PubSubMessage, *service.OrderEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "message data")
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "order event")
	}

	return &msg, &event, nil
}

// classify marks everything except a missing order or a finished send as
// transient.
func classify(err error) error {
	if err == nil ||
		errors.Is(err, domainerrors.ErrOrderNotFound) ||
		errors.Is(err, usecase.ErrNotificationFailed) {
		return err
	}

	return errors.Transient(err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// authenticate checks the OIDC token Pub/Sub attaches to push requests.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) authenticate(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate token")
	}
	if _, ok := googleIssuers[payload.Issuer]; !ok {
		return errors.Wrapf(errors.New("unexpected issuer"), "issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}
