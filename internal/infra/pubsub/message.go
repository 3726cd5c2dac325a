package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"stampshop/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/order-events"

// PushMessage is the body a Pub/Sub push subscription delivers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps event as a push subscription would. The event id
// doubles as the message id so redeliveries are recognisable in logs.
func NewPushMessage(event *service.OrderEvent, publishTime time.Time) (*PushMessage, error) {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = publishTime.UTC().Format(time.RFC3339)

	return msg, nil
}

// encodeEvent returns the JSON payload and the attributes copied onto every
// message for subscription filters and tracing.
func encodeEvent(event *service.OrderEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode order event")
	}

	attrs := map[string]string{
		"event_id":    event.EventID,
		"kind":        string(event.Kind),
		"order_id":    event.OrderID,
		"friendly_id": event.FriendlyID,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return data, attrs, nil
}
