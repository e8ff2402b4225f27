package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishCartEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.CartEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.CartEventItemAdded,
		UserID:      "user-1",
		ItemID:      "item-1",
		Quantity:    2,
		CartCount:   2,
		TotalAmount: "20",
		OccurredAt:  time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishCartEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "cart.item_added", received.Message.Attributes["type"])
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.CartEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.TotalAmount, decoded.TotalAmount)
	assert.Equal(t, event.CartCount, decoded.CartCount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishCartEvent(context.Background(), &service.CartEvent{EventID: "evt-2"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(newDiscardLogger())

	assert.NoError(t, publisher.PublishCartEvent(context.Background(), &service.CartEvent{EventID: "evt-3"}))
	assert.NoError(t, publisher.Close())
}
