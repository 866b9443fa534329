package webhookpubsub

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	t.Parallel()

	svc := NewWebhookPubSubService().(*webhookService)

	id, err := svc.Subscribe("trade", "http://localhost:8888", "")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, svc.getHooksByAction(TradeSettled), 1)

	require.NoError(t, svc.Unsubscribe("", id))
	require.Empty(t, svc.getHooksByAction(TradeSettled))
}

func TestFailingSubscribe(t *testing.T) {
	t.Parallel()

	svc := NewWebhookPubSubService()

	tests := []struct {
		name          string
		topic         string
		args          []interface{}
		expectedError error
	}{
		{
			name:          "unknown_topic",
			topic:         "settlement",
			args:          []interface{}{"http://localhost", ""},
			expectedError: ErrInvalidTopic,
		},
		{
			name:          "missing_args",
			topic:         "trade",
			args:          []interface{}{"http://localhost"},
			expectedError: ErrInvalidArgs,
		},
		{
			name:          "bad_arg_type",
			topic:         "trade",
			args:          []interface{}{"http://localhost", 7},
			expectedError: ErrInvalidArgType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Subscribe(tt.topic, tt.args...)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestPublish(t *testing.T) {
	t.Parallel()

	var invoked int32
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.JSONEq(t, `{"market":"m1"}`, string(body))
			require.True(
				t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "),
			)
			atomic.AddInt32(&invoked, 1)
		},
	))
	defer server.Close()

	svc := NewWebhookPubSubService()
	_, err := svc.Subscribe("trade", server.URL, "supersecret")
	require.NoError(t, err)
	// hooks for all actions are invoked too
	_, err = svc.Subscribe("*", server.URL, "supersecret")
	require.NoError(t, err)

	require.NoError(t, svc.Publish("trade", `{"market":"m1"}`))
	require.Equal(t, int32(2), atomic.LoadInt32(&invoked))

	// the all-actions hook fires for launch events too
	require.NoError(t, svc.Publish("launch", `{"market":"m1"}`))
	require.Equal(t, int32(3), atomic.LoadInt32(&invoked))
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewWebhookPubSubService().(*webhookService)
	id, err := svc.Subscribe("launch", "http://localhost:8888", "secret")
	require.NoError(t, err)

	raw, err := svc.ExportState()
	require.NoError(t, err)

	restored := NewWebhookPubSubService().(*webhookService)
	require.NoError(t, restored.ImportState(raw))
	require.Len(t, restored.getHooksByAction(MarketLaunched), 1)
	require.Equal(t, id, restored.getHooksByAction(MarketLaunched)[0].ID)
}
