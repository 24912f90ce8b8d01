package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blog/config"
	"blog/internal/domain/service"
	"blog/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(buf *bytes.Buffer, pubsubCfg *config.PubSubConfig) *EventHandler {
	var out io.Writer = io.Discard
	if buf != nil {
		out = buf
	}

	return NewEventHandler(EventHandlerParams{
		Config: &config.Config{PubSub: pubsubCfg},
		Logger: slog.New(slog.NewJSONHandler(out, nil)),
	})
}

func encodePush(t *testing.T, event *service.ContentEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PubSubPushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "content-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func doPush(h *EventHandler, body []byte, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandlePush(c)

	return rec
}

func TestEventHandler_HandlePush(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf, nil)

	event := &service.ContentEvent{
		EventID:    "evt-1",
		Type:       service.EventCommentCreated,
		PostID:     7,
		CommentID:  3,
		ActorID:    1,
		RequestID:  "req-from-event",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	rec := doPush(h, encodePush(t, event, map[string]string{"request_id": "req-from-attrs"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	logged := buf.String()
	assert.Contains(t, logged, `"msg":"[Worker] Content event"`)
	assert.Contains(t, logged, `"request_id":"req-from-attrs"`)
	assert.Contains(t, logged, `"type":"comment.created"`)
	assert.Contains(t, logged, `"comment_id":3`)
}

func TestEventHandler_RequestIDFallsBackToEvent(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf, nil)

	event := &service.ContentEvent{
		EventID:   "evt-2",
		Type:      service.EventPostDeleted,
		PostID:    9,
		ActorID:   2,
		RequestID: "req-from-event",
	}

	rec := doPush(h, encodePush(t, event, nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"request_id":"req-from-event"`)
	assert.NotContains(t, buf.String(), `"comment_id"`)
}

func TestEventHandler_UnknownTypeIsAcknowledged(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf, nil)

	rec := doPush(h, encodePush(t, &service.ContentEvent{Type: "post.archived"}, nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "Ignoring unknown event type")
}

func TestEventHandler_MalformedMessages(t *testing.T) {
	h := newTestHandler(nil, nil)

	testCases := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{not json"},
		{name: "invalid base64", body: `{"message":{"data":"%%%","messageId":"1"}}`},
		{name: "invalid event payload", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doPush(h, []byte(tc.body), "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEventHandler_VerifyPushAuth(t *testing.T) {
	pubsubCfg := &config.PubSubConfig{
		Provider:       config.PubSubProviderGoogle,
		VerifyPushAuth: true,
		PushAudience:   "https://worker.example.com/events",
	}
	body := encodePush(t, &service.ContentEvent{Type: service.EventPostCreated, PostID: 1, ActorID: 1}, nil)

	validPayload := &idtoken.Payload{
		Issuer: "https://accounts.google.com",
		Claims: map[string]any{"email_verified": true},
	}

	testCases := []struct {
		name       string
		authHeader string
		payload    *idtoken.Payload
		validErr   error
		expected   int
	}{
		{name: "missing header", authHeader: "", payload: validPayload, expected: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc", payload: validPayload, expected: http.StatusUnauthorized},
		{name: "validation fails", authHeader: "Bearer bad", validErr: errors.New("bad signature"), expected: http.StatusUnauthorized},
		{
			name:       "wrong issuer",
			authHeader: "Bearer token",
			payload:    &idtoken.Payload{Issuer: "https://evil.example.com"},
			expected:   http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			authHeader: "Bearer token",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			expected:   http.StatusUnauthorized,
		},
		{name: "valid token", authHeader: "Bearer token", payload: validPayload, expected: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(nil, pubsubCfg)
			var gotAudience string
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				if tc.validErr != nil {
					return nil, tc.validErr
				}

				return tc.payload, nil
			}

			rec := doPush(h, body, tc.authHeader)

			assert.Equal(t, tc.expected, rec.Code)
			if strings.HasPrefix(tc.authHeader, "Bearer ") {
				assert.Equal(t, pubsubCfg.PushAudience, gotAudience)
			}
		})
	}
}

func TestEventHandler_VerifyPushAuthDisabledForLocalProvider(t *testing.T) {
	h := newTestHandler(nil, &config.PubSubConfig{
		Provider:       config.PubSubProviderLocal,
		VerifyPushAuth: true,
	})

	rec := doPush(h, encodePush(t, &service.ContentEvent{Type: service.EventPostCreated}, nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
