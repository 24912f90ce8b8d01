package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/service"
	"blog/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var knownEventTypes = []string{
	service.EventPostCreated,
	service.EventPostUpdated,
	service.EventPostDeleted,
	service.EventCommentCreated,
	service.EventCommentUpdated,
	service.EventCommentDeleted,
}

// tokenValidator checks a Google-signed OIDC token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// EventHandler consumes content events pushed by Pub/Sub or the local publisher
// and records each one in the audit log.
type EventHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEventHandler creates a new push handler for content events
func NewEventHandler(params EventHandlerParams) *EventHandler {
	pubsubCfg := params.Config.PubSub
	verify := pubsubCfg != nil &&
		pubsubCfg.Provider == config.PubSubProviderGoogle &&
		pubsubCfg.VerifyPushAuth

	audience := ""
	if pubsubCfg != nil {
		audience = pubsubCfg.PushAudience
	}

	return &EventHandler{
		verifyPushAuth: verify,
		pushAudience:   audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
	}
}

// HandlePush handles one pushed message. Malformed messages get 400 so the
// broker stops redelivering them; everything else is acknowledged.
func (h *EventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ContentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse content event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	if !slices.Contains(knownEventTypes, event.Type) {
		reqLogger.Warn("[Worker] Ignoring unknown event type",
			slog.String("type", event.Type),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	attrs := []any{
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.Int64("post_id", event.PostID),
		slog.Int64("actor_id", event.ActorID),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.CommentID != 0 {
		attrs = append(attrs, slog.Int64("comment_id", event.CommentID))
	}
	reqLogger.Info("[Worker] Content event", attrs...)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the inbound request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.ContentEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestIDFromContext(ctx)
}

func (h *EventHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok {
		return errors.New("invalid authorization header format")
	}

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
