package notificationhandlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	authdomain "github.com/Black-And-White-Club/matchday/app/modules/auth/domain"
	notificationservice "github.com/Black-And-White-Club/matchday/app/modules/notification/application"
	notificationdomain "github.com/Black-And-White-Club/matchday/app/modules/notification/domain"
	"github.com/Black-And-White-Club/matchday/app/shared/httpx"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	keepAliveInterval = 25 * time.Second
)

// Subscriber is the event bus side the live stream reads from.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// NotificationHandlers serves the caller's inbox and a live stream of new
// notifications.
type NotificationHandlers struct {
	service    notificationservice.Service
	subscriber Subscriber
	logger     *slog.Logger
}

// NewNotificationHandlers creates a new NotificationHandlers instance. The stream
// route is only registered when subscriber is non-nil.
func NewNotificationHandlers(service notificationservice.Service, subscriber Subscriber, logger *slog.Logger) *NotificationHandlers {
	return &NotificationHandlers{
		service:    service,
		subscriber: subscriber,
		logger:     logger,
	}
}

// Register mounts the notification routes on r.
func (h *NotificationHandlers) Register(r chi.Router) {
	r.Get("/notifications", h.HandleList)
	r.Get("/notifications/unread-count", h.HandleUnreadCount)
	r.Post("/notifications/read-all", h.HandleMarkAllRead)
	r.Post("/notifications/{notificationID}/read", h.HandleMarkRead)
	if h.subscriber != nil {
		r.Get("/notifications/stream", h.HandleStream)
	}
}

// HandleList returns the newest notifications first. ?unread=true filters to unread
// ones and ?limit caps the page.
func (h *NotificationHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}

	limit := httpx.QueryInt(r, "limit", defaultLimit)
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	var (
		list []notificationservice.NotificationInfo
		err  error
	)
	if r.URL.Query().Get("unread") == "true" {
		list, err = h.service.ListUnread(r.Context(), actor, limit)
	} else {
		list, err = h.service.List(r.Context(), actor, limit)
	}
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if list == nil {
		list = []notificationservice.NotificationInfo{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *NotificationHandlers) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(r.Context(), actor)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *NotificationHandlers) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}
	notificationID, err := httpx.PathInt64(r, "notificationID")
	if err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID, actor); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandlers) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.RequireActor(w, r)
	if !ok {
		return
	}

	updated, err := h.service.MarkAllRead(r.Context(), actor)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

// HandleStream relays the caller's new notifications as server-sent events until the
// client goes away. Delivery is best effort: events published while the client is
// disconnected are only visible through the inbox.
func (h *NotificationHandlers) HandleStream(w http.ResponseWriter, r *http.Request) {
	principal, ok := authdomain.PrincipalFrom(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorBody{Error: "authentication required"})
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorBody{Error: "streaming unsupported"})
		return
	}

	ctx := r.Context()
	messages, err := h.subscriber.Subscribe(ctx, notificationdomain.CreatedTopic(principal.UserID))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.InfoContext(ctx, "Notification stream opened",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("user_id", principal.UserID),
	)

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.InfoContext(ctx, "Notification stream closed", attr.Int64("user_id", principal.UserID))
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case msg, ok := <-messages:
			if !ok {
				return
			}
			_, err := fmt.Fprintf(w, "id: %s\nevent: notification\ndata: %s\n\n", msg.UUID, msg.Payload)
			msg.Ack()
			if err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
