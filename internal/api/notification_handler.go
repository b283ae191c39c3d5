package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"acronymer/internal/i18n"
	"acronymer/internal/notify"
)

// ToastEvent is one notification as sent to the browser
type ToastEvent struct {
	ID         string          `json:"id"`
	Severity   notify.Severity `json:"severity"`
	Message    string          `json:"message"`
	Subject    string          `json:"subject,omitempty"`
	DurationMS int64           `json:"duration_ms"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NotificationHandler streams toasts as server-sent events
type NotificationHandler struct {
	hub        *notify.Hub
	translator *i18n.Translator
	logger     *zap.Logger
}

func NewNotificationHandler(hub *notify.Hub, translator *i18n.Translator, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{hub: hub, translator: translator, logger: logger}
}

// NewToastEvent translates n for the resolver's language
func NewToastEvent(r i18n.Resolver, n notify.Notification) ToastEvent {
	return ToastEvent{
		ID:         n.ID,
		Severity:   n.Severity,
		Message:    i18n.Text(r, n.Key, n.Message),
		Subject:    n.Subject,
		DurationMS: n.Duration.Milliseconds(),
		CreatedAt:  n.CreatedAt,
	}
}

func (h *NotificationHandler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		RespondWithError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	tag, ok := LanguageFromContext(r.Context())
	if !ok {
		tag, _ = ResolveLanguage(h.translator, r)
	}
	resolver := h.translator.For(tag)

	events, cancel := h.hub.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case n, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(NewToastEvent(resolver, n))
			if err != nil {
				h.logger.Error("Failed to encode toast", zap.String("id", n.ID), zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %s\nevent: toast\ndata: %s\n\n", n.ID, payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
