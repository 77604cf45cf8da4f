package notify

import (
	"context"
	"log/slog"

	"github.com/phrazzld/scry-flashgen/internal/events"
	"github.com/phrazzld/scry-flashgen/internal/redact"
)

// EventHandler forwards FlashcardsGenerated events to a Notifier.
type EventHandler struct {
	notifier Notifier
	logger   *slog.Logger
}

// NewEventHandler creates an EventHandler for notifier.
func NewEventHandler(notifier Notifier, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		notifier: notifier,
		logger:   logger.With("component", "notify_handler"),
	}
}

// HandleEvent implements events.EventHandler. Notification failures are
// logged and swallowed; it only reports an error for a malformed event.
func (h *EventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.TypeFlashcardsGenerated {
		return nil
	}

	var payload events.FlashcardsGenerated
	if err := event.UnmarshalPayload(&payload); err != nil {
		return err
	}

	if err := h.notifier.Notify(ctx, payload.Excerpt, payload.Questions); err != nil {
		h.logger.WarnContext(ctx, "Failed to send notification",
			"event_id", event.ID,
			"request_id", payload.RequestID,
			"error", redact.Error(err))
		return nil
	}

	return nil
}
