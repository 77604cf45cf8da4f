package notify

import (
	"context"
	"errors"
	"log/slog"
)

// Subject is the subject line of every notification email.
const Subject = "New Flashcard Query Logged"

var (
	// ErrDeliveryFailed is returned when a notification could not be delivered.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// ErrInvalidMessage is returned when a notification cannot be composed,
	// for example because an address is malformed. It is never retried.
	ErrInvalidMessage = errors.New("invalid notification message")
)

// Notifier receives a bounded excerpt of the input text and the generated
// questions joined with ",".
type Notifier interface {
	Notify(ctx context.Context, excerpt, questions string) error
}

// NopNotifier discards notifications. It is used when email is disabled.
type NopNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (n NopNotifier) Notify(ctx context.Context, excerpt, questions string) error {
	if n.Logger != nil {
		n.Logger.DebugContext(ctx, "Notification skipped, notifier disabled",
			"excerpt_length", len(excerpt))
	}
	return nil
}

// FormatBody renders the plain-text notification body.
func FormatBody(excerpt, questions string) string {
	return "User Text:\n" + excerpt + "\n\nQuestions Generated: " + questions
}
