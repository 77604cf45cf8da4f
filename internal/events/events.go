package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TypeFlashcardsGenerated is published once per document after every chunk
// has produced a flashcard.
const TypeFlashcardsGenerated = "flashcards.generated"

// Event is a typed notification with a JSON payload.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an Event of eventType carrying payload serialized as JSON.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// FlashcardsGenerated is the payload of TypeFlashcardsGenerated.
type FlashcardsGenerated struct {
	// RequestID correlates the event with the originating request.
	RequestID uuid.UUID `json:"request_id"`

	// Excerpt is a bounded prefix of the input text.
	Excerpt string `json:"excerpt"`

	// Questions holds every generated question joined with ",".
	Questions string `json:"questions"`

	CardCount     int `json:"card_count"`
	FallbackCount int `json:"fallback_count"`
}

// NewFlashcardsGeneratedEvent wraps payload in an Event.
func NewFlashcardsGeneratedEvent(payload FlashcardsGenerated) (*Event, error) {
	return NewEvent(TypeFlashcardsGenerated, payload)
}

// EventHandler processes events delivered by an EventEmitter.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent implements EventHandler.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// EventEmitter publishes events to registered handlers.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *Event) error
}
