package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HandleEvent implements EventHandler
func (m *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	m.LastEvent = event
	m.HandledCount++
	return m.HandlerError
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newEvent := func(t *testing.T) *Event {
		event, err := NewFlashcardsGeneratedEvent(FlashcardsGenerated{Excerpt: "text", Questions: "q1,q2"})
		require.NoError(t, err)
		return event
	}

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		assert.NoError(t, emitter.EmitEvent(context.Background(), newEvent(t)))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := newEvent(t)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		failingHandler := &MockEventHandler{HandlerError: errors.New("handler error")}
		successHandler := &MockEventHandler{}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		err := emitter.EmitEvent(context.Background(), newEvent(t))
		require.Error(t, err)
		assert.Equal(t, "handler error", err.Error())

		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, successHandler.HandledCount, "later handlers still receive the event")
	})

	t.Run("handler func adapter", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)

		var got string
		emitter.RegisterHandler(HandlerFunc(func(ctx context.Context, event *Event) error {
			got = event.Type
			return nil
		}))

		require.NoError(t, emitter.EmitEvent(context.Background(), newEvent(t)))
		assert.Equal(t, TypeFlashcardsGenerated, got)
	})
}

func TestSubscribeFiltersByType(t *testing.T) {
	emitter := NewInMemoryEventEmitter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	generated := &MockEventHandler{}
	other := &MockEventHandler{}
	all := &MockEventHandler{}
	emitter.Subscribe(TypeFlashcardsGenerated, generated)
	emitter.Subscribe("something.else", other)
	emitter.RegisterHandler(all)

	event, err := NewFlashcardsGeneratedEvent(FlashcardsGenerated{Excerpt: "text"})
	require.NoError(t, err)
	require.NoError(t, emitter.EmitEvent(context.Background(), event))

	assert.Equal(t, 1, generated.HandledCount)
	assert.Equal(t, 0, other.HandledCount)
	assert.Equal(t, 1, all.HandledCount)
}
