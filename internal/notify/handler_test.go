package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashgen/internal/events"
	"github.com/phrazzld/scry-flashgen/internal/mocks"
	"github.com/phrazzld/scry-flashgen/internal/notify"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandler(t *testing.T) {
	t.Parallel()

	payload := events.FlashcardsGenerated{
		RequestID: uuid.New(),
		Excerpt:   "Napoleon was a French military leader.",
		Questions: "Who was Napoleon?",
		CardCount: 1,
	}
	event, err := events.NewFlashcardsGeneratedEvent(payload)
	require.NoError(t, err)

	t.Run("forwards excerpt and questions", func(t *testing.T) {
		notifier := &mocks.MockNotifier{}
		h := notify.NewEventHandler(notifier, discardLogger())

		require.NoError(t, h.HandleEvent(context.Background(), event))

		calls := notifier.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, payload.Excerpt, calls[0].Excerpt)
		assert.Equal(t, payload.Questions, calls[0].Questions)
	})

	t.Run("swallows delivery errors", func(t *testing.T) {
		testLogger, buf := logger.GetTestLogger(t)
		notifier := &mocks.MockNotifier{Err: errors.New("smtp down for ops@example.com")}
		h := notify.NewEventHandler(notifier, testLogger)

		assert.NoError(t, h.HandleEvent(context.Background(), event))
		logger.AssertLogContains(t, buf, "Failed to send notification")
		assert.NotContains(t, buf.String(), "ops@example.com")
	})

	t.Run("ignores other event types", func(t *testing.T) {
		notifier := &mocks.MockNotifier{}
		h := notify.NewEventHandler(notifier, discardLogger())

		other, err := events.NewEvent("something.else", map[string]string{})
		require.NoError(t, err)
		require.NoError(t, h.HandleEvent(context.Background(), other))
		assert.Empty(t, notifier.Calls())
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		notifier := &mocks.MockNotifier{}
		h := notify.NewEventHandler(notifier, discardLogger())

		bad := &events.Event{Type: events.TypeFlashcardsGenerated, Payload: []byte(`"not an object"`)}
		assert.Error(t, h.HandleEvent(context.Background(), bad))
		assert.Empty(t, notifier.Calls())
	})
}

func TestNopNotifier(t *testing.T) {
	t.Parallel()

	assert.NoError(t, notify.NopNotifier{}.Notify(context.Background(), "text", "q"))
	assert.NoError(t, notify.NopNotifier{Logger: discardLogger()}.Notify(context.Background(), "text", "q"))
}
