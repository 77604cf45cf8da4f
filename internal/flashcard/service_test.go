package flashcard_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/flashcard"
	"github.com/phrazzld/scry-flashgen/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceGenerateFlashcards(t *testing.T) {
	t.Parallel()

	newService := func(t *testing.T, defaultMaxLen int) (*flashcard.Service, *mocks.MockEventEmitter) {
		t.Helper()
		emitter := &mocks.MockEventEmitter{}
		a, err := flashcard.NewAssembler(punktSegmenter(t), &mocks.MockQuestionGenerator{},
			&mocks.MockQuestionRewriter{}, emitter, flashcard.AssemblerConfig{}, discardLogger())
		require.NoError(t, err)

		svc, err := flashcard.NewService(a, defaultMaxLen, discardLogger())
		require.NoError(t, err)
		return svc, emitter
	}

	text := "Napoleon was a French military leader. He became Emperor in 1804."

	t.Run("zero max_len uses the default", func(t *testing.T) {
		svc, _ := newService(t, 0)
		assert.Equal(t, domain.DefaultMaxLen, svc.DefaultMaxLen())

		cards, err := svc.GenerateFlashcards(context.Background(), text, 0)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, text, cards[0].Answer)
	})

	t.Run("configured default applies", func(t *testing.T) {
		svc, _ := newService(t, 40)

		cards, err := svc.GenerateFlashcards(context.Background(), text, 0)
		require.NoError(t, err)
		assert.Len(t, cards, 2)
	})

	t.Run("explicit max_len wins", func(t *testing.T) {
		svc, _ := newService(t, 40)

		cards, err := svc.GenerateFlashcards(context.Background(), text, 200)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("negative max_len is rejected", func(t *testing.T) {
		svc, emitter := newService(t, 0)

		_, err := svc.GenerateFlashcards(context.Background(), text, -5)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrInvalidMaxLen)
		assert.Empty(t, emitter.Events())
	})

	t.Run("event carries the request id", func(t *testing.T) {
		svc, emitter := newService(t, 0)

		_, err := svc.GenerateFlashcards(context.Background(), strings.Repeat("Word. ", 3), 0)
		require.NoError(t, err)

		require.Len(t, emitter.Events(), 1)
		p := payloadOf(t, emitter.Events()[0])
		assert.NotEqual(t, uuid.Nil, p.RequestID)
	})
}

func TestNewServiceValidation(t *testing.T) {
	t.Parallel()

	_, err := flashcard.NewService(nil, 0, discardLogger())
	assert.Error(t, err)

	a, err := flashcard.NewAssembler(lineSegmenter(t), &mocks.MockQuestionGenerator{},
		&mocks.MockQuestionRewriter{}, nil, flashcard.AssemblerConfig{}, discardLogger())
	require.NoError(t, err)
	_, err = flashcard.NewService(a, 0, nil)
	assert.Error(t, err)
}
