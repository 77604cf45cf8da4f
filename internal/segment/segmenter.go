package segment

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// Segmenter packs sentences into chunks no longer than a configured number of
// characters. Lengths are counted in runes.
type Segmenter struct {
	splitter SentenceSplitter
}

// NewSegmenter creates a Segmenter around the given sentence splitter.
func NewSegmenter(splitter SentenceSplitter) (*Segmenter, error) {
	if splitter == nil {
		return nil, ErrTokenizerUnavailable
	}

	return &Segmenter{splitter: splitter}, nil
}

// Chunk splits text into sentences and greedily packs them into chunks.
//
// A sentence joins the current chunk if the chunk, the separating space and
// the sentence together fit within maxLen; otherwise the current chunk is
// flushed and the sentence starts a new one. A sentence longer than maxLen is
// emitted whole as its own chunk. Empty input yields an empty slice.
func (s *Segmenter) Chunk(text string, maxLen int) ([]string, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxLen, maxLen)
	}

	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	chunks := make([]string, 0)

	var buf strings.Builder
	bufLen := 0

	flush := func() {
		if bufLen > 0 {
			chunks = append(chunks, buf.String())
		}
		buf.Reset()
		bufLen = 0
	}

	for _, raw := range s.splitter.Split(text) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		sentenceLen := utf8.RuneCountInString(sentence)

		if bufLen > 0 && bufLen+1+sentenceLen > maxLen {
			flush()
		}

		if bufLen > 0 {
			buf.WriteByte(' ')
			bufLen++
		}
		buf.WriteString(sentence)
		bufLen += sentenceLen
	}
	flush()

	return chunks, nil
}

var (
	defaultOnce      sync.Once
	defaultSegmenter *Segmenter
	defaultErr       error
)

// Default returns a process-wide Segmenter backed by the English punkt model.
// The model is loaded once; a load failure is remembered and returned on
// every call.
func Default() (*Segmenter, error) {
	defaultOnce.Do(func() {
		splitter, err := NewPunktSplitter()
		if err != nil {
			defaultErr = err
			return
		}
		defaultSegmenter, defaultErr = NewSegmenter(splitter)
	})

	return defaultSegmenter, defaultErr
}

// Chunk splits text using the Default segmenter.
func Chunk(text string, maxLen int) ([]string, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Chunk(text, maxLen)
}
