package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// SentenceSplitter breaks text into sentence units.
type SentenceSplitter interface {
	// Split returns the sentences of text in order. Returned sentences may
	// carry surrounding whitespace.
	Split(text string) []string
}

// PunktSplitter is a SentenceSplitter backed by the punkt algorithm trained
// on English text.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter loads the bundled English punkt model.
func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenizerUnavailable, err)
	}

	return &PunktSplitter{tokenizer: tokenizer}, nil
}

// Split implements SentenceSplitter.
func (p *PunktSplitter) Split(text string) []string {
	tokens := p.tokenizer.Tokenize(text)

	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		out = append(out, s.Text)
	}
	return out
}

// SplitterFunc adapts an ordinary function to the SentenceSplitter interface.
type SplitterFunc func(text string) []string

// Split implements SentenceSplitter.
func (f SplitterFunc) Split(text string) []string {
	return f(text)
}

// LineSplitter treats every non-blank line as one sentence, for input that
// is already split one sentence per line.
var LineSplitter = SplitterFunc(func(text string) []string {
	return strings.Split(text, "\n")
})
