// Package flashcard turns a document into an ordered list of flashcards.
//
// The Assembler chunks the text, asks the question generator and rewriter for
// a question per chunk, and substitutes a fallback card for any chunk whose
// generation fails. After the last chunk it publishes a single
// FlashcardsGenerated event. Service is the request-level entry point.
package flashcard
