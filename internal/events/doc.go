// Package events decouples the flashcard pipeline from its side effects.
//
// The assembler publishes an Event when a document has been turned into
// flashcards; handlers such as the notifier subscribe to it through an
// EventEmitter without the pipeline knowing they exist.
package events
