// Package domain contains the core entities of flashcard generation: the
// Flashcard produced for each chunk of a document, the sentinel values used
// for fallback cards, and the GenerationRequest that ties a document to its
// chunk size bound. It is independent of any model backend or delivery
// mechanism.
package domain
