// Package segment splits documents into sentence-aligned chunks bounded by a
// maximum character length. Each chunk later becomes the answer side of one
// flashcard, so chunk order is significant and a sentence is never split
// across two chunks.
package segment
