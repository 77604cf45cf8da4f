// Package api implements the HTTP handlers of the flashcard service.
//
// Handlers decode and validate requests, delegate to flashcard.Generator and
// translate errors into status codes through MapErrorToStatusCode, so internal
// error text never reaches a client.
package api
