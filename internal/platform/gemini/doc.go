// Package gemini provides a generation.TextModel backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it translates a single prompt
// into a GenerateContent call with deterministic decoding and maps the
// response, including safety blocks and empty candidates, onto the
// generation package's error vocabulary.
package gemini
