// Package generation provides the two model-backed stages of the flashcard
// pipeline and the service object that owns each pretrained model.
//
// A QuestionGenerator turns a chunk of text into a raw candidate question; a
// QuestionRewriter turns that question and its answer into a clearer,
// exam-style question. Both are built on a TextModel, the port implemented by
// the inference backends under internal/platform (Hugging Face, Gemini,
// Ollama). ModelService wraps a TextModel loader with once-only
// initialization, per-call timeouts, and optional serialization of calls.
//
// Errors from this package are returned to the caller unchanged in kind; the
// decision to fall back to a sentinel card belongs to the assembler.
package generation
