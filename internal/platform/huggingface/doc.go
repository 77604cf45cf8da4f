// Package huggingface provides a generation.TextModel that runs text-to-text
// models through the Hugging Face Inference API.
package huggingface
