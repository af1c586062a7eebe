package port

import "context"

// TextCompletionProvider abstracts an LLM text-completion backend. Given a
// fully built prompt it returns the raw text of a single completion; one
// round trip, no retries, no streaming.
type TextCompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
