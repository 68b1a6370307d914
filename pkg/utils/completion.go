package utils

import "context"

// CompletionClientInterface is the single seam to the generative model: one
// prompt in, raw response text out. Handlers and services only ever see this
// interface, so tests swap in deterministic stubs.
type CompletionClientInterface interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
