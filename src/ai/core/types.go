package core

import "context"

// Options controls model behavior; fields are optional per provider.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int
	SystemPrompt        string
}

// Client is a provider-agnostic interface for the single generative capability
// the verdict engine consumes. A nil Client is the explicit "unavailable"
// variant: every component that holds one must take its documented fallback.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}
