package llm

import "context"

// Client is an abstraction over text-generation providers. Implementations
// must honor context cancellation so the chain's per-provider timeout holds.
type Client interface {
	// Name identifies the provider in logs and errors
	Name() string
	// GenerateContent generates text from a system message and a user prompt
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}
