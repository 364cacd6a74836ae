package llm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Chain tries providers in a fixed priority order: at most one attempt per
// provider per call, first non-empty result wins. A provider that errors,
// times out, or returns blank text is logged and skipped, never retried
// within the same call.
type Chain struct {
	clients []Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewChain builds a chain over the given clients. A non-positive timeout
// falls back to DefaultTimeout.
func NewChain(clients []Client, timeout time.Duration, logger *zap.Logger) *Chain {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{clients: clients, timeout: timeout, logger: logger}
}

// Len returns the number of configured providers.
func (c *Chain) Len() int {
	return len(c.clients)
}

// Names returns the provider names in priority order.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.clients))
	for _, client := range c.clients {
		names = append(names, client.Name())
	}
	return names
}

// Generate runs the provider cascade and returns the first non-empty trimmed
// result. When every provider fails it returns an AllProvidersError; callers
// above the resilience layer never see it.
func (c *Chain) Generate(ctx context.Context, system, prompt string) (string, error) {
	failures := make([]*ProviderError, 0, len(c.clients))

	for _, client := range c.clients {
		text, err := c.attempt(ctx, client, system, prompt)
		if err != nil {
			failure, ok := err.(*ProviderError)
			if !ok {
				failure = &ProviderError{Provider: client.Name(), Message: "generation failed", Cause: err}
			}
			c.logger.Warn("generation provider failed, trying next",
				zap.String("provider", client.Name()),
				zap.Error(err))
			failures = append(failures, failure)
			continue
		}
		c.logger.Debug("generation succeeded", zap.String("provider", client.Name()))
		return text, nil
	}

	return "", &AllProvidersError{Failures: failures}
}

// attempt makes a single bounded call to one provider. Empty output after
// trimming is treated identically to an error.
func (c *Chain) attempt(ctx context.Context, client Client, system, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := client.GenerateContent(attemptCtx, system, prompt)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ProviderError{Provider: client.Name(), Message: "empty response"}
	}
	return text, nil
}

// Close closes every provider client, returning the first error encountered.
func (c *Chain) Close() error {
	var firstErr error
	for _, client := range c.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
