// Package llm provides the generation backend adapter: a uniform client
// interface over text-generation providers and a priority-ordered chain that
// degrades across them.
package llm

import (
	"fmt"
	"strings"
)

// ProviderError represents a single provider failing to produce usable text
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// AllProvidersError means every configured provider was tried and failed.
// The resilience layer converts this into a fallback question; it never
// reaches end users.
type AllProvidersError struct {
	Failures []*ProviderError
}

func (e *AllProvidersError) Error() string {
	if len(e.Failures) == 0 {
		return "no generation providers configured"
	}
	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, failure.Error())
	}
	return fmt.Sprintf("all generation providers failed: %s", strings.Join(parts, "; "))
}
