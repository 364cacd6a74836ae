package llm

import (
	"context"
	"time"
)

// ProviderKind identifies a supported text-generation provider
type ProviderKind string

// Supported providers, in default priority order
const (
	// KindGemini is the Google Gemini provider
	KindGemini ProviderKind = "gemini"
	// KindGroq is the Groq OpenAI-compatible provider
	KindGroq ProviderKind = "groq"
	// KindOpenRouter is the OpenRouter OpenAI-compatible provider
	KindOpenRouter ProviderKind = "openrouter"
)

// Default models per provider
const (
	DefaultGeminiModel     = "gemini-2.0-flash"
	DefaultGroqModel       = "llama-3.3-70b-versatile"
	DefaultOpenRouterModel = "deepseek/deepseek-chat"
)

// DefaultTimeout bounds a single provider attempt so a hung provider cannot
// stall the fallback chain.
const DefaultTimeout = 15 * time.Second

// Generation sampling parameters. High temperature keeps question phrasing
// varied across turns.
const (
	generationTemperature     = 0.9
	generationTopP            = 0.95
	generationMaxOutputTokens = 120
)

// ProviderConfig configures one provider slot in the chain. Providers with an
// empty APIKey are skipped at construction.
type ProviderConfig struct {
	Kind   ProviderKind `json:"kind"`
	APIKey string       `json:"api_key"`
	Model  string       `json:"model,omitempty"`
}

// Config holds the ordered provider list and the per-provider attempt timeout.
// The order is the priority order: the first provider to return a non-empty
// result wins.
type Config struct {
	Providers []ProviderConfig `json:"providers"`
	Timeout   time.Duration    `json:"timeout"`
}

// DefaultConfig returns the standard provider priority (Gemini, then Groq,
// then OpenRouter) with the given API keys. Empty keys disable a slot.
func DefaultConfig(geminiKey, groqKey, openRouterKey string) *Config {
	return &Config{
		Providers: []ProviderConfig{
			{Kind: KindGemini, APIKey: geminiKey},
			{Kind: KindGroq, APIKey: groqKey},
			{Kind: KindOpenRouter, APIKey: openRouterKey},
		},
		Timeout: DefaultTimeout,
	}
}

// NewClients builds the configured provider clients in priority order,
// skipping slots without an API key.
func NewClients(ctx context.Context, config *Config) ([]Client, error) {
	clients := make([]Client, 0, len(config.Providers))
	for _, provider := range config.Providers {
		if provider.APIKey == "" {
			continue
		}

		switch provider.Kind {
		case KindGemini:
			client, err := NewGeminiClient(ctx, provider.APIKey, provider.Model)
			if err != nil {
				return nil, err
			}
			clients = append(clients, client)
		case KindGroq:
			clients = append(clients, NewGroqClient(provider.APIKey, provider.Model))
		case KindOpenRouter:
			clients = append(clients, NewOpenRouterClient(provider.APIKey, provider.Model))
		default:
			return nil, &ProviderError{Provider: string(provider.Kind), Message: "unknown provider kind"}
		}
	}
	return clients, nil
}
