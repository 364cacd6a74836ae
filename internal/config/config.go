// Package config holds the application configuration and its validation.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-coach/internal/llm"
)

// ProviderSettings configures a single generation provider. A provider
// with an empty APIKey is skipped when building the client chain.
type ProviderSettings struct {
	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"`
}

// Config is the top-level application configuration. Values are bound
// from flags, environment variables and an optional config file by the
// command layer.
type Config struct {
	Gemini     ProviderSettings `mapstructure:"gemini"`
	Groq       ProviderSettings `mapstructure:"groq"`
	OpenRouter ProviderSettings `mapstructure:"openrouter"`

	// Timeout bounds each provider attempt during generation.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug"`
	// JSONLog switches log output from console to JSON encoding.
	JSONLog bool `mapstructure:"json-log"`
}

// Default returns a Config with the standard provider models and timeout
// filled in. API keys are left empty.
func Default() *Config {
	return &Config{
		Gemini:     ProviderSettings{Model: llm.DefaultGeminiModel},
		Groq:       ProviderSettings{Model: llm.DefaultGroqModel},
		OpenRouter: ProviderSettings{Model: llm.DefaultOpenRouterModel},
		Timeout:    llm.DefaultTimeout,
	}
}

// Validate checks the configuration and fills in defaults for any
// provider model or timeout left unset.
func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		c.Gemini.Model = llm.DefaultGeminiModel
	}
	if c.Groq.Model == "" {
		c.Groq.Model = llm.DefaultGroqModel
	}
	if c.OpenRouter.Model == "" {
		c.OpenRouter.Model = llm.DefaultOpenRouterModel
	}
	if c.Timeout == 0 {
		c.Timeout = llm.DefaultTimeout
	}

	return validator.New().Struct(c)
}

// LLMConfig translates the application configuration into the provider
// chain configuration, in degradation order: Gemini, then Groq, then
// OpenRouter. Providers without an API key are omitted.
func (c *Config) LLMConfig() *llm.Config {
	var providers []llm.ProviderConfig
	if c.Gemini.APIKey != "" {
		providers = append(providers, llm.ProviderConfig{
			Kind:   llm.KindGemini,
			APIKey: c.Gemini.APIKey,
			Model:  c.Gemini.Model,
		})
	}
	if c.Groq.APIKey != "" {
		providers = append(providers, llm.ProviderConfig{
			Kind:   llm.KindGroq,
			APIKey: c.Groq.APIKey,
			Model:  c.Groq.Model,
		})
	}
	if c.OpenRouter.APIKey != "" {
		providers = append(providers, llm.ProviderConfig{
			Kind:   llm.KindOpenRouter,
			APIKey: c.OpenRouter.APIKey,
			Model:  c.OpenRouter.Model,
		})
	}

	return &llm.Config{
		Providers: providers,
		Timeout:   c.Timeout,
	}
}
