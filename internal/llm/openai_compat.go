package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OpenAI-compatible API endpoints
const (
	groqBaseURL       = "https://api.groq.com/openai/v1"
	openRouterBaseURL = "https://openrouter.ai/api/v1"
)

// OpenAICompatClient implements Client against a chat-completions REST
// endpoint. Groq and OpenRouter both speak this protocol.
type OpenAICompatClient struct {
	name       string
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGroqClient creates a Groq chat-completions client. An empty model
// selects the default Llama model.
func NewGroqClient(apiKey, model string) *OpenAICompatClient {
	if model == "" {
		model = DefaultGroqModel
	}
	return newOpenAICompatClient(string(KindGroq), groqBaseURL, apiKey, model)
}

// NewOpenRouterClient creates an OpenRouter chat-completions client. An empty
// model selects the default DeepSeek model.
func NewOpenRouterClient(apiKey, model string) *OpenAICompatClient {
	if model == "" {
		model = DefaultOpenRouterModel
	}
	return newOpenAICompatClient(string(KindOpenRouter), openRouterBaseURL, apiKey, model)
}

func newOpenAICompatClient(name, baseURL, apiKey, model string) *OpenAICompatClient {
	return &OpenAICompatClient{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		// No client-level timeout: the chain bounds each attempt via context.
		httpClient: &http.Client{},
	}
}

// chatMessage is one message in a chat-completions request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat-completions request body
type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	MaxTokens        int           `json:"max_tokens"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64       `json:"presence_penalty,omitempty"`
}

// chatResponse is the subset of the chat-completions response we consume
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Name identifies the provider in logs and errors
func (c *OpenAICompatClient) Name() string {
	return c.name
}

// GenerateContent generates question text via the chat-completions endpoint
func (c *OpenAICompatClient) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{
		Model:            c.model,
		Messages:         messages,
		Temperature:      generationTemperature,
		MaxTokens:        generationMaxOutputTokens,
		TopP:             generationTopP,
		FrequencyPenalty: 0.7,
		PresencePenalty:  0.5,
	})
	if err != nil {
		return "", &ProviderError{Provider: c.name, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.name, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: c.name, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &ProviderError{
			Provider: c.name,
			Message:  fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, snippet),
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &ProviderError{Provider: c.name, Message: "failed to decode response", Cause: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &ProviderError{Provider: c.name, Message: "no choices in response"}
	}

	return parsed.Choices[0].Message.Content, nil
}

// Close is a no-op: the client holds no persistent resources
func (c *OpenAICompatClient) Close() error {
	return nil
}

// withBaseURL overrides the endpoint, used by tests against a local server.
func (c *OpenAICompatClient) withBaseURL(baseURL string) *OpenAICompatClient {
	c.baseURL = baseURL
	return c
}
