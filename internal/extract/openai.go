package extract

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient extracts field values through the OpenAI chat completions
// API (or any OpenAI-compatible endpoint via BaseURL).
type OpenAIClient struct {
	client *openai.Client
	model  string
	stats  *Stats
}

// OpenAIConfig holds the OpenAI backend settings.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Stats   *Stats
}

// NewOpenAIClient creates the OpenAI extraction backend.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		stats:  cfg.Stats,
	}
}

// ExtractField implements Extractor.
func (c *OpenAIClient) ExtractField(ctx context.Context, documentText, field string) (*string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		// Low temperature for consistent extraction.
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildFieldPrompt(documentText, field)},
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if c.stats != nil {
		c.stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return nil, &UnavailableError{Backend: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &UnavailableError{Backend: "openai", Err: errEmptyCompletion}
	}
	return DecodeValue(resp.Choices[0].Message.Content)
}

// Model reports the configured model name.
func (c *OpenAIClient) Model() string { return c.model }
