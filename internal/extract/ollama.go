package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

var errEmptyCompletion = errors.New("empty completion response")

// OllamaClient extracts field values through a local Ollama server,
// for deployments that cannot send documents to a hosted API.
type OllamaClient struct {
	client *api.Client
	model  string
	stats  *Stats
}

// NewOllamaClient creates the Ollama extraction backend. An empty host
// falls back to the OLLAMA_HOST environment default.
func NewOllamaClient(host, model string, stats *Stats) (*OllamaClient, error) {
	hostURL := envconfig.Host()
	if host != "" {
		u, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("parse ollama host: %w", err)
		}
		hostURL = u
	}
	return &OllamaClient{
		client: api.NewClient(hostURL, http.DefaultClient),
		model:  model,
		stats:  stats,
	}, nil
}

// ExtractField implements Extractor.
func (c *OllamaClient) ExtractField(ctx context.Context, documentText, field string) (*string, error) {
	req := api.GenerateRequest{
		Model:  c.model,
		System: systemPrompt,
		Prompt: BuildFieldPrompt(documentText, field),
		Format: json.RawMessage(`"json"`),
		Options: map[string]any{
			"temperature": 0.1,
			"num_predict": 512,
		},
	}

	var responseBuilder strings.Builder
	start := time.Now()
	err := c.client.Generate(ctx, &req, func(resp api.GenerateResponse) error {
		_, err := responseBuilder.WriteString(resp.Response)
		return err
	})
	if c.stats != nil {
		c.stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return nil, &UnavailableError{Backend: "ollama", Err: err}
	}
	return DecodeValue(responseBuilder.String())
}

// Model reports the configured model name.
func (c *OllamaClient) Model() string { return c.model }
