// Package huggingface fetches published model configurations from the
// Hugging Face Hub and normalizes them into the estimator's canonical
// architecture record. All field-name guessing lives here so the estimator's
// contract stays purely numeric.
package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/infercast/infercast/internal/transport"
	"github.com/infercast/infercast/pkg/errors"
	"github.com/infercast/infercast/pkg/estimator"
	"github.com/infercast/infercast/pkg/logging"
)

// DefaultBaseURL is the Hugging Face Hub endpoint serving raw repo files.
const DefaultBaseURL = "https://huggingface.co"

// Client fetches model configs from the Hugging Face Hub.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Hub endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithToken authenticates requests, which gated model repos require.
func WithToken(token string) Option {
	return func(c *Client) {
		c.transport = transport.New(token)
	}
}

// NewClient creates a Hugging Face config client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		transport: transport.New(""),
		baseURL:   DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ModelConfig is the normalized result of a config fetch: the canonical
// architecture record plus the published storage precision.
type ModelConfig struct {
	ModelID      string
	Architecture estimator.TransformerConfig
	Precision    estimator.Precision
}

// FetchConfig downloads and normalizes config.json for a model repo ID such
// as "meta-llama/Llama-3.1-8B".
func (c *Client) FetchConfig(ctx context.Context, modelID string) (*ModelConfig, error) {
	if modelID == "" {
		return nil, errors.NewValidationError("modelID", modelID, "must not be empty")
	}

	url := fmt.Sprintf("%s/%s/resolve/main/config.json", c.baseURL, modelID)

	logging.Debug().Str("model", modelID).Str("url", url).Msg("Fetching model config")

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, errors.WrapAPI("huggingface", 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewNotFoundError("model config", modelID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAPIError("huggingface", resp.StatusCode,
			fmt.Sprintf("fetching config for %s", modelID))
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.WrapParse("json", modelID+"/config.json", err)
	}

	cfg := &ModelConfig{
		ModelID:      modelID,
		Architecture: Normalize(raw),
		Precision:    NormalizePrecision(raw),
	}

	logging.Debug().
		Str("model", modelID).
		Int("hidden_size", cfg.Architecture.HiddenSize).
		Int("num_layers", cfg.Architecture.NumLayers).
		Msg("Normalized model config")

	return cfg, nil
}
