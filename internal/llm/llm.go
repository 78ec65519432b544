// Package llm is the transport boundary to an LLM completion service. The
// generation pipeline hands it a finished prompt and expects back a single
// text completion; everything else about the provider lives here.
package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Generation temperature fixed across all modes.
const defaultTemperature = 0.7

// Generations routinely exceed a minute; cancellation stays with the
// caller's context.
const defaultHTTPTimeout = 3 * time.Minute

// Config describes how to reach a completion endpoint. All fields are
// explicit; nothing is read from process-wide state.
type Config struct {
	// BaseURL is the API root, e.g. https://api.openai.com/v1 for a
	// chat-completions provider or http://localhost:11434 for Ollama.
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// Client produces one text completion per prompt. Implementations return
// the completion as-is, possibly empty; classifying empty replies is the
// pipeline's job.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// New returns a client for an OpenAI-compatible chat completions endpoint.
func New(cfg Config) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("llm: base URL is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm: model is required")
	}
	return &chatClient{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: pickHTTPClient(cfg.HTTPClient),
	}, nil
}

// NewOllama returns a client for a local Ollama generate endpoint. The API
// key is ignored.
func NewOllama(cfg Config) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("llm: base URL is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm: model is required")
	}
	return &ollamaClient{
		host:   strings.TrimRight(cfg.BaseURL, "/"),
		model:  cfg.Model,
		client: pickHTTPClient(cfg.HTTPClient),
	}, nil
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
