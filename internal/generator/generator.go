// Package generator turns a free-text prompt into a single answer string by
// calling one of two vendor APIs. Failures are returned as *Failure values
// classified by Kind; nothing is retried, cached or logged here.
package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AnswerGenerator produces one answer for one prompt.
type AnswerGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

const (
	DefaultTimeout     = 60 * time.Second
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 800
)

// Options configures an adapter. Zero values fall back to per-backend defaults.
type Options struct {
	Model             string
	BaseURL           string
	SystemInstruction string
	Temperature       *float64
	MaxTokens         int
	// CredentialName is the key looked up in the CredentialStore.
	CredentialName string
	// Timeout bounds a whole call. Negative disables the client timeout.
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

func (o Options) temperature() float64 {
	if o.Temperature == nil {
		return DefaultTemperature
	}
	return *o.Temperature
}

func (o Options) maxTokens() int {
	if o.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return o.MaxTokens
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	switch {
	case o.Timeout < 0:
		return &http.Client{}
	case o.Timeout == 0:
		return &http.Client{Timeout: DefaultTimeout}
	default:
		return &http.Client{Timeout: o.Timeout}
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

// New builds the adapter registered under backend.
func New(backend string, store CredentialStore, opts Options) (AnswerGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendOpenAI, "":
		c, err := NewOpenAIClient(store, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendGemini:
		c, err := NewGeminiClient(store, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown generator backend %q", backend)
	}
}
