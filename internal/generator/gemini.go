package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-1.5-flash"
	defaultGeminiKeyName = "GEMINI_API_KEY"

	DefaultGeminiInstruction = "Сен қазақ тілінде сабақ жоспарларын құруға көмектесетін көмекшісің."
)

// GeminiClient talks to the generateContent endpoint.
type GeminiClient struct {
	apiKey      string
	baseURL     string
	model       string
	instruction string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// NewGeminiClient resolves the API key from store and builds the adapter.
func NewGeminiClient(store CredentialStore, opts Options) (*GeminiClient, error) {
	key, err := resolveKey(BackendGemini, store, orDefault(opts.CredentialName, defaultGeminiKeyName))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		apiKey:      key,
		baseURL:     strings.TrimRight(orDefault(opts.BaseURL, defaultGeminiBaseURL), "/"),
		model:       strings.TrimPrefix(orDefault(opts.Model, defaultGeminiModel), "models/"),
		instruction: orDefault(opts.SystemInstruction, DefaultGeminiInstruction),
		temperature: opts.temperature(),
		maxTokens:   opts.maxTokens(),
		httpClient:  opts.httpClient(),
	}, nil
}

func (c *GeminiClient) Name() string { return BackendGemini }

type geminiPart struct {
	Text *string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason *string       `json:"finishReason"`
	Index        *int          `json:"index"`
}

type generateResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func textPart(s string) geminiPart {
	return geminiPart{Text: &s}
}

func (c *GeminiClient) endpoint() string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", c.baseURL, url.PathEscape(c.model), q.Encode())
}

// Generate sends the system instruction as a leading user turn, since the
// endpoint has no system role, followed by the prompt.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	payload := generateRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{textPart(c.instruction)}},
			{Role: "user", Parts: []geminiPart{textPart(prompt)}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxTokens,
		},
	}

	status, body, err := postJSON(ctx, c.httpClient, c.endpoint(), nil, payload)
	if err != nil {
		return "", failure(BackendGemini, KindTransport, err)
	}
	if !isSuccess(status) {
		return "", httpFailure(BackendGemini, status, body)
	}

	var parsed *generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", failure(BackendGemini, KindDecode, err)
	}
	if parsed == nil {
		return "", failure(BackendGemini, KindDecode, errors.New("response body is null"))
	}
	if len(parsed.Candidates) == 0 {
		return "", failure(BackendGemini, KindEmptyResult, nil)
	}

	var texts []string
	for _, p := range parsed.Candidates[0].Content.Parts {
		if p.Text != nil {
			texts = append(texts, *p.Text)
		}
	}
	text := strings.Join(texts, "\n")
	if text == "" {
		return "", failure(BackendGemini, KindDecode, errors.New("first candidate has no text"))
	}
	return text, nil
}
