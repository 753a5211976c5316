package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAIKeyName = "OPENAI_API_KEY"

	DefaultOpenAIInstruction = "You are a helpful teaching assistant that helps create lesson plans in Kazakh."
)

// OpenAIClient talks to a chat-completions endpoint.
type OpenAIClient struct {
	apiKey      string
	baseURL     string
	model       string
	instruction string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// NewOpenAIClient resolves the API key from store and builds the adapter.
func NewOpenAIClient(store CredentialStore, opts Options) (*OpenAIClient, error) {
	key, err := resolveKey(BackendOpenAI, store, orDefault(opts.CredentialName, defaultOpenAIKeyName))
	if err != nil {
		return nil, err
	}
	return &OpenAIClient{
		apiKey:      key,
		baseURL:     strings.TrimRight(orDefault(opts.BaseURL, defaultOpenAIBaseURL), "/"),
		model:       orDefault(opts.Model, defaultOpenAIModel),
		instruction: orDefault(opts.SystemInstruction, DefaultOpenAIInstruction),
		temperature: opts.temperature(),
		maxTokens:   opts.maxTokens(),
		httpClient:  opts.httpClient(),
	}, nil
}

func (c *OpenAIClient) Name() string { return BackendOpenAI }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason *string     `json:"finish_reason"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Generate sends the system instruction and prompt as two chat messages.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.instruction},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.apiKey)

	status, body, err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/chat/completions", header, payload)
	if err != nil {
		return "", failure(BackendOpenAI, KindTransport, err)
	}
	if !isSuccess(status) {
		return "", httpFailure(BackendOpenAI, status, body)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", failure(BackendOpenAI, KindDecode, err)
	}
	// A missing or null choices field is a malformed body; [] is an empty result.
	if parsed.Choices == nil {
		return "", failure(BackendOpenAI, KindDecode, errors.New("response has no choices field"))
	}
	if len(parsed.Choices) == 0 {
		return "", failure(BackendOpenAI, KindEmptyResult, nil)
	}
	text := parsed.Choices[0].Message.Content
	if text == "" {
		return "", failure(BackendOpenAI, KindDecode, errors.New("first choice has no content"))
	}
	return text, nil
}
