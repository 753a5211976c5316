package llm

//go:generate mockgen -destination=./clients_mock_test.go -package=llm -source=clients.go

import (
	"context"
)

// Generator is the backend the gateway forwards prompts to.
// generator.OpenAIClient and generator.GeminiClient satisfy it.
type Generator interface {
	// Name identifies the backend in logs.
	Name() string
	// Generate returns the answer text or a *generator.Failure.
	Generate(ctx context.Context, prompt string) (string, error)
}
