package llm

//go:generate mockgen -destination=./service_mock_test.go -package=llm -source=service.go Service

import (
	"context"
	"fmt"
	"strings"

	"lesson-sage/internal/generator"
)

// Service defines the business logic for the generation gateway.
type Service interface {
	// Generate forwards a lesson-planning prompt to the configured backend.
	Generate(ctx context.Context, prompt string) (string, error)
	// Backend names the configured backend.
	Backend() string
}

type service struct {
	gen Generator
}

// NewService is the constructor for the generation gateway.
func NewService(gen Generator) Service {
	return &service{gen: gen}
}

// Generate rejects blank prompts before the backend is called.
// Backend failures keep their *generator.Failure in the chain.
func (s *service) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", generator.ErrEmptyPrompt
	}

	answer, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate with %s: %w", s.gen.Name(), err)
	}
	return answer, nil
}

func (s *service) Backend() string {
	return s.gen.Name()
}
