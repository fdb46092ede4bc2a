package core

import (
	"context"

	"github.com/anvita-health/anvita/internal/models"
)

// LLMProvider abstracts one external text-generation service. "primary"
// and "secondary" are an ordering concern of the caller, not of the
// provider itself.
type LLMProvider interface {
	// Name identifies the provider in responses and logs.
	Name() string

	// Generate produces a one-shot completion for a single prompt.
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)

	// GenerateChat produces the next assistant turn for a transcript.
	// The transcript must start with a user turn and alternate roles.
	GenerateChat(ctx context.Context, systemPrompt string, transcript []models.Turn) (string, error)
}
