package llm

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/anvita-health/anvita/internal/core"
	"github.com/anvita-health/anvita/internal/models"
)

// Chain tries an ordered list of providers and returns the first success.
// One fallback hop is the whole resilience strategy: no retries, no
// backoff, so a flaky primary costs one extra call at most.
type Chain struct {
	providers []core.LLMProvider
}

func NewChain(providers ...core.LLMProvider) *Chain {
	return &Chain{providers: providers}
}

// GenerateChat asks each provider in order for the next assistant turn.
// Returns the text and the name of the provider that produced it.
func (c *Chain) GenerateChat(ctx context.Context, systemPrompt string, transcript []models.Turn) (string, string, error) {
	return c.generateChatOrdered(ctx, c.providers, systemPrompt, transcript)
}

// GenerateChatPreferring is GenerateChat with the named provider moved to
// the front. Used for report extraction, which should reuse whichever
// provider just handled the dialogue turn.
func (c *Chain) GenerateChatPreferring(ctx context.Context, preferred, systemPrompt string, transcript []models.Turn) (string, string, error) {
	ordered := make([]core.LLMProvider, 0, len(c.providers))
	for _, p := range c.providers {
		if p.Name() == preferred {
			ordered = append(ordered, p)
		}
	}
	for _, p := range c.providers {
		if p.Name() != preferred {
			ordered = append(ordered, p)
		}
	}
	return c.generateChatOrdered(ctx, ordered, systemPrompt, transcript)
}

func (c *Chain) generateChatOrdered(ctx context.Context, ordered []core.LLMProvider, systemPrompt string, transcript []models.Turn) (string, string, error) {
	if len(ordered) == 0 {
		return "", "", errors.New("no providers configured")
	}

	var errs []error
	for _, p := range ordered {
		text, err := p.GenerateChat(ctx, systemPrompt, transcript)
		if err == nil {
			return text, p.Name(), nil
		}
		log.Printf("provider %s failed: %v", p.Name(), err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return "", "", fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
