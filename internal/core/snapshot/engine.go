package snapshot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/anvita-health/anvita/internal/models"
)

// ApologyMessage is what the caller shows when every provider failed
// mid-conversation.
const ApologyMessage = "I'm sorry, I'm having a little trouble collecting my thoughts right now. Could you give me a moment and try again?"

// Generator is the provider chain the engine talks through.
type Generator interface {
	GenerateChat(ctx context.Context, systemPrompt string, transcript []models.Turn) (text string, provider string, err error)
	GenerateChatPreferring(ctx context.Context, preferred, systemPrompt string, transcript []models.Turn) (text string, provider string, err error)
}

// Engine runs one snapshot conversation turn end to end: compose the
// system prompt from the transcript, generate the assistant turn, detect
// or force termination, and extract findings on terminal turns. It holds
// no state between calls; the caller resends the full history every time.
type Engine struct {
	gen Generator
}

func NewEngine(gen Generator) *Engine {
	return &Engine{gen: gen}
}

// TurnResult is the outcome of one NextTurn invocation.
type TurnResult struct {
	Assistant      models.Turn
	IsComplete     bool
	Findings       *models.StructuredFindings // nil unless IsComplete
	FullTranscript []models.Turn              // nil unless IsComplete; includes the final assistant turn
	ProviderUsed   string
}

// NextTurn appends the new user message to the supplied history and
// produces the next assistant turn. Persistence is the caller's job;
// this function only talks to the providers.
func (e *Engine) NextTurn(ctx context.Context, history []models.Turn, message string) (*TurnResult, error) {
	userTurn := models.Turn{
		ID:        uuid.NewString(),
		Role:      "user",
		Text:      message,
		Timestamp: time.Now(),
	}
	transcript := append(append([]models.Turn{}, history...), userTurn)
	exchangeCount := ExchangeCount(len(transcript))

	systemPrompt := ComposeSystemPrompt(history, exchangeCount)

	raw, provider, err := e.gen.GenerateChat(ctx, systemPrompt, transcript)
	if err != nil {
		return nil, fmt.Errorf("dialogue generation: %w", err)
	}

	raw = ForceConclusion(exchangeCount, raw)
	complete := IsTerminal(raw)

	assistant := models.Turn{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Text:      StripSentinel(raw),
		Timestamp: time.Now(),
	}

	res := &TurnResult{
		Assistant:    assistant,
		IsComplete:   complete,
		ProviderUsed: provider,
	}

	if complete {
		full := append(transcript, assistant)
		findings := e.extract(ctx, full, provider)
		res.Findings = &findings
		res.FullTranscript = full
	}
	return res, nil
}

// extract turns the finished transcript into structured findings. It never
// fails: every degradation path lands on one of the fixed fallback
// payloads, so a completed conversation always yields a full report.
func (e *Engine) extract(ctx context.Context, transcript []models.Turn, preferred string) models.StructuredFindings {
	prompt := []models.Turn{{
		ID:        uuid.NewString(),
		Role:      "user",
		Text:      RenderTranscript(transcript),
		Timestamp: time.Now(),
	}}

	raw, _, err := e.gen.GenerateChatPreferring(ctx, preferred, analysisPrompt, prompt)
	if err != nil {
		log.Printf("snapshot: extraction providers failed, using emergency fallback: %v", err)
		return EmergencyFallback
	}

	findings, outcome := ExtractFindings(raw)
	var chosen models.StructuredFindings
	switch outcome {
	case OutcomeOK:
		chosen = *findings
	case OutcomeDegenerate:
		log.Printf("snapshot: analysis reply parsed but headline fields empty, using standard fallback")
		chosen = StandardFallback
	case OutcomeParseError:
		// Logged distinctly from NoMatch: a span that exists but will not
		// parse usually means a prompt or model regression.
		log.Printf("snapshot: analysis reply contained an unparseable JSON span, using emergency fallback")
		chosen = EmergencyFallback
	default: // OutcomeNoMatch
		log.Printf("snapshot: no JSON span in analysis reply, using emergency fallback")
		chosen = EmergencyFallback
	}

	if entirelyEmpty(&chosen) {
		chosen = EmergencyFallback
	}
	return chosen
}

// entirelyEmpty is the last guard under the fallback substitutions: a
// report with no content at all must never leave the engine.
func entirelyEmpty(f *models.StructuredFindings) bool {
	return headlinesEmpty(f) &&
		len(f.WhatHelps) == 0 &&
		len(f.WhatHurts) == 0 &&
		len(f.PersonalityTendencies.BigFive) == 0 &&
		f.PersonalityTendencies.CognitiveStyle == "" &&
		f.PersonalityTendencies.NaturalRhythm == "" &&
		f.MeaningfulExperiences == ""
}
