package snapshot

import (
	"strings"

	"github.com/anvita-health/anvita/internal/models"
)

// basePersona is the fixed system instruction for the dialogue turns.
const basePersona = `You are a warm, perceptive guide conducting a short self-reflection conversation called a psychological snapshot. Your goal is to understand, over a handful of exchanges, how this person experiences stress, how they cope, how they relate to others, and what their emotional life looks like day to day.

Rules:
- Ask exactly one open question per reply, in plain everyday language.
- Keep replies short: two or three sentences, then the question.
- Reflect back what you heard before asking the next question.
- Never diagnose, never give advice, never mention therapy or treatment.
- When you are confident you have a full picture, thank the person and end your reply with ` + Sentinel + `.`

// analysisPrompt is the fixed system instruction for the extraction call.
// The JSON shape mirrors models.StructuredFindings exactly.
const analysisPrompt = `You are a psychologist reviewing the transcript of a self-reflection conversation. Produce a structured snapshot of the person as a single JSON object, and nothing else, in this exact shape:

{
  "emotionalPatterns": {
    "currentState": "...",
    "stressTriggers": ["..."],
    "stressResponse": "...",
    "regulationStrategies": ["..."]
  },
  "relationshipPatterns": {
    "connectionStyle": "...",
    "uncertaintyResponse": "...",
    "conflictStyle": "...",
    "attachmentNotes": "..."
  },
  "whatHelps": ["..."],
  "whatHurts": ["..."],
  "personalityTendencies": {
    "bigFive": {"openness": "...", "conscientiousness": "...", "extraversion": "...", "agreeableness": "...", "neuroticism": "..."},
    "cognitiveStyle": "...",
    "naturalRhythm": "..."
  },
  "meaningfulExperiences": "...",
  "summary": "..."
}

Base every field on what the person actually said. Write the summary as a warm second-person narrative of three to five sentences.`

// ComposeSystemPrompt builds the full system instruction for one dialogue
// turn: persona, then the do-not-repeat directive, then the completion
// directive.
func ComposeSystemPrompt(history []models.Turn, exchangeCount int) string {
	var b strings.Builder
	b.WriteString(basePersona)
	b.WriteString(TopicDirective(CoveredTopics(history)))
	b.WriteString(CompletionDirective(exchangeCount))
	return b.String()
}

// RenderTranscript flattens a transcript into a single labelled text block
// for the one-shot extraction call.
func RenderTranscript(transcript []models.Turn) string {
	var b strings.Builder
	b.WriteString("Conversation transcript:\n\n")
	for _, t := range transcript {
		label := "Person"
		if t.Role == "assistant" {
			label = "Guide"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteString("\n")
	}
	return b.String()
}
