package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodFindingsJSON = `{
	"emotionalPatterns": {
		"currentState": "stretched thin but coping",
		"stressTriggers": ["deadlines"],
		"stressResponse": "withdraws",
		"regulationStrategies": ["walks"]
	},
	"relationshipPatterns": {
		"connectionStyle": "few close ties",
		"uncertaintyResponse": "plans ahead",
		"conflictStyle": "avoids then revisits",
		"attachmentNotes": "slow to trust"
	},
	"whatHelps": ["routine"],
	"whatHurts": ["being rushed"],
	"personalityTendencies": {
		"bigFive": {"openness": "high"},
		"cognitiveStyle": "analytical",
		"naturalRhythm": "night owl"
	},
	"meaningfulExperiences": "moving cities alone",
	"summary": "You are a reflective person under real pressure."
}`

func TestExtractFindingsFencedBlock(t *testing.T) {
	raw := "Here is the snapshot you asked for:\n```json\n" + goodFindingsJSON + "\n```\nLet me know if you need anything else."
	f, outcome := ExtractFindings(raw)
	require.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, "stretched thin but coping", f.EmotionalPatterns.CurrentState)
	assert.Equal(t, "You are a reflective person under real pressure.", f.Summary)
}

func TestExtractFindingsBareBraces(t *testing.T) {
	raw := "Sure! " + goodFindingsJSON + " Hope that helps."
	f, outcome := ExtractFindings(raw)
	require.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, []string{"deadlines"}, f.EmotionalPatterns.StressTriggers)
}

func TestExtractFindingsNoSpan(t *testing.T) {
	f, outcome := ExtractFindings("I could not produce a structured report for this conversation.")
	assert.Nil(t, f)
	assert.Equal(t, OutcomeNoMatch, outcome)
}

func TestExtractFindingsParseError(t *testing.T) {
	f, outcome := ExtractFindings("```json\n{\"summary\": \"unterminated\n```")
	assert.Nil(t, f)
	assert.Equal(t, OutcomeParseError, outcome)
}

func TestExtractFindingsEmptyObjectIsDegenerate(t *testing.T) {
	f, outcome := ExtractFindings("```json\n{}\n```")
	assert.Nil(t, f)
	assert.Equal(t, OutcomeDegenerate, outcome)
}

func TestExtractFindingsHeadlinesAbsentIsDegenerate(t *testing.T) {
	// Side fields populated but none of the three headline fields.
	raw := `{"whatHelps": ["sleep"], "whatHurts": ["noise"]}`
	f, outcome := ExtractFindings(raw)
	assert.Nil(t, f)
	assert.Equal(t, OutcomeDegenerate, outcome)
}

func TestExtractFindingsSummaryAloneIsEnough(t *testing.T) {
	f, outcome := ExtractFindings(`{"summary": "A short but real summary."}`)
	require.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, "A short but real summary.", f.Summary)
}

func TestFallbackPayloadsAreDistinctAndNonEmpty(t *testing.T) {
	assert.NotEmpty(t, StandardFallback.Summary)
	assert.NotEmpty(t, EmergencyFallback.Summary)
	assert.NotEqual(t, StandardFallback.Summary, EmergencyFallback.Summary)
	assert.False(t, entirelyEmpty(&StandardFallback))
	assert.False(t, entirelyEmpty(&EmergencyFallback))
}
