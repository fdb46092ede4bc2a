package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvita-health/anvita/internal/models"
)

// scriptedGenerator replays canned replies and records every call.
type scriptedGenerator struct {
	replies []string
	errs    []error
	calls   []generatorCall
}

type generatorCall struct {
	systemPrompt string
	transcript   []models.Turn
	preferred    string
}

func (g *scriptedGenerator) next() (string, error) {
	i := len(g.calls) - 1
	var reply string
	var err error
	if i < len(g.replies) {
		reply = g.replies[i]
	}
	if i < len(g.errs) {
		err = g.errs[i]
	}
	return reply, err
}

func (g *scriptedGenerator) GenerateChat(_ context.Context, systemPrompt string, transcript []models.Turn) (string, string, error) {
	g.calls = append(g.calls, generatorCall{systemPrompt: systemPrompt, transcript: transcript})
	reply, err := g.next()
	return reply, "primary", err
}

func (g *scriptedGenerator) GenerateChatPreferring(_ context.Context, preferred, systemPrompt string, transcript []models.Turn) (string, string, error) {
	g.calls = append(g.calls, generatorCall{systemPrompt: systemPrompt, transcript: transcript, preferred: preferred})
	reply, err := g.next()
	return reply, preferred, err
}

func longHistory(turns int) []models.Turn {
	var h []models.Turn
	for i := 0; i < turns; i++ {
		if i%2 == 0 {
			h = append(h, userTurn("nothing much comes to mind"))
		} else {
			h = append(h, assistantTurn("and how did that land for you?"))
		}
	}
	return h
}

func TestNextTurnFreshConversation(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"Welcome. What brings you here today?"}}
	engine := NewEngine(gen)

	res, err := engine.NextTurn(context.Background(), nil, "I feel overwhelmed all the time.")
	require.NoError(t, err)

	assert.False(t, res.IsComplete)
	assert.Nil(t, res.Findings)
	assert.Equal(t, "Welcome. What brings you here today?", res.Assistant.Text)
	assert.Equal(t, "primary", res.ProviderUsed)

	// One dialogue call, no extraction call.
	require.Len(t, gen.calls, 1)
	// No prior user turns: no covered-topic directive, and exchange 0 is
	// below every completion band.
	assert.NotContains(t, gen.calls[0].systemPrompt, "Topics already covered")
	assert.NotContains(t, gen.calls[0].systemPrompt, "wrapping up")
	// The new user turn is the last transcript entry.
	require.Len(t, gen.calls[0].transcript, 1)
	assert.Equal(t, "user", gen.calls[0].transcript[0].Role)
	assert.Equal(t, "I feel overwhelmed all the time.", gen.calls[0].transcript[0].Text)
}

func TestNextTurnTopicDirectiveAfterOverwhelm(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"What helps when it gets that loud?"}}
	engine := NewEngine(gen)

	history := []models.Turn{
		userTurn("I feel overwhelmed all the time."),
		assistantTurn("That sounds exhausting. When did it start?"),
	}
	_, err := engine.NextTurn(context.Background(), history, "A few months ago.")
	require.NoError(t, err)

	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0].systemPrompt, TopicStressTriggers)
}

func TestNextTurnForcedConclusionAtCap(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"ok, one more thing I wanted to ask...", // no sentinel despite the cap
		"```json" + `{"summary": "Forced but complete."}` + "```",
	}}
	engine := NewEngine(gen)

	res, err := engine.NextTurn(context.Background(), longHistory(30), "ok")
	require.NoError(t, err)

	assert.True(t, res.IsComplete)
	assert.NotContains(t, res.Assistant.Text, Sentinel)
	require.NotNil(t, res.Findings)
	assert.Equal(t, "Forced but complete.", res.Findings.Summary)

	// Extraction ran, preferring the provider that handled the dialogue.
	require.Len(t, gen.calls, 2)
	assert.Equal(t, "primary", gen.calls[1].preferred)
	assert.Contains(t, gen.calls[1].systemPrompt, "JSON")
	// Full transcript including the final assistant turn: 30 + 1 + 1.
	require.Len(t, res.FullTranscript, 32)
	assert.Equal(t, "assistant", res.FullTranscript[31].Role)
}

func TestNextTurnNaturalConclusion(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"Thank you for sharing all of this. " + Sentinel,
		"```json\n" + `{"summary": "All done."}` + "\n```",
	}}
	engine := NewEngine(gen)

	res, err := engine.NextTurn(context.Background(), longHistory(16), "that's everything really")
	require.NoError(t, err)

	assert.True(t, res.IsComplete)
	assert.Equal(t, "Thank you for sharing all of this.", res.Assistant.Text)
	require.NotNil(t, res.Findings)
	assert.Equal(t, "All done.", res.Findings.Summary)
}

func TestNextTurnDialogueFailureSurfaces(t *testing.T) {
	gen := &scriptedGenerator{errs: []error{errors.New("both providers down")}}
	engine := NewEngine(gen)

	res, err := engine.NextTurn(context.Background(), nil, "hello")
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestNextTurnExtractionFailureFallsBackToEmergency(t *testing.T) {
	gen := &scriptedGenerator{
		replies: []string{"We are done here. " + Sentinel, ""},
		errs:    []error{nil, errors.New("extraction provider down")},
	}
	engine := NewEngine(gen)

	res, err := engine.NextTurn(context.Background(), longHistory(20), "bye")
	require.NoError(t, err)

	require.True(t, res.IsComplete)
	require.NotNil(t, res.Findings)
	assert.Equal(t, EmergencyFallback, *res.Findings)
	assert.NotEmpty(t, res.Findings.Summary)
}

func TestNextTurnDegenerateExtractionUsesStandardFallback(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"All wrapped up. " + Sentinel,
		"```json\n{}\n```",
	}}
	engine := NewEngine(gen)

	res, err := engine.NextTurn(context.Background(), longHistory(18), "thanks")
	require.NoError(t, err)

	require.NotNil(t, res.Findings)
	assert.Equal(t, StandardFallback, *res.Findings)
}

func TestNextTurnGarbageExtractionUsesEmergencyFallback(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"All wrapped up. " + Sentinel,
		"Sorry, I cannot produce JSON today.",
	}}
	engine := NewEngine(gen)

	res, err := engine.NextTurn(context.Background(), longHistory(18), "thanks")
	require.NoError(t, err)

	require.NotNil(t, res.Findings)
	assert.Equal(t, EmergencyFallback, *res.Findings)
}

func TestExchangeCountMonotonicAcrossInvocations(t *testing.T) {
	// Simulates the caller loop: each invocation appends one user and one
	// assistant turn, so the derived exchange count advances by exactly 1.
	prev := -1
	for turns := 0; turns <= 12; turns += 2 {
		n := ExchangeCount(turns + 1) // +1 for the new user message
		assert.Equal(t, prev+1, n)
		prev = n
	}
}
