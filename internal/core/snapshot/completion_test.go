package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExchangeCount(t *testing.T) {
	assert.Equal(t, 0, ExchangeCount(1))  // first user message, no reply yet
	assert.Equal(t, 1, ExchangeCount(2))
	assert.Equal(t, 1, ExchangeCount(3))
	assert.Equal(t, 15, ExchangeCount(31)) // 30 prior turns + new user message
}

func TestCompletionDirectiveBands(t *testing.T) {
	for n := 0; n < 8; n++ {
		assert.Equal(t, "", CompletionDirective(n), "exchange %d", n)
	}
	for n := 8; n <= 11; n++ {
		d := CompletionDirective(n)
		assert.Contains(t, d, "wrapping up", "exchange %d", n)
		assert.NotContains(t, d, "must conclude", "exchange %d", n)
	}
	for n := 12; n <= 20; n++ {
		assert.Contains(t, CompletionDirective(n), "must conclude", "exchange %d", n)
	}
}

func TestForceConclusionBelowCapLeavesTextAlone(t *testing.T) {
	text := "Tell me more about that."
	assert.Equal(t, text, ForceConclusion(14, text))
}

func TestForceConclusionAtCapAppendsSentinel(t *testing.T) {
	out := ForceConclusion(15, "ok")
	assert.True(t, strings.Contains(out, Sentinel))
	assert.True(t, strings.HasPrefix(out, "ok"))
}

func TestForceConclusionRespectsExistingSentinel(t *testing.T) {
	text := "Thank you for sharing. " + Sentinel
	assert.Equal(t, text, ForceConclusion(16, text))
}

func TestIsTerminalAndStrip(t *testing.T) {
	raw := "Thank you for opening up today. " + Sentinel
	assert.True(t, IsTerminal(raw))
	assert.Equal(t, "Thank you for opening up today.", StripSentinel(raw))

	assert.False(t, IsTerminal("just another question?"))
}

func TestStripSentinelMidText(t *testing.T) {
	raw := "Before " + Sentinel + " after"
	assert.Equal(t, "Before  after", StripSentinel(raw))
	assert.NotContains(t, StripSentinel(raw), Sentinel)
}
