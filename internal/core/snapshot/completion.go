package snapshot

import "strings"

// Sentinel is the literal token whose presence anywhere in an assistant
// reply marks the conversation terminal. It is stripped before the text
// reaches the caller.
const Sentinel = "[SNAPSHOT_COMPLETE]"

// forcedClosing is appended (plus the sentinel) when the hard exchange cap
// is hit and the model still has not concluded on its own.
const forcedClosing = "\n\nThank you for sharing so openly with me. I have everything I need to put your snapshot together now."

// Exchange-count bands for the completion controller.
const (
	softWrapAt     = 8
	hardConcludeAt = 12
	forceCapAt     = 15
)

// ExchangeCount is floor(totalTurns/2) over the transcript including the
// new user turn.
func ExchangeCount(totalTurns int) int {
	return totalTurns / 2
}

// CompletionDirective returns the instruction to append to the system
// prompt for the given exchange count. Empty below the soft band.
func CompletionDirective(exchangeCount int) string {
	switch {
	case exchangeCount >= hardConcludeAt:
		return "\n\nIMPORTANT: This conversation has gone on long enough. You must conclude after this turn: thank the person warmly, then end your reply with " + Sentinel + "."
	case exchangeCount >= softWrapAt:
		return "\n\nThe conversation is nearing its natural end. Start wrapping up: go for depth on what has already been shared rather than opening new topics, and when you feel you have a full picture, end your reply with " + Sentinel + "."
	default:
		return ""
	}
}

// ForceConclusion appends the closing sentence and sentinel when the model
// blew past the hard cap without concluding. A safety net, not a retry.
func ForceConclusion(exchangeCount int, text string) string {
	if exchangeCount >= forceCapAt && !strings.Contains(text, Sentinel) {
		return text + forcedClosing + " " + Sentinel
	}
	return text
}

// IsTerminal reports whether the raw (untrimmed) assistant text carries
// the sentinel.
func IsTerminal(text string) bool {
	return strings.Contains(text, Sentinel)
}

// StripSentinel removes the sentinel from caller-visible text.
func StripSentinel(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, Sentinel, ""))
}
