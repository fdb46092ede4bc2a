package snapshot

import (
	"strings"

	"github.com/anvita-health/anvita/internal/models"
)

// Topic labels as they appear in the do-not-repeat directive.
const (
	TopicStressTriggers = "stress and anxiety triggers"
	TopicCoping         = "coping strategies"
	TopicRelationships  = "relationships"
	TopicEmotions       = "emotional states"
)

// topicKeywords maps each topic label to the substrings that mark it as
// covered. Matching is case-insensitive and deliberately loose; a single
// hit in any prior user turn counts.
var topicKeywords = map[string][]string{
	TopicStressTriggers: {"stress", "anxious", "anxiety", "overwhelm", "pressure", "panic"},
	TopicCoping:         {"cope", "coping", "deal with", "manage", "breathe", "meditat", "journal"},
	TopicRelationships:  {"relationship", "partner", "friend", "family", "parent", "colleague", "alone"},
	TopicEmotions:       {"feel", "felt", "sad", "angry", "lonely", "numb", "happy", "mood"},
}

// topicOrder keeps the directive wording stable across calls.
var topicOrder = []string{TopicStressTriggers, TopicCoping, TopicRelationships, TopicEmotions}

// CoveredTopics scans prior user turns for keyword families and returns the
// labels of topics already discussed, in stable order. The current message
// is not scanned; it only counts as history on the next call.
func CoveredTopics(history []models.Turn) []string {
	var userText strings.Builder
	for _, t := range history {
		if t.Role == "user" {
			userText.WriteString(strings.ToLower(t.Text))
			userText.WriteString("\n")
		}
	}
	haystack := userText.String()
	if haystack == "" {
		return nil
	}

	var covered []string
	for _, topic := range topicOrder {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(haystack, kw) {
				covered = append(covered, topic)
				break
			}
		}
	}
	return covered
}

// TopicDirective renders the do-not-repeat instruction for the system
// prompt. Empty when nothing is covered yet.
func TopicDirective(covered []string) string {
	if len(covered) == 0 {
		return ""
	}
	return "\n\nTopics already covered in this conversation: " +
		strings.Join(covered, ", ") +
		". Do not ask about these again unless the person is going deeper on something they themselves raised."
}
