package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvita-health/anvita/internal/models"
)

func userTurn(text string) models.Turn {
	return models.Turn{Role: "user", Text: text}
}

func assistantTurn(text string) models.Turn {
	return models.Turn{Role: "assistant", Text: text}
}

func TestCoveredTopicsEmptyHistory(t *testing.T) {
	assert.Empty(t, CoveredTopics(nil))
	assert.Empty(t, CoveredTopics([]models.Turn{}))
}

func TestCoveredTopicsMatchesStressTriggers(t *testing.T) {
	history := []models.Turn{
		userTurn("I feel overwhelmed all the time."),
		assistantTurn("That sounds heavy. What tends to set it off?"),
	}
	covered := CoveredTopics(history)
	assert.Contains(t, covered, TopicStressTriggers)
}

func TestCoveredTopicsIgnoresAssistantTurns(t *testing.T) {
	history := []models.Turn{
		userTurn("Things are fine mostly."),
		assistantTurn("Do you ever feel overwhelmed or anxious?"),
	}
	covered := CoveredTopics(history)
	assert.NotContains(t, covered, TopicStressTriggers)
}

func TestCoveredTopicsCaseInsensitive(t *testing.T) {
	history := []models.Turn{userTurn("My RELATIONSHIP with my partner is strained.")}
	assert.Contains(t, CoveredTopics(history), TopicRelationships)
}

func TestCoveredTopicsStableOrder(t *testing.T) {
	history := []models.Turn{
		userTurn("I feel lonely and my family stresses me out and I journal to cope."),
	}
	covered := CoveredTopics(history)
	assert.Equal(t, []string{TopicStressTriggers, TopicCoping, TopicRelationships, TopicEmotions}, covered)
}

func TestTopicDirective(t *testing.T) {
	assert.Equal(t, "", TopicDirective(nil))

	d := TopicDirective([]string{TopicStressTriggers, TopicCoping})
	assert.Contains(t, d, "stress and anxiety triggers")
	assert.Contains(t, d, "coping strategies")
	assert.Contains(t, d, "Do not ask about these again")
}
