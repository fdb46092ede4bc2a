package snapshot

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/anvita-health/anvita/internal/models"
)

// ExtractOutcome tags how the raw analysis reply was recovered into
// findings. Each tag maps to one handling policy, so callers never have
// to re-derive what went wrong from an error string.
type ExtractOutcome int

const (
	// OutcomeOK: parsed and at least one headline field is populated.
	OutcomeOK ExtractOutcome = iota
	// OutcomeNoMatch: no JSON-like span in the reply at all.
	OutcomeNoMatch
	// OutcomeParseError: a span was found but is not valid JSON.
	OutcomeParseError
	// OutcomeDegenerate: valid JSON but the headline fields (emotional
	// patterns, relationship patterns, summary) are all absent.
	OutcomeDegenerate
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// ExtractFindings scans a free-text analysis reply for the findings JSON.
// A fenced ```json block wins; otherwise the span from the first '{' to
// the last '}' is tried. The returned findings are only meaningful for
// OutcomeOK; every other outcome maps to a fallback payload upstream.
func ExtractFindings(raw string) (*models.StructuredFindings, ExtractOutcome) {
	span := ""
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		span = strings.TrimSpace(m[1])
	} else {
		open := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if open >= 0 && end > open {
			span = raw[open : end+1]
		}
	}
	if span == "" {
		return nil, OutcomeNoMatch
	}

	var f models.StructuredFindings
	if err := json.Unmarshal([]byte(span), &f); err != nil {
		return nil, OutcomeParseError
	}

	if headlinesEmpty(&f) {
		return nil, OutcomeDegenerate
	}
	return &f, OutcomeOK
}

func headlinesEmpty(f *models.StructuredFindings) bool {
	emoEmpty := f.EmotionalPatterns.CurrentState == "" &&
		len(f.EmotionalPatterns.StressTriggers) == 0 &&
		f.EmotionalPatterns.StressResponse == "" &&
		len(f.EmotionalPatterns.RegulationStrategies) == 0
	relEmpty := f.RelationshipPatterns == (models.RelationshipPatterns{})
	return emoEmpty && relEmpty && f.Summary == ""
}
