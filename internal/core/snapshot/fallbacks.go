package snapshot

import "github.com/anvita-health/anvita/internal/models"

// StandardFallback replaces findings that parsed but came back empty of
// content. Generic on purpose: the person still gets a complete-looking
// snapshot rather than a blank report.
var StandardFallback = models.StructuredFindings{
	EmotionalPatterns: models.EmotionalPatterns{
		CurrentState:         "You seem to be navigating a mix of everyday pressures while staying engaged with your own wellbeing.",
		StressTriggers:       []string{"periods of high demand", "uncertainty about the future"},
		StressResponse:       "You tend to carry stress internally before reaching out.",
		RegulationStrategies: []string{"taking quiet time for yourself", "talking things through with someone you trust"},
	},
	RelationshipPatterns: models.RelationshipPatterns{
		ConnectionStyle:     "You value a small number of close, dependable connections.",
		UncertaintyResponse: "You prefer to gather your thoughts before acting when things feel unclear.",
		ConflictStyle:       "You lean toward keeping the peace and revisiting disagreements once emotions settle.",
		AttachmentNotes:     "Trust builds gradually for you, and it matters once it is there.",
	},
	WhatHelps: []string{"routines that give your day structure", "genuine conversations", "time to recharge alone"},
	WhatHurts: []string{"feeling unheard", "prolonged uncertainty", "too many demands at once"},
	PersonalityTendencies: models.PersonalityTendencies{
		BigFive: map[string]string{
			"openness":          "moderate",
			"conscientiousness": "moderate to high",
			"extraversion":      "moderate",
			"agreeableness":     "high",
			"neuroticism":       "moderate",
		},
		CognitiveStyle: "reflective, inclined to think things through before deciding",
		NaturalRhythm:  "steady, with energy that builds once you are settled into something",
	},
	MeaningfulExperiences: "The moments you shared suggest that connection and being understood carry real weight for you.",
	Summary:               "You come across as a thoughtful person who feels things deeply and works hard to keep life steady for yourself and the people around you. You are carrying real pressures, and you are also clearly resourceful about managing them. Taking the time for this reflection is itself a sign of the self-awareness you bring to your own growth.",
}

// EmergencyFallback is the last safety net, used when nothing usable came
// back at all (no JSON span, unparseable JSON, or a provider failure at
// the extraction step). Distinct from StandardFallback so logs and support
// can tell the two degradation paths apart.
var EmergencyFallback = models.StructuredFindings{
	EmotionalPatterns: models.EmotionalPatterns{
		CurrentState:         "You took the time for an honest self-reflection conversation, which says something in itself.",
		StressTriggers:       []string{"the pressures that come with daily life"},
		StressResponse:       "Like most people, stress shows up for you in both body and mind.",
		RegulationStrategies: []string{"pausing to reflect, as you did in this conversation"},
	},
	RelationshipPatterns: models.RelationshipPatterns{
		ConnectionStyle:     "Connection with others matters to you.",
		UncertaintyResponse: "Uncertainty is uncomfortable, and you are learning your own way through it.",
		ConflictStyle:       "You handle disagreement in your own considered way.",
		AttachmentNotes:     "The relationships you keep close shape how supported you feel.",
	},
	WhatHelps: []string{"being listened to without judgment"},
	WhatHurts: []string{"feeling dismissed or rushed"},
	PersonalityTendencies: models.PersonalityTendencies{
		BigFive: map[string]string{
			"openness":          "present",
			"conscientiousness": "present",
			"extraversion":      "varies",
			"agreeableness":     "present",
			"neuroticism":       "varies",
		},
		CognitiveStyle: "self-aware enough to sit with reflective questions",
		NaturalRhythm:  "your own pace",
	},
	MeaningfulExperiences: "Choosing to reflect on your inner life is a meaningful step on its own.",
	Summary:               "Thank you for completing this reflection. While we could not capture every detail this time, the willingness to look inward that you showed here is the foundation all growth builds on. We would love for you to revisit this conversation whenever you are ready.",
}
