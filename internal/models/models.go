package models

import (
	"time"
)

// Turn represents a single utterance in a snapshot conversation.
type Turn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// EmotionalPatterns captures how the person experiences and regulates emotion.
type EmotionalPatterns struct {
	CurrentState         string   `json:"currentState"`
	StressTriggers       []string `json:"stressTriggers"`
	StressResponse       string   `json:"stressResponse"`
	RegulationStrategies []string `json:"regulationStrategies"`
}

// RelationshipPatterns captures how the person relates to others.
type RelationshipPatterns struct {
	ConnectionStyle     string `json:"connectionStyle"`
	UncertaintyResponse string `json:"uncertaintyResponse"`
	ConflictStyle       string `json:"conflictStyle"`
	AttachmentNotes     string `json:"attachmentNotes"`
}

// PersonalityTendencies captures broad dispositional traits.
type PersonalityTendencies struct {
	BigFive        map[string]string `json:"bigFive"`
	CognitiveStyle string            `json:"cognitiveStyle"`
	NaturalRhythm  string            `json:"naturalRhythm"`
}

// StructuredFindings is the fixed-shape report body extracted from a
// completed snapshot conversation.
type StructuredFindings struct {
	EmotionalPatterns     EmotionalPatterns     `json:"emotionalPatterns"`
	RelationshipPatterns  RelationshipPatterns  `json:"relationshipPatterns"`
	WhatHelps             []string              `json:"whatHelps"`
	WhatHurts             []string              `json:"whatHurts"`
	PersonalityTendencies PersonalityTendencies `json:"personalityTendencies"`
	MeaningfulExperiences string                `json:"meaningfulExperiences"`
	Summary               string                `json:"summary"`
}

// Report is the immutable record created once a conversation completes.
type Report struct {
	ReportID           string             `db:"id" json:"reportId"`
	OwnerID            string             `db:"owner_id" json:"ownerId"`
	OwnerPhone         string             `db:"owner_phone" json:"ownerPhone,omitempty"`
	FullTranscript     []Turn             `db:"transcript" json:"fullTranscript"`
	StructuredFindings StructuredFindings `db:"findings" json:"structuredFindings"`
	CreatedAt          time.Time          `db:"created_at" json:"createdAt"`
}

// Profile is a marketplace profile row. Onboarding and moderation live in
// the surrounding application; the snapshot pipeline only reads profiles
// to resolve an owner from a phone number.
type Profile struct {
	ID        string    `db:"id" json:"id"`
	Phone     string    `db:"phone" json:"phone"`
	FullName  string    `db:"full_name" json:"full_name"`
	Role      string    `db:"role" json:"role"`     // "client" or "provider"
	Status    string    `db:"status" json:"status"` // pending | approved | rejected
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
