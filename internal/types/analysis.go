// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AnswerDepth buckets the most recent answer by word count
type AnswerDepth string

// Answer depth buckets
const (
	// DepthShallow is an answer under 20 words
	DepthShallow AnswerDepth = "shallow"
	// DepthModerate is an answer under 50 words
	DepthModerate AnswerDepth = "moderate"
	// DepthDetailed is an answer of 50 words or more
	DepthDetailed AnswerDepth = "detailed"
)

// ConversationAnalysis is the analyzer's read of the most recent answer in the
// context of the running transcript. It is recomputed from scratch on every
// turn and never persisted.
type ConversationAnalysis struct {
	AnswerDepth           AnswerDepth `json:"answer_depth"`
	FollowUpOpportunities []string    `json:"follow_up_opportunities"`
	CurrentTopic          string      `json:"current_topic,omitempty"`
	SectionComplete       bool        `json:"section_complete"`
}

// HasOpportunities reports whether any follow-up opportunity was detected.
func (a *ConversationAnalysis) HasOpportunities() bool {
	return len(a.FollowUpOpportunities) > 0
}
