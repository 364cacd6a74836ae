// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// QuestionDescriptor is the controller's output for one turn, serialized as a
// flat record for callers. IsComplete=true is the sole termination signal and
// must be checked before invoking the controller again.
type QuestionDescriptor struct {
	Question              string        `json:"question"`
	Section               string        `json:"section"`
	IsComplete            bool          `json:"isComplete"`
	Type                  QuestionType  `json:"questionType,omitempty"`
	Topic                 string        `json:"topic,omitempty"`
	Style                 QuestionStyle `json:"questionStyle,omitempty"`
	FollowUpOpportunities []string      `json:"followUpOpportunities,omitempty"`
}

// AsTranscriptEntry converts the descriptor into the question entry the caller
// appends to the transcript before collecting the candidate's answer.
func (q *QuestionDescriptor) AsTranscriptEntry() TranscriptEntry {
	return TranscriptEntry{
		Kind:    KindQuestion,
		Text:    q.Question,
		Section: q.Section,
		Topic:   q.Topic,
		Type:    q.Type,
		Style:   q.Style,
	}
}
