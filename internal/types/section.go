// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section represents a named phase of the interview with topic list and question-count bounds.
// Sections are static reference data created at process start and never mutated.
type Section struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	MinQuestions int      `json:"min_questions"`
	MaxQuestions int      `json:"max_questions"`
	Topics       []string `json:"topics"`
}
