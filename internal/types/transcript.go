// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// EntryKind distinguishes question entries from answer entries in a transcript
type EntryKind string

// Entry kinds
const (
	// KindQuestion marks an entry produced by the interviewer
	KindQuestion EntryKind = "question"
	// KindAnswer marks an entry produced by the candidate
	KindAnswer EntryKind = "answer"
)

// QuestionType classifies how a question was chosen by the flow controller
type QuestionType string

// Question types emitted by the flow controller
const (
	// TypeIntroduction is the fixed opening question of an interview
	TypeIntroduction QuestionType = "introduction"
	// TypeFollowUp digs deeper into the immediately preceding answer
	TypeFollowUp QuestionType = "follow_up"
	// TypeNewTopic opens an uncovered topic while the section is below its minimum
	TypeNewTopic QuestionType = "new_topic"
	// TypeNewSection is the first question of a freshly entered section
	TypeNewSection QuestionType = "new_section"
	// TypeContinueSection covers remaining topics between a section's min and max
	TypeContinueSection QuestionType = "continue_section"
	// TypeFallback is a canned question substituted when generation fails
	TypeFallback QuestionType = "fallback"
)

// QuestionStyle is a rhetorical framing used to diversify question phrasing
type QuestionStyle string

// Question styles rotated by the prompt composer
const (
	StyleBehavioralSTAR     QuestionStyle = "behavioral_star"
	StyleSituational        QuestionStyle = "situational"
	StyleTechnicalDeep      QuestionStyle = "technical_deep"
	StyleProjectWalkthrough QuestionStyle = "project_walkthrough"
	StyleProblemSolving     QuestionStyle = "problem_solving"
	StyleOpinionBased       QuestionStyle = "opinion_based"
	StyleComparison         QuestionStyle = "comparison"
	StyleExperienceSpecific QuestionStyle = "experience_specific"
)

// AllQuestionStyles lists every rotatable style in a stable order
var AllQuestionStyles = []QuestionStyle{
	StyleBehavioralSTAR,
	StyleSituational,
	StyleTechnicalDeep,
	StyleProjectWalkthrough,
	StyleProblemSolving,
	StyleOpinionBased,
	StyleComparison,
	StyleExperienceSpecific,
}

// TranscriptEntry is one question or answer in the interview transcript.
// Entries are created by the caller and never mutated once appended.
type TranscriptEntry struct {
	ID        string        `json:"id,omitempty"`
	Kind      EntryKind     `json:"kind"`
	Text      string        `json:"text"`
	Section   string        `json:"section,omitempty"`
	Topic     string        `json:"topic,omitempty"`
	Type      QuestionType  `json:"question_type,omitempty"`
	Style     QuestionStyle `json:"question_style,omitempty"`
	Timestamp time.Time     `json:"timestamp,omitempty"`
}

// Transcript is the append-only ordered sequence of questions and answers
// for one interview. Insertion order is semantically meaningful.
type Transcript []TranscriptEntry

// QuestionCount returns the number of question entries in the transcript.
func (t Transcript) QuestionCount() int {
	count := 0
	for _, entry := range t {
		if entry.Kind == KindQuestion {
			count++
		}
	}
	return count
}

// SectionQuestionCount returns the number of questions already asked in the given section.
func (t Transcript) SectionQuestionCount(sectionID string) int {
	count := 0
	for _, entry := range t {
		if entry.Kind == KindQuestion && entry.Section == sectionID {
			count++
		}
	}
	return count
}

// CoveredTopics returns the set of topics already touched by questions asked
// in the given section. Coverage is derived from the transcript on every call
// so it can never desync from it.
func (t Transcript) CoveredTopics(sectionID string) map[string]bool {
	covered := make(map[string]bool)
	for _, entry := range t {
		if entry.Kind == KindQuestion && entry.Section == sectionID && entry.Topic != "" {
			covered[entry.Topic] = true
		}
	}
	return covered
}

// LastQuestions returns the texts of the last n question entries, oldest first.
func (t Transcript) LastQuestions(n int) []string {
	if n <= 0 {
		return nil
	}
	questions := make([]string, 0, n)
	for i := len(t) - 1; i >= 0 && len(questions) < n; i-- {
		if t[i].Kind == KindQuestion {
			questions = append(questions, t[i].Text)
		}
	}
	// Reverse into chronological order
	for i, j := 0, len(questions)-1; i < j; i, j = i+1, j-1 {
		questions[i], questions[j] = questions[j], questions[i]
	}
	return questions
}

// RecentStyles returns the styles of the last n question entries that carry one.
func (t Transcript) RecentStyles(n int) []QuestionStyle {
	if n <= 0 {
		return nil
	}
	styles := make([]QuestionStyle, 0, n)
	seen := 0
	for i := len(t) - 1; i >= 0 && seen < n; i-- {
		if t[i].Kind != KindQuestion {
			continue
		}
		seen++
		if t[i].Style != "" {
			styles = append(styles, t[i].Style)
		}
	}
	return styles
}

// Tail returns the last n entries of the transcript.
func (t Transcript) Tail(n int) Transcript {
	if n <= 0 {
		return nil
	}
	if len(t) <= n {
		return t
	}
	return t[len(t)-n:]
}

// FirstAnswer returns the text of the earliest answer entry, typically the
// candidate's self-introduction, and whether one exists yet.
func (t Transcript) FirstAnswer() (string, bool) {
	for _, entry := range t {
		if entry.Kind == KindAnswer {
			return entry.Text, true
		}
	}
	return "", false
}
