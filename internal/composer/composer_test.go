package composer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jonathan/interview-coach/internal/catalog"
	"github.com/jonathan/interview-coach/internal/flow"
	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer() *Composer {
	return NewWithSource(rand.NewSource(7))
}

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Name:            "Sam",
		TargetRole:      "backend engineer",
		ExperienceLevel: "senior",
		Skills:          []string{"Go", "PostgreSQL", "Kubernetes"},
		Projects: []types.Project{
			{Name: "OrderFlow", Technologies: []string{"Go", "Kafka"}, Description: "Event-driven order pipeline."},
		},
		PriorRoles: []types.PriorRole{
			{Title: "Staff Engineer", Company: "Acme", Technologies: []string{"Go"}},
		},
	}
}

func newTopicDecision(t *testing.T, sectionID, topic string) flow.Decision {
	t.Helper()
	section, ok := catalog.Default().SectionByID(sectionID)
	require.True(t, ok)
	return flow.Decision{Type: types.TypeNewTopic, Section: section, Topic: topic}
}

func TestCompose_IncludesProfileFactsAndTopicTask(t *testing.T) {
	c := newTestComposer()
	decision := newTopicDecision(t, "resume", "work_experience")

	request := c.Compose(decision, testProfile(), nil, "")

	assert.Contains(t, request.Prompt, "Sam")
	assert.Contains(t, request.Prompt, "backend engineer")
	assert.Contains(t, request.Prompt, "Go, PostgreSQL, Kubernetes")
	assert.Contains(t, request.Prompt, "Staff Engineer at Acme")
	assert.Contains(t, request.Prompt, "OrderFlow")
	assert.Contains(t, request.Prompt, "Acme")
	assert.NotContains(t, request.Prompt, "{{.", "all placeholders filled")
	assert.NotEmpty(t, request.System)
	assert.Contains(t, request.System, string(request.Style))
}

func TestCompose_AntiRepetitionBlockQuotesLastQuestions(t *testing.T) {
	c := newTestComposer()
	history := types.Transcript{
		{Kind: types.KindQuestion, Text: "What did you build at Acme?", Section: "resume", Type: types.TypeNewTopic, Style: types.StyleTechnicalDeep},
		{Kind: types.KindAnswer, Text: "An order pipeline."},
	}
	decision := newTopicDecision(t, "resume", "achievements")

	request := c.Compose(decision, testProfile(), history, "An order pipeline.")

	assert.Contains(t, request.Prompt, "- What did you build at Acme?")
	assert.Contains(t, request.Prompt, "DO NOT repeat")
}

func TestCompose_FollowUpReferencesPreviousAnswer(t *testing.T) {
	c := newTestComposer()
	section, _ := catalog.Default().SectionByID("projects")
	decision := flow.Decision{
		Type:                  types.TypeFollowUp,
		Section:               section,
		Topic:                 "technical_challenges",
		FollowUpOpportunities: []string{"challenges", "technical_details"},
	}
	previousAnswer := "We hit a nasty race condition under load."

	request := c.Compose(decision, testProfile(), nil, previousAnswer)

	assert.Contains(t, request.Prompt, previousAnswer)
	assert.Contains(t, request.Prompt, "FOLLOW-UP")
	// Leading opportunity picks the task directive.
	assert.Contains(t, request.Prompt, "challenges")
}

func TestCompose_NewSectionContext(t *testing.T) {
	c := newTestComposer()
	section, _ := catalog.Default().SectionByID("behavioral")
	decision := flow.Decision{Type: types.TypeNewSection, Section: section, Topic: "teamwork"}

	request := c.Compose(decision, testProfile(), nil, "A detailed answer.")

	assert.Contains(t, request.Prompt, "BEHAVIORAL")
	assert.Contains(t, request.Prompt, "Transition smoothly")
}

func TestCompose_NilProfileUsesDefaults(t *testing.T) {
	c := newTestComposer()
	decision := newTopicDecision(t, "greeting", "background_overview")

	request := c.Compose(decision, nil, nil, "")

	assert.Contains(t, request.Prompt, "Candidate")
	assert.Contains(t, request.Prompt, "software-engineer")
	assert.Contains(t, request.Prompt, "- No experience listed")
	assert.Contains(t, request.Prompt, "- No projects listed")
	assert.NotContains(t, request.Prompt, "{{.")
}

func TestCompose_TruncatesProfileFacts(t *testing.T) {
	profile := &types.CandidateProfile{Name: "Sam"}
	for i := 0; i < 15; i++ {
		profile.Skills = append(profile.Skills, "skill"+string(rune('a'+i)))
	}
	for i := 0; i < 5; i++ {
		profile.Projects = append(profile.Projects, types.Project{Name: "project" + string(rune('a'+i))})
		profile.PriorRoles = append(profile.PriorRoles, types.PriorRole{Title: "role" + string(rune('a'+i)), Company: "co"})
	}

	c := newTestComposer()
	request := c.Compose(newTopicDecision(t, "resume", "skills_application"), profile, nil, "")

	assert.Contains(t, request.Prompt, "skillj", "tenth skill kept")
	assert.NotContains(t, request.Prompt, "skillk", "eleventh skill dropped")
	assert.Contains(t, request.Prompt, "projectc")
	assert.NotContains(t, request.Prompt, "projectd")
	assert.Contains(t, request.Prompt, "rolec")
	assert.NotContains(t, request.Prompt, "roled")
}

func TestCompose_IntroductionExcerptInjectedOnceAvailable(t *testing.T) {
	c := newTestComposer()
	intro := "I'm Sam, I spent six years building payment systems."
	history := types.Transcript{
		{Kind: types.KindQuestion, Text: "Introduce yourself?", Section: "greeting", Type: types.TypeIntroduction},
		{Kind: types.KindAnswer, Text: intro},
	}

	request := c.Compose(newTopicDecision(t, "resume", "work_experience"), testProfile(), history, intro)
	assert.Contains(t, request.Prompt, "CANDIDATE'S INTRODUCTION")
	assert.Contains(t, request.Prompt, intro)

	// No introduction block before any answer exists.
	request = c.Compose(newTopicDecision(t, "greeting", "introduction"), testProfile(), nil, "")
	assert.NotContains(t, request.Prompt, "CANDIDATE'S INTRODUCTION")
}

func TestPickStyle_ExcludesRecentStyles(t *testing.T) {
	c := newTestComposer()
	var history types.Transcript
	used := []types.QuestionStyle{
		types.StyleBehavioralSTAR, types.StyleSituational, types.StyleTechnicalDeep,
		types.StyleProjectWalkthrough, types.StyleProblemSolving,
	}
	for _, style := range used {
		history = append(history, types.TranscriptEntry{Kind: types.KindQuestion, Text: "q", Style: style})
	}

	for i := 0; i < 50; i++ {
		style := c.PickStyle(history)
		assert.NotContains(t, used, style)
	}
}

func TestPickStyle_NoRepeatInWindowOfFive(t *testing.T) {
	c := newTestComposer()
	var history types.Transcript

	for i := 0; i < 40; i++ {
		style := c.PickStyle(history)
		recent := history.RecentStyles(5)
		assert.NotContains(t, recent, style, "style repeated within a 5-question window")
		history = append(history,
			types.TranscriptEntry{Kind: types.KindQuestion, Text: "q", Style: style},
			types.TranscriptEntry{Kind: types.KindAnswer, Text: "a"},
		)
	}
}

func TestPickStyle_FullWindowLeavesRemainder(t *testing.T) {
	c := newTestComposer()
	var history types.Transcript
	for _, style := range types.AllQuestionStyles {
		history = append(history, types.TranscriptEntry{Kind: types.KindQuestion, Text: "q", Style: style})
	}

	// The exclusion window holds the last 5 of the 8 styles, so picks must
	// come from the first 3.
	remaining := types.AllQuestionStyles[:3]
	for i := 0; i < 30; i++ {
		assert.Contains(t, remaining, c.PickStyle(history))
	}
}

func TestCompose_DeterministicWithFixedSeedAndHistory(t *testing.T) {
	history := types.Transcript{
		{Kind: types.KindQuestion, Text: "q1", Section: "resume", Type: types.TypeNewTopic, Style: types.StyleComparison},
		{Kind: types.KindAnswer, Text: "a1"},
	}
	decision := newTopicDecision(t, "resume", "achievements")

	a := NewWithSource(rand.NewSource(3)).Compose(decision, testProfile(), history, "a1")
	b := NewWithSource(rand.NewSource(3)).Compose(decision, testProfile(), history, "a1")

	assert.Equal(t, a.Style, b.Style)
	assert.Equal(t, a.Prompt, b.Prompt)
}

func TestCompose_HistoryWindowLimited(t *testing.T) {
	c := newTestComposer()
	var history types.Transcript
	for i := 0; i < 10; i++ {
		history = append(history,
			types.TranscriptEntry{Kind: types.KindQuestion, Text: "old question " + strings.Repeat("x", i)},
			types.TranscriptEntry{Kind: types.KindAnswer, Text: "old answer " + strings.Repeat("y", i)},
		)
	}

	request := c.Compose(newTopicDecision(t, "resume", "achievements"), testProfile(), history, "last answer")

	// Only the trailing window appears in the RECENT CONVERSATION block.
	assert.NotContains(t, request.Prompt, "AI: old question \n")
	assert.Contains(t, request.Prompt, "old answer yyyyyyyyy")
}
