package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingKey(t *testing.T) {
	template, err := Get("followups.json", "elaborate")
	require.NoError(t, err)
	assert.Contains(t, template, "{{.Name}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("followups.json", "nonexistent_key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent_key")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("does-not-exist.json", "anything")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("followups.json", "nope")
	})
	assert.NotPanics(t, func() {
		MustGet("interview.json", "system")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to the {{.Role}} interview. {{.Name}} again.", map[string]string{
		"Name": "Sam",
		"Role": "backend engineer",
	})
	assert.Equal(t, "Hello Sam, welcome to the backend engineer interview. Sam again.", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestKeys_StylesCoverEveryStyle(t *testing.T) {
	keys, err := Keys("styles.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"behavioral_star", "situational", "technical_deep", "project_walkthrough",
		"problem_solving", "opinion_based", "comparison", "experience_specific",
	}, keys)
}

func TestTopicsFile_CoversDefaultCatalogTopics(t *testing.T) {
	// Every section.topic pair the catalog can select must have a task template.
	keys, err := Keys("topics.json")
	require.NoError(t, err)

	expected := []string{
		"greeting.introduction", "greeting.background_overview",
		"resume.work_experience", "resume.career_progression", "resume.achievements", "resume.skills_application",
		"projects.project_overview", "projects.technical_challenges", "projects.problem_solving",
		"projects.architecture_decisions", "projects.outcomes",
		"behavioral.teamwork", "behavioral.leadership", "behavioral.conflict_resolution",
		"behavioral.adaptability", "behavioral.learning",
		"technical.technical_knowledge", "technical.best_practices", "technical.system_design",
		"technical.problem_solving", "technical.code_quality",
		"closing.candidate_questions", "closing.final_thoughts",
	}
	assert.ElementsMatch(t, expected, keys)
}

func TestFollowupsFile_CoversEveryOpportunity(t *testing.T) {
	keys, err := Keys("followups.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"elaborate", "details", "clarification",
		"challenges", "technical_details", "teamwork", "learning",
		"architecture_decisions", "performance",
		"conflict_resolution", "leadership_style",
	}, keys)
}
