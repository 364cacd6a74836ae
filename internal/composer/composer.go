// Package composer assembles provider-agnostic generation requests from the
// flow controller's decision, the candidate profile and the transcript. It is
// string templating only and has no failure modes of its own: missing template
// keys degrade to generic task directives.
package composer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/interview-coach/internal/flow"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/types"
)

// Prompt-size resource controls. Truncation bounds the request payload; it is
// not a data-model constraint.
const (
	maxPromptSkills    = 10
	maxPromptProjects  = 3
	maxPromptRoles     = 3
	historyWindow      = 6
	antiRepeatWindow   = 5
	styleWindow        = 5
	introExcerptRunes  = 300
	answerExcerptRunes = 100
)

// Request is the opaque generation payload handed to the backend adapter.
type Request struct {
	System string
	Prompt string
	Style  types.QuestionStyle
}

// Composer builds generation requests with style rotation.
type Composer struct {
	rng *rand.Rand
}

// New creates a composer with time-seeded style randomness.
func New() *Composer {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a composer with an explicit random source for
// deterministic tests.
func NewWithSource(source rand.Source) *Composer {
	return &Composer{rng: rand.New(source)}
}

// Compose builds the generation request for a non-intro, non-terminal
// decision. The chosen style avoids any style used in the last five question
// entries unless that exclusion empties the candidate set.
func (c *Composer) Compose(decision flow.Decision, profile *types.CandidateProfile, history types.Transcript, previousAnswer string) *Request {
	style := c.PickStyle(history)

	facts := profileFacts(profile)
	task := c.taskDirective(decision, facts)

	data := map[string]string{
		"Name":             facts.name,
		"Level":            facts.level,
		"Role":             facts.role,
		"Section":          decision.Section.ID,
		"Topic":            decision.Topic,
		"QuestionType":     string(decision.Type),
		"Context":          c.contextLine(decision, previousAnswer),
		"Introduction":     introductionBlock(history),
		"Skills":           facts.skillsText,
		"Experience":       experienceBlock(profile),
		"Projects":         projectsBlock(profile),
		"History":          historyBlock(history, facts.name),
		"PreviousAnswer":   previousAnswerLine(previousAnswer),
		"AskedQuestions":   askedQuestionsBlock(history),
		"Task":             task,
		"StyleInstruction": styleInstruction(style),
	}

	return &Request{
		System: prompts.Format(prompts.MustGet("interview.json", "system"), map[string]string{"Style": string(style)}),
		Prompt: prompts.Format(prompts.MustGet("interview.json", "question"), data),
		Style:  style,
	}
}

// PickStyle draws uniformly from the style enum minus the styles used in the
// last five question entries, falling back to the full set when the exclusion
// leaves nothing.
func (c *Composer) PickStyle(history types.Transcript) types.QuestionStyle {
	recent := make(map[types.QuestionStyle]bool)
	for _, style := range history.RecentStyles(styleWindow) {
		recent[style] = true
	}

	available := make([]types.QuestionStyle, 0, len(types.AllQuestionStyles))
	for _, style := range types.AllQuestionStyles {
		if !recent[style] {
			available = append(available, style)
		}
	}
	if len(available) == 0 {
		available = types.AllQuestionStyles
	}

	return available[c.rng.Intn(len(available))]
}

// taskDirective resolves the per-turn instruction: a follow-up directive keyed
// by the leading opportunity, or a section/topic directive otherwise.
func (c *Composer) taskDirective(decision flow.Decision, facts facts) string {
	data := map[string]string{
		"Name":             facts.name,
		"Role":             facts.role,
		"Level":            facts.level,
		"FirstSkill":       facts.firstSkill,
		"FirstCompany":     facts.firstCompany,
		"FirstRole":        facts.firstRole,
		"FirstProject":     facts.firstProject,
		"FirstProjectTech": facts.firstProjectTech,
	}

	if decision.Type == types.TypeFollowUp {
		opportunity := "elaborate"
		if len(decision.FollowUpOpportunities) > 0 {
			opportunity = decision.FollowUpOpportunities[0]
		}
		if template, err := prompts.Get("followups.json", opportunity); err == nil {
			return prompts.Format(template, data)
		}
		return fmt.Sprintf("Ask %s to elaborate on their previous answer with more specific details.", facts.name)
	}

	key := decision.Section.ID + "." + decision.Topic
	if template, err := prompts.Get("topics.json", key); err == nil {
		return prompts.Format(template, data)
	}
	return fmt.Sprintf("Ask %s a fresh question about %s relevant to the %s role.", facts.name, decision.Topic, facts.role)
}

// contextLine states what kind of turn this is so the model transitions naturally.
func (c *Composer) contextLine(decision flow.Decision, previousAnswer string) string {
	switch decision.Type {
	case types.TypeFollowUp:
		return prompts.Format(prompts.MustGet("interview.json", "followup_context"), map[string]string{
			"AnswerExcerpt": truncateRunes(previousAnswer, answerExcerptRunes),
		})
	case types.TypeNewSection:
		return prompts.Format(prompts.MustGet("interview.json", "new_section_context"), map[string]string{
			"SectionUpper": strings.ToUpper(decision.Section.ID),
		})
	default:
		return prompts.Format(prompts.MustGet("interview.json", "continue_context"), map[string]string{
			"Section": decision.Section.ID,
			"Topic":   decision.Topic,
		})
	}
}

// facts are the defaulted, truncated profile values woven into templates.
type facts struct {
	name             string
	role             string
	level            string
	skillsText       string
	firstSkill       string
	firstCompany     string
	firstRole        string
	firstProject     string
	firstProjectTech string
}

func profileFacts(profile *types.CandidateProfile) facts {
	f := facts{
		name:             "Candidate",
		role:             "software-engineer",
		level:            "mid-level",
		skillsText:       "various technologies",
		firstSkill:       "a key skill",
		firstCompany:     "your previous company",
		firstRole:        "your previous role",
		firstProject:     "one of your projects",
		firstProjectTech: "the technologies",
	}
	if profile == nil {
		return f
	}

	if profile.Name != "" {
		f.name = profile.Name
	}
	if profile.TargetRole != "" {
		f.role = profile.TargetRole
	}
	if profile.ExperienceLevel != "" {
		f.level = profile.ExperienceLevel
	}
	if len(profile.Skills) > 0 {
		skills := profile.Skills
		if len(skills) > maxPromptSkills {
			skills = skills[:maxPromptSkills]
		}
		f.skillsText = strings.Join(skills, ", ")
		f.firstSkill = profile.Skills[0]
		f.firstProjectTech = profile.Skills[0]
	}
	if len(profile.PriorRoles) > 0 {
		if profile.PriorRoles[0].Company != "" {
			f.firstCompany = profile.PriorRoles[0].Company
		}
		if profile.PriorRoles[0].Title != "" {
			f.firstRole = profile.PriorRoles[0].Title
		}
	}
	if len(profile.Projects) > 0 {
		if profile.Projects[0].Name != "" {
			f.firstProject = profile.Projects[0].Name
		}
		if len(profile.Projects[0].Technologies) > 0 {
			f.firstProjectTech = strings.Join(truncateList(profile.Projects[0].Technologies, 3), ", ")
		}
	}
	return f
}

// experienceBlock renders the first few prior roles as prompt bullet lines.
func experienceBlock(profile *types.CandidateProfile) string {
	if profile == nil || len(profile.PriorRoles) == 0 {
		return "- No experience listed"
	}

	roles := profile.PriorRoles
	if len(roles) > maxPromptRoles {
		roles = roles[:maxPromptRoles]
	}

	lines := make([]string, 0, len(roles))
	for _, role := range roles {
		line := fmt.Sprintf("- %s at %s", role.Title, role.Company)
		if len(role.Technologies) > 0 {
			line += fmt.Sprintf(" (Tech: %s)", strings.Join(truncateList(role.Technologies, 3), ", "))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// projectsBlock renders the first few projects as prompt bullet lines.
func projectsBlock(profile *types.CandidateProfile) string {
	if profile == nil || len(profile.Projects) == 0 {
		return "- No projects listed"
	}

	projects := profile.Projects
	if len(projects) > maxPromptProjects {
		projects = projects[:maxPromptProjects]
	}

	lines := make([]string, 0, len(projects))
	for _, project := range projects {
		line := "- " + project.Name
		if len(project.Technologies) > 0 {
			line += " using " + strings.Join(truncateList(project.Technologies, 3), ", ")
		}
		if project.Description != "" {
			line += ": " + truncateRunes(project.Description, 100)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// historyBlock renders the recent conversation window as dialogue lines.
func historyBlock(history types.Transcript, candidateName string) string {
	recent := history.Tail(historyWindow)
	if len(recent) == 0 {
		return "None yet"
	}

	lines := make([]string, 0, len(recent))
	for _, entry := range recent {
		speaker := candidateName
		if entry.Kind == types.KindQuestion {
			speaker = "AI"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, entry.Text))
	}
	return strings.Join(lines, "\n")
}

// askedQuestionsBlock lists the last few asked questions verbatim so the model
// is explicitly forbidden from restating them.
func askedQuestionsBlock(history types.Transcript) string {
	asked := history.LastQuestions(antiRepeatWindow)
	if len(asked) == 0 {
		return "None yet"
	}

	lines := make([]string, 0, len(asked))
	for _, question := range asked {
		lines = append(lines, "- "+question)
	}
	return strings.Join(lines, "\n")
}

// introductionBlock injects the candidate's self-introduction excerpt once one
// exists in the transcript.
func introductionBlock(history types.Transcript) string {
	if len(history) < 2 {
		return ""
	}
	intro, ok := history.FirstAnswer()
	if !ok {
		return ""
	}
	return prompts.Format(prompts.MustGet("interview.json", "introduction_context"), map[string]string{
		"Introduction": truncateRunes(intro, introExcerptRunes),
	})
}

func previousAnswerLine(previousAnswer string) string {
	if previousAnswer == "" {
		return "No previous answer (this is the first question)"
	}
	return previousAnswer
}

func styleInstruction(style types.QuestionStyle) string {
	if instruction, err := prompts.Get("styles.json", string(style)); err == nil {
		return instruction
	}
	return "Ask a unique question"
}

// truncateRunes shortens a string to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// truncateList returns at most the first n items.
func truncateList(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
