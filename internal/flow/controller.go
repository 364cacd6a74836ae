// Package flow implements the interview state machine: given the analyzer's
// read of the latest answer, it decides whether to follow up, open an
// uncovered topic, advance to the next section, or end the interview.
//
// The controller is stateless between calls. Every decision is recomputed
// from the transcript the caller supplies, so concurrent interviews need no
// shared state; calls within one interview must be serialized by the caller.
package flow

import (
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/interview-coach/internal/catalog"
	"github.com/jonathan/interview-coach/internal/types"
)

// followUpWindow is how many trailing transcript entries are scanned when
// rate-limiting follow-ups. Two entries cover the last question/answer pair.
const followUpWindow = 2

// introTemplates greet the candidate by name. Placeholders are filled from the
// profile; one is picked at random per interview.
var introTemplates = []string{
	"Hello {{.Name}}! Thank you for joining us today. To start, could you please introduce yourself and tell me a bit about your background?",
	"Hi {{.Name}}! Welcome to the interview. I'd love to hear about your journey - could you introduce yourself and share what brings you to apply for {{.Role}}?",
	"Good to meet you, {{.Name}}! Let's begin by having you introduce yourself. Tell me about your background and what excites you about this opportunity.",
	"Welcome {{.Name}}! Before we dive in, I'd like to get to know you better. Could you introduce yourself and walk me through your professional background?",
}

// introOpportunities seeds caller bookkeeping on the opening question.
var introOpportunities = []string{"background", "experience", "motivation"}

// Decision is the controller's verdict for one turn. When Complete is true the
// interview is over and no question should be generated. When IntroQuestion is
// non-empty the question text is fixed and the generation pipeline is skipped.
type Decision struct {
	Type                  types.QuestionType
	Section               *types.Section
	Topic                 string
	Complete              bool
	IntroQuestion         string
	FollowUpOpportunities []string
}

// Controller drives section and topic transitions over a fixed catalog.
type Controller struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewController creates a controller over the given catalog with
// time-seeded randomness for intro template choice.
func NewController(cat *catalog.Catalog) *Controller {
	return NewControllerWithSource(cat, rand.NewSource(time.Now().UnixNano()))
}

// NewControllerWithSource creates a controller with an explicit random source
// for deterministic tests. Randomness only affects the intro template pick;
// topic selection is fully deterministic.
func NewControllerWithSource(cat *catalog.Catalog, source rand.Source) *Controller {
	return &Controller{
		catalog: cat,
		rng:     rand.New(source),
	}
}

// Catalog returns the catalog the controller decides over.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Decide evaluates the transition rules in strict priority order: bootstrap,
// terminal check, follow-up, minimum fill, maximum/semantic advance, then
// continue within the section.
func (c *Controller) Decide(history types.Transcript, sectionID string, analysis types.ConversationAnalysis, profile *types.CandidateProfile) Decision {
	// Bootstrap fires on a transcript with zero questions regardless of the
	// section the caller passed in.
	if history.QuestionCount() == 0 {
		first := c.catalog.First()
		return Decision{
			Type:                  types.TypeIntroduction,
			Section:               first,
			Topic:                 first.Topics[0],
			IntroQuestion:         c.introQuestion(profile),
			FollowUpOpportunities: introOpportunities,
		}
	}

	section, ok := c.catalog.SectionByID(sectionID)
	if !ok {
		return Decision{Complete: true}
	}

	asked := history.SectionQuestionCount(section.ID)

	if c.ShouldFollowUp(analysis, history) && asked < section.MaxQuestions {
		topic := analysis.CurrentTopic
		if topic == "" {
			topic = section.Topics[0]
		}
		return Decision{
			Type:                  types.TypeFollowUp,
			Section:               section,
			Topic:                 topic,
			FollowUpOpportunities: analysis.FollowUpOpportunities,
		}
	}

	if asked < section.MinQuestions {
		return Decision{
			Type:                  types.TypeNewTopic,
			Section:               section,
			Topic:                 c.NextTopic(section, history),
			FollowUpOpportunities: analysis.FollowUpOpportunities,
		}
	}

	if asked >= section.MaxQuestions || analysis.SectionComplete {
		next, hasNext := c.catalog.NextSection(section.ID)
		if !hasNext {
			return Decision{Complete: true}
		}
		return Decision{
			Type:                  types.TypeNewSection,
			Section:               next,
			Topic:                 next.Topics[0],
			FollowUpOpportunities: analysis.FollowUpOpportunities,
		}
	}

	return Decision{
		Type:                  types.TypeContinueSection,
		Section:               section,
		Topic:                 c.NextTopic(section, history),
		FollowUpOpportunities: analysis.FollowUpOpportunities,
	}
}

// ShouldFollowUp decides whether the latest answer warrants digging deeper.
// Shallow answers always warrant one; otherwise a detected opportunity does.
// Either way the follow-up is suppressed when one of the last two transcript
// entries already is a follow-up question, so the interview never asks two
// follow-ups back-to-back.
func (c *Controller) ShouldFollowUp(analysis types.ConversationAnalysis, history types.Transcript) bool {
	if analysis.AnswerDepth != types.DepthShallow && !analysis.HasOpportunities() {
		return false
	}

	for _, entry := range history.Tail(followUpWindow) {
		if entry.Kind == types.KindQuestion && entry.Type == types.TypeFollowUp {
			return false
		}
	}
	return true
}

// NextTopic returns the first topic in the section's ordered list that no
// question in the transcript has covered yet. When every topic is covered it
// falls back to the section's first topic. Selection is idempotent for a
// fixed transcript.
func (c *Controller) NextTopic(section *types.Section, history types.Transcript) string {
	covered := history.CoveredTopics(section.ID)
	for _, topic := range section.Topics {
		if !covered[topic] {
			return topic
		}
	}
	return section.Topics[0]
}

// introQuestion picks a greeting template and fills in the candidate's name
// and target role, with conversational defaults when the profile is sparse.
func (c *Controller) introQuestion(profile *types.CandidateProfile) string {
	name := "there"
	role := "this position"
	if profile != nil {
		if profile.Name != "" {
			name = profile.Name
		}
		if profile.TargetRole != "" {
			role = profile.TargetRole
		}
	}

	template := introTemplates[c.rng.Intn(len(introTemplates))]
	replacer := strings.NewReplacer("{{.Name}}", name, "{{.Role}}", role)
	return replacer.Replace(template)
}
