// Package analysis inspects the most recent answer and the running transcript
// to classify answer depth and detect follow-up opportunities. The analyzer is
// pure text analysis: it cannot fail and keeps no state between calls.
package analysis

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// Word-count thresholds for answer depth buckets
const (
	shallowWordLimit  = 20
	moderateWordLimit = 50
)

// TriggerRule maps a keyword set onto a follow-up opportunity token. Rules with
// a non-empty Section apply only while the interview is in that section.
type TriggerRule struct {
	Keywords    []string
	Opportunity string
	Section     string
}

// TriggerRules is the full keyword table, evaluated in order so opportunity
// detection order is deterministic.
var TriggerRules = []TriggerRule{
	{Keywords: []string{"challenge", "difficult", "problem", "issue"}, Opportunity: "challenges"},
	{Keywords: []string{"built", "created", "developed", "implemented"}, Opportunity: "technical_details"},
	{Keywords: []string{"team", "collaborated", "worked with"}, Opportunity: "teamwork"},
	{Keywords: []string{"learned", "discovered", "realized"}, Opportunity: "learning"},
	{Keywords: []string{"architecture", "design", "structure"}, Opportunity: "architecture_decisions", Section: "projects"},
	{Keywords: []string{"performance", "optimization", "scale"}, Opportunity: "performance", Section: "projects"},
	{Keywords: []string{"conflict", "disagreement", "difficult person"}, Opportunity: "conflict_resolution", Section: "behavioral"},
	{Keywords: []string{"leadership", "led", "managed"}, Opportunity: "leadership_style", Section: "behavioral"},
}

// Analyze classifies the most recent answer for the flow controller. An empty
// previous answer yields the zero-value analysis, which is the controller's
// signal that this is the very first turn. The profile is accepted for future
// trigger extensions and currently unused.
func Analyze(history types.Transcript, sectionID, previousAnswer string, profile *types.CandidateProfile) types.ConversationAnalysis {
	_ = profile

	result := types.ConversationAnalysis{
		AnswerDepth:           types.DepthShallow,
		FollowUpOpportunities: []string{},
		CurrentTopic:          currentTopic(history),
	}

	if previousAnswer == "" {
		return result
	}

	wordCount := len(strings.Fields(previousAnswer))
	switch {
	case wordCount < shallowWordLimit:
		result.AnswerDepth = types.DepthShallow
		result.FollowUpOpportunities = append(result.FollowUpOpportunities, "elaborate")
	case wordCount < moderateWordLimit:
		result.AnswerDepth = types.DepthModerate
		result.FollowUpOpportunities = append(result.FollowUpOpportunities, "details")
	default:
		result.AnswerDepth = types.DepthDetailed
		result.FollowUpOpportunities = append(result.FollowUpOpportunities, "clarification")
	}

	answerLower := strings.ToLower(previousAnswer)
	seen := make(map[string]bool, len(result.FollowUpOpportunities))
	for _, opportunity := range result.FollowUpOpportunities {
		seen[opportunity] = true
	}

	for _, rule := range TriggerRules {
		if rule.Section != "" && rule.Section != sectionID {
			continue
		}
		if seen[rule.Opportunity] {
			continue
		}
		if matchesAny(answerLower, rule.Keywords) {
			result.FollowUpOpportunities = append(result.FollowUpOpportunities, rule.Opportunity)
			seen[rule.Opportunity] = true
		}
	}

	return result
}

// currentTopic is the topic of the most recent question, which is what a
// follow-up keeps digging into. Empty when no question carries a topic yet.
func currentTopic(history types.Transcript) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Kind == types.KindQuestion {
			return history[i].Topic
		}
	}
	return ""
}

// matchesAny reports whether any keyword appears in the lowercased answer.
func matchesAny(answerLower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(answerLower, keyword) {
			return true
		}
	}
	return false
}
