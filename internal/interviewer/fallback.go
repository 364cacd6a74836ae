package interviewer

// fallbackQuestions is the static per-section table used when every
// generation provider fails. A dull canned question beats no question.
var fallbackQuestions = map[string]string{
	"greeting":   "Hello! Thank you for joining us today. Could you please introduce yourself and tell me a bit about your background?",
	"resume":     "Could you walk me through your most recent role and what you were responsible for?",
	"projects":   "What was the biggest technical challenge in one of your projects, and how did you overcome it?",
	"behavioral": "Tell me about a time when you had to work with a difficult team member. How did you handle it?",
	"technical":  "Can you explain a technical concept you know well as if I were a junior engineer?",
	"closing":    "Do you have any questions for us about the role or the company?",
}

// genericFallback covers section ids missing from the table.
const genericFallback = "Can you tell me more about your experience?"

// FallbackQuestion returns the canned question for a section.
func FallbackQuestion(sectionID string) string {
	if question, ok := fallbackQuestions[sectionID]; ok {
		return question
	}
	return genericFallback
}
