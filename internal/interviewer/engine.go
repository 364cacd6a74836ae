// Package interviewer exposes the interview conversation engine: the single
// entry point callers drive turn by turn. It wires the analyzer, flow
// controller, prompt composer and generation chain together and wraps them in
// the resilience layer, so a caller never observes a generation failure.
package interviewer

import (
	"context"
	"strings"

	"github.com/jonathan/interview-coach/internal/analysis"
	"github.com/jonathan/interview-coach/internal/composer"
	"github.com/jonathan/interview-coach/internal/flow"
	"github.com/jonathan/interview-coach/internal/types"
	"go.uber.org/zap"
)

// Generator is what the engine needs from the generation backend adapter.
// *llm.Chain satisfies it.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Request carries one turn's inputs. The transcript is append-only and owned
// by the caller; the engine recomputes all state from it on every call, so
// calls for the same interview must be serialized by the caller.
type Request struct {
	SectionID      string
	PreviousAnswer string
	Profile        *types.CandidateProfile
	History        types.Transcript
}

// Engine drives the adaptive interview conversation.
type Engine struct {
	controller *flow.Controller
	composer   *composer.Composer
	generator  Generator
	logger     *zap.Logger
}

// New creates an engine. A nil logger disables logging.
func New(controller *flow.Controller, comp *composer.Composer, generator Generator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		controller: controller,
		composer:   comp,
		generator:  generator,
		logger:     logger,
	}
}

// NextQuestion produces the next question descriptor for the interview.
// IsComplete=true on the result is the sole termination signal; callers must
// check it before calling again. Generation failures never surface as errors:
// the result degrades to a canned section question with questionType=fallback.
func (e *Engine) NextQuestion(ctx context.Context, req Request) *types.QuestionDescriptor {
	analysisResult := analysis.Analyze(req.History, req.SectionID, req.PreviousAnswer, req.Profile)
	decision := e.controller.Decide(req.History, req.SectionID, analysisResult, req.Profile)

	if decision.Complete {
		return &types.QuestionDescriptor{
			Section:    req.SectionID,
			IsComplete: true,
		}
	}

	// Bootstrap: fixed greeting, no generation round-trip.
	if decision.IntroQuestion != "" {
		return &types.QuestionDescriptor{
			Question:              decision.IntroQuestion,
			Section:               decision.Section.ID,
			Type:                  types.TypeIntroduction,
			Topic:                 decision.Topic,
			FollowUpOpportunities: decision.FollowUpOpportunities,
		}
	}

	request := e.composer.Compose(decision, req.Profile, req.History, req.PreviousAnswer)

	text, err := e.generator.Generate(ctx, request.System, request.Prompt)
	if err != nil {
		e.logger.Warn("question generation failed, degrading to fallback",
			zap.String("section", decision.Section.ID),
			zap.Error(err))
		return e.fallbackDescriptor(decision.Section.ID)
	}

	if repeatsAskedQuestion(text, req.History) {
		e.logger.Warn("generated question repeats transcript, degrading to fallback",
			zap.String("section", decision.Section.ID))
		return e.fallbackDescriptor(decision.Section.ID)
	}

	return &types.QuestionDescriptor{
		Question:              text,
		Section:               decision.Section.ID,
		Type:                  decision.Type,
		Topic:                 decision.Topic,
		Style:                 request.Style,
		FollowUpOpportunities: decision.FollowUpOpportunities,
	}
}

// fallbackDescriptor builds the degraded descriptor for a section.
func (e *Engine) fallbackDescriptor(sectionID string) *types.QuestionDescriptor {
	return &types.QuestionDescriptor{
		Question: FallbackQuestion(sectionID),
		Section:  sectionID,
		Type:     types.TypeFallback,
		Topic:    "general",
	}
}

// repeatsAskedQuestion reports whether the generated text exactly restates a
// question already present in the transcript. The prompt forbids it; a model
// that does it anyway is treated like malformed output.
func repeatsAskedQuestion(text string, history types.Transcript) bool {
	normalized := strings.TrimSpace(text)
	for _, entry := range history {
		if entry.Kind == types.KindQuestion && strings.TrimSpace(entry.Text) == normalized {
			return true
		}
	}
	return false
}
