package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/catalog"
	"github.com/jonathan/interview-coach/internal/composer"
	"github.com/jonathan/interview-coach/internal/flow"
	"github.com/jonathan/interview-coach/internal/interviewer"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/logger"
	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/types"
)

const answerLogLimit = 120

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive mock interview in the terminal",
	Long: `Starts an interview session: prints one question at a time, reads your
answer, and adapts the next question to what you said. The session walks
greeting, resume, projects, behavioral, technical and closing sections and
ends on its own after the closing section.

A candidate profile JSON (--profile) personalizes the questions. Type
"quit" at any prompt to stop early.`,
	RunE: runInterview,
}

var runProfilePath string

func init() {
	runCmd.Flags().StringVarP(&runProfilePath, "profile", "p", "", "path to a candidate profile JSON file")

	rootCmd.AddCommand(runCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json-log"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zlog.Sync()

	cfg, err := getConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	profile, err := loadProfile(runProfilePath)
	if err != nil {
		return err
	}

	clients, err := llm.NewClients(ctx, cfg.LLMConfig())
	if err != nil {
		return fmt.Errorf("building provider clients: %w", err)
	}

	chain := llm.NewChain(clients, cfg.Timeout, zlog)
	defer chain.Close()

	if chain.Len() == 0 {
		zlog.Warn("no provider API keys configured, every question will use the canned fallback set",
			zap.String("hint", "set GEMINI_API_KEY, GROQ_API_KEY or OPENROUTER_API_KEY"),
		)
	} else {
		zlog.Info("starting the interview",
			zap.Strings("providers", chain.Names()),
			zap.String("session_id", uuid.NewString()),
		)
	}

	engine := interviewer.New(
		flow.NewController(catalog.Default()),
		composer.New(),
		chain,
		zlog,
	)

	return interviewLoop(ctx, engine, profile, zlog)
}

// interviewLoop drives the question/answer exchange until the engine
// signals completion or the candidate quits.
func interviewLoop(ctx context.Context, engine *interviewer.Engine, profile *types.CandidateProfile, zlog *zap.Logger) error {
	var (
		history        types.Transcript
		sectionID      = catalog.Default().First().ID
		previousAnswer string
	)

	for {
		descriptor := engine.NextQuestion(ctx, interviewer.Request{
			SectionID:      sectionID,
			PreviousAnswer: previousAnswer,
			Profile:        profile,
			History:        history,
		})

		if descriptor.IsComplete {
			if descriptor.Question != "" {
				fmt.Printf("\n%s\n", descriptor.Question)
			}
			fmt.Println("\nThe interview is complete. Good luck out there!")
			zlog.Info("interview finished", zap.Int("questions", history.QuestionCount()+1))
			return nil
		}

		entry := descriptor.AsTranscriptEntry()
		entry.ID = uuid.NewString()
		entry.Timestamp = time.Now()
		history = append(history, entry)

		fmt.Printf("\n[%s] %s\n", descriptor.Section, descriptor.Question)

		answer, err := readAnswer()
		if err != nil {
			if errors.Is(err, errQuit) {
				zlog.Info("interview stopped", zap.String("reason", "quit requested"))
				return nil
			}
			return err
		}

		zlog.Debug("answer recorded",
			zap.String("section", descriptor.Section),
			zap.String("answer", logger.TruncateForLog(answer, answerLogLimit)),
		)

		history = append(history, types.TranscriptEntry{
			ID:        uuid.NewString(),
			Kind:      types.KindAnswer,
			Text:      answer,
			Section:   descriptor.Section,
			Timestamp: time.Now(),
		})

		sectionID = descriptor.Section
		previousAnswer = answer
	}
}

var errQuit = errors.New("quit requested")

func readAnswer() (string, error) {
	prompt := promptui.Prompt{
		Label: "Your answer",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("answer must not be empty")
			}
			return nil
		},
	}

	answer, err := prompt.Run()
	if err != nil {
		// Ctrl+C / Ctrl+D end the session like an explicit quit.
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errQuit
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, "quit") {
		return "", errQuit
	}

	return answer, nil
}

func loadProfile(path string) (*types.CandidateProfile, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	profile, err := schemas.ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return profile, nil
}
