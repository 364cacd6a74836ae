package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/logger"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check which generation providers are reachable",
	Long:  "Sends a minimal request to every configured provider concurrently and reports which ones respond. Useful before a session to know how much of the fallback chain is live.",
	RunE:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(_ *cobra.Command, _ []string) error {
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

	clients, err := llm.NewClients(ctx, cfg.LLMConfig())
	if err != nil {
		return fmt.Errorf("building provider clients: %w", err)
	}

	chain := llm.NewChain(clients, cfg.Timeout, zlog)
	defer chain.Close()

	if chain.Len() == 0 {
		return fmt.Errorf("no providers configured: set GEMINI_API_KEY, GROQ_API_KEY or OPENROUTER_API_KEY")
	}

	healthy := 0
	for _, result := range chain.Probe(ctx) {
		if result.Err != nil {
			zlog.Warn("provider unavailable", zap.String("provider", result.Provider), zap.Error(result.Err))
			fmt.Printf("%-12s unavailable: %v\n", result.Provider, result.Err)
			continue
		}
		healthy++
		fmt.Printf("%-12s ok\n", result.Provider)
	}

	if healthy == 0 {
		return fmt.Errorf("all %d configured providers failed the probe", chain.Len())
	}

	fmt.Printf("\n%d/%d providers healthy\n", healthy, chain.Len())
	return nil
}
