// Package main provides the entry point for the interview coach CLI.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/interview-coach/internal/config"
)

const app = "interview_agent"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Adaptive mock interview coach",
		Long:  "interview_agent runs an adaptive mock interview: it walks a fixed section plan, analyzes each answer, and generates follow-up or topic questions through a chain of generation providers with graceful degradation to canned questions.",
	}
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+app+".yaml in the current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json-log", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json-log", rootCmd.PersistentFlags().Lookup("json-log"))

	// API keys come from the environment unless set in the config file.
	bindEnv("gemini.api-key", "GEMINI_API_KEY")
	bindEnv("groq.api-key", "GROQ_API_KEY")
	bindEnv("openrouter.api-key", "OPENROUTER_API_KEY")
	bindEnv("gemini.model", "GEMINI_MODEL")
	bindEnv("groq.model", "GROQ_MODEL")
	bindEnv("openrouter.model", "OPENROUTER_MODEL")
}

func bindEnv(key, env string) {
	if err := viper.BindEnv(key, env); err != nil {
		log.Fatalf("binding %s environment variable: %v", env, err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional; flags and environment variables are
	// enough to run.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && (errors.As(err, &notFound) || os.IsNotExist(err)) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*config.Config, error) {
	cfg := config.Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
