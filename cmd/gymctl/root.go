package main

import (
	"alcyxob/gym-coach/internal/config"
	"alcyxob/gym-coach/internal/generator"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "gymctl",
	Short:         "gymctl inspects goal profiles and runs the coaching core in-process",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Directory holding config.yaml (goal rules)")
}

// loadGenerator builds the generator from --config, or the built-in rules without it.
func loadGenerator() (*generator.Generator, error) {
	if configDir == "" {
		return generator.Default(), nil
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return generator.New(cfg.GoalRules())
}
