// Package main provides the resume_timeline CLI: the HTTP server plus
// commands for inspecting, exporting and publishing the resume document.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-timeline/internal/config"
	"github.com/jonathan/resume-timeline/internal/logger"
	"github.com/jonathan/resume-timeline/internal/resume"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configFile string
	sourceFlag string
	logLevel   string
	logFormat  string
	verbose    bool

	// cfg is the resolved configuration, set before any sub-command runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:               "resume_timeline",
	Short:             "Resume Timeline server and tools",
	Long:              "Resume Timeline serves a single resume document as an HTML page with sorted employment and education timelines, and exports it as JSON, LaTeX or PDF.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "Resume file path or URL (overrides config and RESUME_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or pretty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level debug")
}

// loadConfig resolves configuration from file, environment and flags, in
// increasing order of precedence, and initializes the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded := &config.Config{}
	if configFile != "" {
		c, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		loaded = c
	}
	loaded.ApplyEnv()

	merged := loaded.MergeWithDefaults(config.Defaults())
	if sourceFlag != "" {
		merged.Source = sourceFlag
	}
	if logLevel != "" {
		merged.LogLevel = logLevel
	}
	if verbose {
		merged.LogLevel = "debug"
	}
	if logFormat != "" {
		merged.LogFormat = logFormat
	}

	if err := merged.Validate(); err != nil {
		return err
	}

	logger.Init(logger.Config{
		Level:  merged.LogLevel,
		Format: merged.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	cfg = merged
	return nil
}

// newStore builds the cached document store for the configured source.
func newStore() (*resume.Store, error) {
	source, err := resume.NewSource(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure resume source: %w", err)
	}
	return resume.NewStore(source, resume.DefaultLoadTimeout), nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
