package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/podscribe-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podscribe-api",
	Short: "Podcast transcription editing API server",
	Long: `Podscribe API - a backend for collaborative podcast transcription editing

Transcriptions are imported per episode as speaker-attributed parts, split
into sections and timed words. Editors correct words, hide filler, and
repartition sections across parts; derived text and the full-text search
index stay consistent with every edit.

Features:
  • Bulk transcription import per episode
  • Word-level edits with automatic text reconstruction
  • Section reflow across neighboring parts
  • Full-text search over part text
  • Role-gated access (reader, contributor, admin)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help never need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
