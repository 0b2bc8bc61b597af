package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "statdle",
		Short: "CLI tool for the Statdle guessing game API",
		Long: `statdle is a CLI tool for playing the football athlete guessing game.

Start a daily or unlimited game, submit guesses by player name, reveal
hints or the answer, and search the player catalog.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load active session from file if not provided via flag/env
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: STATDLE_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionID, "session", cfg.SessionID, "Session id (env: STATDLE_SESSION)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: STATDLE_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newGuessCmd())
	rootCmd.AddCommand(newRevealCmd())
	rootCmd.AddCommand(newHintCmd())
	rootCmd.AddCommand(newAutocompleteCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
