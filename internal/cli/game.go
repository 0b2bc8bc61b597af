package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Start today's daily game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NewGame

			if err := client.Get("/daily_qb", &result); err != nil {
				return err
			}

			// Persist so later guess/reveal/hint commands find the session
			if err := cfg.SaveSession(result.SessionID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Start an unlimited game with a random player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NewGame

			if err := client.Get("/random_qb", &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.SessionID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <player name>",
		Short: "Submit a guess for the active session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			if cfg.SessionID == "" {
				return fmt.Errorf("no active session; start one with 'statdle daily' or 'statdle random'")
			}

			var result GuessResult

			body := map[string]string{
				"guess":      name,
				"session_id": cfg.SessionID,
			}
			if err := client.Post("/guess", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the answer and end the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.SessionID == "" {
				return fmt.Errorf("no active session; start one with 'statdle daily' or 'statdle random'")
			}

			var result RevealResult

			body := map[string]string{"session_id": cfg.SessionID}
			if err := client.Post("/reveal", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <seasons|teams|awards>",
		Short: "Reveal a hint for the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.SessionID == "" {
				return fmt.Errorf("no active session; start one with 'statdle daily' or 'statdle random'")
			}

			var result HintResult

			body := map[string]string{
				"session_id": cfg.SessionID,
				"hint":       args[0],
			}
			if err := client.Post("/hint", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
