package cli

import (
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newAutocompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autocomplete <query>",
		Short: "Search the player catalog by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			var result AutocompleteResult

			path := "/autocomplete?q=" + url.QueryEscape(query)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
