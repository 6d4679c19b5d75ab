package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ankiterm/ankiterm/internal/anki"
	"github.com/ankiterm/ankiterm/internal/config"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks and their due card counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		url := cfg.URL
		if flagURL != "" {
			url = flagURL
		}
		client := anki.NewClient(url, logger)

		names, err := client.DeckNames(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, name := range names {
			ids, err := client.FindDueCards(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%d due\n", name, len(ids))
		}
		return w.Flush()
	},
}
