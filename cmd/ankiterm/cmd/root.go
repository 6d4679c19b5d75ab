// Package cmd wires flags, config, and backend discovery into the review
// program.
package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ankiterm/ankiterm/internal/anki"
	"github.com/ankiterm/ankiterm/internal/config"
	"github.com/ankiterm/ankiterm/internal/tui"
	"github.com/ankiterm/ankiterm/termgfx"
)

var (
	flagDeck     string
	flagConfig   string
	flagURL      string
	flagVerbose  bool
	flagNoImages bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDeck, "deck", "d", "", "Deck to review (skips the picker)")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&flagURL, "url", "u", "", "AnkiConnect endpoint URL")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&flagNoImages, "no-images", false, "Disable inline images")

	rootCmd.AddCommand(decksCmd)
}

var rootCmd = &cobra.Command{
	Use:          "ankiterm",
	Short:        "Review due Anki cards in your terminal",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("ankiterm needs an interactive terminal")
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		url := cfg.URL
		if flagURL != "" {
			url = flagURL
		}
		deck := cfg.Deck
		if flagDeck != "" {
			deck = flagDeck
		}

		client := anki.NewClient(url, logger)

		capability := termgfx.Detect()
		logger.Debug("terminal graphics", "capability", capability)

		mediaDir := ""
		if capability != termgfx.Unsupported {
			mediaDir = anki.MediaDir(cmd.Context(), client, cfg.MediaDir)
			if mediaDir == "" {
				logger.Debug("no media directory found; images disabled")
			}
		}

		showImages := cfg.ShowImages() && !flagNoImages

		model := tui.New(client, logger, tui.Options{
			Deck:       deck,
			MediaDir:   mediaDir,
			Capability: capability,
			MaxCells:   cfg.MaxCells,
			ShowImages: showImages,
		})

		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
