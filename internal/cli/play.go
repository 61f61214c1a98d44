package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tatianab/asciiliens/internal/config"
	"github.com/tatianab/asciiliens/internal/console"
	"github.com/tatianab/asciiliens/internal/engine"
	"github.com/tatianab/asciiliens/internal/models"
	"github.com/tatianab/asciiliens/internal/render"
	"github.com/tatianab/asciiliens/internal/tui"
)

// NewPlayCommand creates the play command
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Start an interactive game in the current terminal.

Controls: LEFT/RIGHT move the ship, SPACE fires, q or Esc quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}
}

func runPlay(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "asciiliens")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	formation, err := engine.LoadFormation(cfg.Formation)
	if err != nil {
		return fmt.Errorf("failed to load formation: %w", err)
	}
	if _, err := newWorld(cfg, formation); err != nil {
		return err
	}

	minWidth, minHeight := cfg.TerminalSize()
	con, err := console.Acquire(os.Stdin, console.Requirements{
		MinWidth:  minWidth,
		MinHeight: minHeight,
	})
	if err != nil {
		return err
	}
	defer con.Release()

	progOpts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	results, err := tui.Run(tui.Options{
		Bounds:    boardBounds(cfg),
		Formation: formation,
		Styles:    render.NewStyles(cfg.Color),
	}, progOpts...)
	if relErr := con.Release(); relErr != nil && err == nil {
		err = relErr
	}
	if err != nil {
		return err
	}

	printResults(cmd.OutOrStdout(), results)
	return nil
}

func boardBounds(cfg *config.Config) models.Bounds {
	return models.Bounds{Width: cfg.Width, Height: cfg.Height}
}

// newWorld builds the starting world for the configured board, naming the
// config keys when the formation does not fit.
func newWorld(cfg *config.Config, f *models.Formation) (*models.World, error) {
	w, err := engine.NewWorld(boardBounds(cfg), f)
	if err != nil {
		return nil, fmt.Errorf("formation %q does not fit the configured board (width=%d, height=%d): %w",
			f.Name, cfg.Width, cfg.Height, err)
	}
	return w, nil
}

func printResults(out io.Writer, results []tui.Result) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No game played. The invasion waits.")
		return
	}
	for i, r := range results {
		outcome := r.Status.String()
		if r.Quit {
			outcome = "QUIT"
		}
		fmt.Fprintf(out, "Game %d: %s after %d turns. Final score: %d\n", i+1, outcome, r.Turns, r.Score)
	}
}
