package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tatianab/asciiliens/internal/config"
	"github.com/tatianab/asciiliens/internal/engine"
	"github.com/tatianab/asciiliens/internal/models"
)

const defaultMaxTurns = 5000

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		script    string
		maxTurns  int
		formation string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a game without a terminal and print the transcript",
		Long: `Run a game headlessly and print a YAML transcript of every turn.

Without --script the autopilot plays. A script is a string of actions:
L (left), R (right) and F (fire), optionally separated by spaces or commas.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if formation == "" {
				formation = cfg.Formation
			}

			var actions []models.Action
			if script != "" {
				actions, err = models.ParseScript(script)
				if err != nil {
					return err
				}
			}

			f, err := engine.LoadFormation(formation)
			if err != nil {
				return fmt.Errorf("failed to load formation: %w", err)
			}
			w, err := newWorld(cfg, f)
			if err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), "simulate: ", log.LstdFlags)
			t, err := simulate(w, f.Name, actions, maxTurns, logger)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := t.Save(outPath); err != nil {
					return fmt.Errorf("failed to save transcript: %w", err)
				}
				logger.Printf("transcript written to %s", outPath)
				return nil
			}
			data, err := t.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&script, "script", "", "Actions to play, e.g. FFRRLF (default: autopilot)")
	cmd.Flags().IntVar(&maxTurns, "turns", defaultMaxTurns, "Stop after this many turns")
	cmd.Flags().StringVar(&formation, "formation", "", "Built-in formation name or formation file")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the transcript to a file instead of stdout")

	return cmd
}

// simulate plays w to the end, through the scripted actions when given or the
// autopilot otherwise, stopping early after maxTurns.
func simulate(w *models.World, formation string, actions []models.Action, maxTurns int, logger *log.Logger) (*models.Transcript, error) {
	t := &models.Transcript{
		Formation: formation,
		Bounds:    w.Bounds,
	}

	for turn := 0; turn < maxTurns && !w.Status.Over(); turn++ {
		var a models.Action
		if actions != nil {
			if turn >= len(actions) {
				break
			}
			a = actions[turn]
		} else {
			a = engine.NextAction(w)
		}

		res, err := engine.ApplyTurn(w, a)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", w.Turn+1, err)
		}
		t.Entries = append(t.Entries, models.TurnRecord{
			Turn:      res.Turn,
			Action:    a.String(),
			Player:    w.Player.Pos,
			Destroyed: res.Destroyed,
			Reversed:  res.Reversed,
			Aliens:    w.AlienCount(),
			Bullets:   len(w.Bullets),
			Score:     res.Score,
			Status:    res.Status,
		})
		if len(res.Destroyed) > 0 {
			logger.Printf("turn %d: destroyed %v", res.Turn, res.Destroyed)
		}
	}

	t.Score = w.Score
	t.Status = w.Status
	logger.Printf("%s after %d turns, score %d", w.Status, w.Turn, w.Score)
	return t, nil
}
