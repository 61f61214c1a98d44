package cli

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/asciiliens/internal/config"
	"github.com/tatianab/asciiliens/internal/engine"
	"github.com/tatianab/asciiliens/internal/models"
	"github.com/tatianab/asciiliens/internal/tui"
	"gopkg.in/yaml.v3"
)

// One alien at (3,7) sweeping right on a 10x10 board. Two shots from the
// centre column bring it down on the second turn.
const loneFormation = `name: lone
direction: right
columns:
  start: 3
  count: 1
  spacing: 1
rows:
  - y: 7
`

func setupSim(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("ASCIILIENS_WIDTH", "10")
	t.Setenv("ASCIILIENS_HEIGHT", "10")

	path := filepath.Join(dir, "lone.yaml")
	require.NoError(t, os.WriteFile(path, []byte(loneFormation), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimulateScript(t *testing.T) {
	formation := setupSim(t)

	out, err := execute(t, "simulate", "--formation", formation, "--script", "F, F, F")
	require.NoError(t, err)

	var tr struct {
		Formation string `yaml:"formation"`
		Entries   []struct {
			Turn      int               `yaml:"turn"`
			Action    string            `yaml:"action"`
			Destroyed []models.Position `yaml:"destroyed"`
			Score     int               `yaml:"score"`
		} `yaml:"entries"`
		Score  int    `yaml:"score"`
		Status string `yaml:"status"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &tr))

	assert.Equal(t, "lone", tr.Formation)
	assert.Equal(t, "WON", tr.Status)
	assert.Equal(t, 348, tr.Score)
	require.Len(t, tr.Entries, 2, "the third shot comes after the game is won")
	assert.Equal(t, "fire", tr.Entries[0].Action)
	assert.Equal(t, 99, tr.Entries[0].Score)
	assert.Equal(t, []models.Position{{X: 5, Y: 7}}, tr.Entries[1].Destroyed)
}

func TestSimulateToFile(t *testing.T) {
	formation := setupSim(t)
	target := filepath.Join(t.TempDir(), "runs", "lone.yaml")

	out, err := execute(t, "simulate", "--formation", formation, "--script", "FF", "--out", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "status: WON")
}

func TestSimulateTurnLimit(t *testing.T) {
	formation := setupSim(t)

	out, err := execute(t, "simulate", "--formation", formation, "--script", "LLLL", "--turns", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "status: PLAYING")
	assert.Contains(t, out, "score: 98")
}

func TestSimulateBadScript(t *testing.T) {
	formation := setupSim(t)

	_, err := execute(t, "simulate", "--formation", formation, "--script", "FX")
	assert.ErrorContains(t, err, "unknown action")
}

func TestSimulateBadFormation(t *testing.T) {
	setupSim(t)

	_, err := execute(t, "simulate", "--formation", "nowhere.yaml")
	assert.ErrorContains(t, err, "failed to load formation")
}

func TestSimulateFormationTooWide(t *testing.T) {
	setupSim(t)

	// classic needs at least 65 columns and 11 rows
	_, err := execute(t, "simulate", "--formation", "classic")
	assert.ErrorIs(t, err, engine.ErrFormation)
	assert.ErrorContains(t, err, `formation "classic" does not fit the configured board (width=10, height=10)`)
}

func TestSimulateAutopilot(t *testing.T) {
	f, err := engine.LoadFormation(engine.DefaultFormation)
	require.NoError(t, err)
	w, err := engine.NewWorld(models.Bounds{Width: 80, Height: 24}, f)
	require.NoError(t, err)

	tr, err := simulate(w, f.Name, nil, defaultMaxTurns, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	assert.True(t, tr.Status.Over())
	assert.Equal(t, w.Turn, len(tr.Entries))
	assert.Equal(t, w.Score, tr.Score)
	last := tr.Entries[len(tr.Entries)-1]
	assert.Equal(t, tr.Status, last.Status)
}

func TestNewWorldNamesConfigKeys(t *testing.T) {
	f, err := engine.LoadFormation("classic")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Width, cfg.Height = 64, 24
	_, err = newWorld(cfg, f)
	assert.ErrorIs(t, err, engine.ErrFormation)
	assert.ErrorContains(t, err, "width=64, height=24")

	_, err = newWorld(config.Default(), f)
	assert.NoError(t, err)
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, nil)
	assert.Equal(t, "No game played. The invasion waits.\n", buf.String())

	buf.Reset()
	printResults(&buf, []tui.Result{
		{Status: models.Won, Score: 349, Turns: 1},
		{Status: models.InProgress, Score: 97, Turns: 3, Quit: true},
	})
	assert.Equal(t,
		"Game 1: WON after 1 turns. Final score: 349\n"+
			"Game 2: QUIT after 3 turns. Final score: 97\n",
		buf.String())
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
