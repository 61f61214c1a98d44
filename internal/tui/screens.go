package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleLines = []string{
		"ASCII + Aliens = ASCIIliens",
		"-- The ASCII invasion begins! --",
	}

	instructions = []string{
		"Steer your ship (A) with the LEFT and RIGHT arrow keys.",
		"Press SPACE to fire (|).",
		"Every move or shot advances the invasion by one turn.",
		"You cannot move and fire in the same turn. Choose well.",
	}

	scoring = []string{
		"Scoring:",
		"You start with 100 points.",
		"-1 point for every move or shot.",
		"+250 points for every alien destroyed.",
	}

	taunts = []string{
		"The terminal needs you, cadet. Step up!",
		"Afraid of a few characters?",
		"Your monospaced courage is lacking. Try again.",
		"Every column is counting on you.",
		"Heroes do not hesitate. Are you a hero?",
	}
)

const (
	readyPrompt     = "Ready? [Y/n]"
	playAgainPrompt = "Play again? [Y/n]"
)

func (m model) introView() string {
	s := m.styles

	title := s.Border.
		BorderStyle(lipgloss.DoubleBorder()).
		Padding(0, 4).
		Align(lipgloss.Center).
		Render(s.Title.Render(strings.Join(titleLines, "\n")))

	parts := []string{
		title,
		"",
		strings.Join(instructions, "\n"),
		"",
		strings.Join(scoring, "\n"),
		"",
	}
	if m.taunt >= 0 {
		parts = append(parts, s.Taunt.Render(taunts[m.taunt%len(taunts)]), "")
	}
	parts = append(parts, readyPrompt)

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
