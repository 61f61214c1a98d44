package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/asciiliens/internal/models"
)

// Styles colours the frame and the text around it.
type Styles struct {
	Kinds  map[Kind]lipgloss.Style
	Border lipgloss.Style
	Status lipgloss.Style
	Win    lipgloss.Style
	Lose   lipgloss.Style
	Quit   lipgloss.Style
	Title  lipgloss.Style
	Help   lipgloss.Style
	Taunt  lipgloss.Style
}

// NewStyles returns the game palette, or unstyled output when color is false.
func NewStyles(color bool) Styles {
	plain := lipgloss.NewStyle()
	if !color {
		return Styles{
			Kinds:  map[Kind]lipgloss.Style{},
			Border: plain.Border(lipgloss.NormalBorder()),
			Status: plain,
			Win:    plain.Bold(true),
			Lose:   plain.Bold(true),
			Quit:   plain.Bold(true),
			Title:  plain.Bold(true),
			Help:   plain,
			Taunt:  plain,
		}
	}

	return Styles{
		Kinds: map[Kind]lipgloss.Style{
			Ship:      lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7FF")).Bold(true),
			Bullet:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
			Alien:     lipgloss.NewStyle().Foreground(lipgloss.Color("#87D75F")),
			Explosion: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
		},
		Border: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87D75F")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true),
		Quit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
		Taunt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Italic(true),
	}
}

// Frame renders f with a border, colouring runs of cells of the same kind
// together.
func (s Styles) Frame(f Frame) string {
	lines := make([]string, f.Height)
	for y, row := range f.Cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Kind == row[start].Kind {
				continue
			}
			b.WriteString(s.cells(row[start:x]))
			start = x
		}
		lines[y] = b.String()
	}
	return s.Border.Render(strings.Join(lines, "\n"))
}

func (s Styles) cells(run []Cell) string {
	if len(run) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range run {
		b.WriteRune(c.Glyph)
	}
	style, ok := s.Kinds[run[0].Kind]
	if !ok {
		return b.String()
	}
	return style.Render(b.String())
}

// StatusLine is the score and progress shown under the field.
func (s Styles) StatusLine(w *models.World) string {
	return s.Status.Render(StatusText(w))
}

// StatusText is StatusLine without styling.
func StatusText(w *models.World) string {
	return fmt.Sprintf("Score: %d  Turn: %d  Aliens: %d", w.Score, w.Turn, w.AlienCount())
}

// Banner is the outcome shown on the final frame. quit marks a session the
// player abandoned.
func (s Styles) Banner(w *models.World, quit bool) string {
	text := BannerText(w, quit)
	switch {
	case w.Status == models.Won:
		return s.Win.Render(text)
	case w.Status == models.Lost:
		return s.Lose.Render(text)
	default:
		return s.Quit.Render(text)
	}
}

// BannerText is Banner without styling.
func BannerText(w *models.World, quit bool) string {
	var outcome string
	switch {
	case w.Status == models.Won:
		outcome = "YOU WON! The invasion is repelled."
	case w.Status == models.Lost:
		outcome = "YOU LOST. The invasion overwhelmed us."
	case quit:
		outcome = "QUIT. The invasion continues without you."
	default:
		outcome = "PLAYING"
	}
	return fmt.Sprintf("%s  Final score: %d", outcome, w.Score)
}
