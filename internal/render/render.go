// Package render turns a World into a fixed-size character frame.
package render

import (
	"strings"

	"github.com/tatianab/asciiliens/internal/models"
)

const (
	PlayerGlyph    = 'A'
	BulletGlyph    = '|'
	ExplosionGlyph = '*'
	BlankGlyph     = ' '
)

// Kind says what occupies a cell.
type Kind int

const (
	Empty Kind = iota
	Explosion
	Alien
	Bullet
	Ship
)

// Cell is one character of the frame.
type Cell struct {
	Glyph rune
	Kind  Kind
}

// Frame is a Height x Width grid of cells, row-major.
type Frame struct {
	Width, Height int
	Cells         [][]Cell
}

// Render draws w without modifying it. Later layers win when entities share a
// cell: explosions, then aliens, then bullets, then the player.
func Render(w *models.World) Frame {
	f := blank(w.Bounds)

	for _, p := range w.Explosions {
		f.set(p, Cell{Glyph: ExplosionGlyph, Kind: Explosion})
	}
	for _, a := range w.Aliens {
		if !a.Alive {
			continue
		}
		glyph := a.Glyph
		if glyph == 0 {
			glyph = models.DefaultGlyph
		}
		f.set(a.Pos, Cell{Glyph: glyph, Kind: Alien})
	}
	for _, b := range w.Bullets {
		f.set(b.Pos, Cell{Glyph: BulletGlyph, Kind: Bullet})
	}
	if w.Player.Alive {
		f.set(w.Player.Pos, Cell{Glyph: PlayerGlyph, Kind: Ship})
	} else {
		f.set(w.Player.Pos, Cell{Glyph: ExplosionGlyph, Kind: Explosion})
	}
	return f
}

func blank(b models.Bounds) Frame {
	f := Frame{Width: b.Width, Height: b.Height, Cells: make([][]Cell, b.Height)}
	for y := range f.Cells {
		row := make([]Cell, b.Width)
		for x := range row {
			row[x] = Cell{Glyph: BlankGlyph}
		}
		f.Cells[y] = row
	}
	return f
}

// set ignores cells outside the frame.
func (f Frame) set(p models.Position, c Cell) {
	if p.Y < 0 || p.Y >= f.Height || p.X < 0 || p.X >= f.Width {
		return
	}
	f.Cells[p.Y][p.X] = c
}

// At returns the cell at (x, y).
func (f Frame) At(x, y int) Cell {
	return f.Cells[y][x]
}

// Lines returns each row as plain text.
func (f Frame) Lines() []string {
	lines := make([]string, f.Height)
	for y, row := range f.Cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Glyph)
		}
		lines[y] = b.String()
	}
	return lines
}

func (f Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}
