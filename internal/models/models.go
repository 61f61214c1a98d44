package models

import (
	"fmt"
	"strings"
)

// InitialScore is the score a new World starts with.
const InitialScore = 100

// Position is a cell on the board. X is the column, Y the row (0 is the top).
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add returns p shifted by dx columns and dy rows.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds is the size of the playable field in columns and rows.
type Bounds struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Contains reports whether p lies inside the field.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// ClampX pins a column to [0, Width-1].
func (b Bounds) ClampX(x int) int {
	if x < 0 {
		return 0
	}
	if x > b.Width-1 {
		return b.Width - 1
	}
	return x
}

// BottomRow is the last row of the field.
func (b Bounds) BottomRow() int {
	return b.Height - 1
}

// Action is one player input that consumes a turn.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	Fire
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Fire:
		return "fire"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a >= MoveLeft && a <= Fire
}

// ParseAction accepts the long names ("left", "right", "fire") and the
// single letter shorthands used by scripts ("L", "R", "F").
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return MoveLeft, nil
	case "right", "r":
		return MoveRight, nil
	case "fire", "f", "space":
		return Fire, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// ParseScript turns a compact script such as "RRFLF" into actions.
// Whitespace and commas between letters are ignored.
func ParseScript(script string) ([]Action, error) {
	var actions []Action
	for _, r := range script {
		if r == ' ' || r == ',' || r == '\n' || r == '\t' {
			continue
		}
		a, err := ParseAction(string(r))
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Status is the tri-state outcome of a session.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "PLAYING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalYAML writes the status by name so transcripts stay readable.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Over reports whether the session reached a terminal state.
func (s Status) Over() bool {
	return s != InProgress
}

// Player is the ship. It always sits on the bottom row.
type Player struct {
	Pos   Position
	Alive bool
}

// Bullet is a projectile travelling up one row per turn.
type Bullet struct {
	Pos Position
}

// Alien is one member of the swarm.
type Alien struct {
	Pos   Position
	Alive bool
	Glyph rune // taken from the formation row
}

// World is the whole mutable state of one game session.
type World struct {
	Bounds     Bounds
	Player     Player
	Bullets    []Bullet   // firing order
	Aliens     []Alien    // live aliens only
	Explosions []Position // aliens destroyed during the last turn
	Direction  int        // +1 sweeping right, -1 sweeping left
	Score      int
	Status     Status
	Turn       int
}

// IsAlive reports whether the given entity is still in play. It accepts a
// Player or an Alien, by value or pointer; anything else is never alive.
// Aliens are matched by cell: a copy is alive while a live alien occupies
// its position, so a copy taken before the swarm moved must be re-read
// through AlienAt.
func (w *World) IsAlive(entity interface{}) bool {
	switch e := entity.(type) {
	case *Player:
		return e != nil && e.Alive
	case Player:
		return e.Alive
	case *Alien:
		return e != nil && w.IsAlive(*e)
	case Alien:
		if !e.Alive {
			return false
		}
		_, ok := w.AlienAt(e.Pos)
		return ok
	default:
		return false
	}
}

// AlienCount is the number of live aliens.
func (w *World) AlienCount() int {
	n := 0
	for _, a := range w.Aliens {
		if a.Alive {
			n++
		}
	}
	return n
}

// AlienAt returns the live alien occupying p, if any.
func (w *World) AlienAt(p Position) (*Alien, bool) {
	if !w.Bounds.Contains(p) {
		return nil, false
	}
	for i := range w.Aliens {
		if w.Aliens[i].Alive && w.Aliens[i].Pos == p {
			return &w.Aliens[i], true
		}
	}
	return nil, false
}

// BulletAt reports whether a bullet occupies p.
func (w *World) BulletAt(p Position) bool {
	if !w.Bounds.Contains(p) {
		return false
	}
	for _, b := range w.Bullets {
		if b.Pos == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, used to compare a world before and after a turn.
func (w *World) Clone() *World {
	c := *w
	c.Bullets = append([]Bullet(nil), w.Bullets...)
	c.Aliens = append([]Alien(nil), w.Aliens...)
	c.Explosions = append([]Position(nil), w.Explosions...)
	return &c
}
