package engine

import (
	"errors"
	"fmt"

	"github.com/tatianab/asciiliens/internal/models"
)

const (
	// ActionCost is taken from the score for every move or shot, even a
	// move that is blocked by the edge of the field.
	ActionCost = 1
	// AlienPoints is awarded per destroyed alien.
	AlienPoints = 250
)

var (
	ErrAlreadyOver   = errors.New("game is already over")
	ErrUnknownAction = errors.New("unknown action")
	ErrFormation     = errors.New("formation does not fit the board")
)

// TurnResult describes what a single call to ApplyTurn did.
type TurnResult struct {
	Turn       int
	Action     models.Action
	Moved      bool // false for fire and for moves blocked by the edge
	Fired      bool
	Destroyed  []models.Position
	Expired    int  // bullets that left the top of the field
	Reversed   bool // the swarm hit an edge, turned and descended
	ScoreDelta int
	Score      int
	Status     models.Status
}

// NewWorld builds the starting world: the player centred on the bottom row
// and the swarm laid out by the formation.
func NewWorld(bounds models.Bounds, f *models.Formation) (*models.World, error) {
	if bounds.Width < 1 || bounds.Height < 2 {
		return nil, fmt.Errorf("%w: board %dx%d is too small", ErrFormation, bounds.Width, bounds.Height)
	}

	w := &models.World{
		Bounds: bounds,
		Player: models.Player{
			Pos:   models.Position{X: bounds.Width / 2, Y: bounds.BottomRow()},
			Alive: true,
		},
		Direction: f.StartDirection(),
		Score:     models.InitialScore,
		Status:    models.InProgress,
	}

	seen := make(map[models.Position]bool)
	for _, s := range f.Spawns() {
		if !bounds.Contains(s.Pos) {
			return nil, fmt.Errorf("%w: alien at %v is outside %dx%d", ErrFormation, s.Pos, bounds.Width, bounds.Height)
		}
		if s.Pos.Y >= w.Player.Pos.Y {
			return nil, fmt.Errorf("%w: alien at %v starts on or below the player row", ErrFormation, s.Pos)
		}
		if seen[s.Pos] {
			return nil, fmt.Errorf("%w: two aliens share %v", ErrFormation, s.Pos)
		}
		seen[s.Pos] = true
		w.Aliens = append(w.Aliens, models.Alien{Pos: s.Pos, Alive: true, Glyph: s.Glyph})
	}
	if len(w.Aliens) == 0 {
		return nil, fmt.Errorf("%w: formation %q has no aliens", ErrFormation, f.Name)
	}

	return w, nil
}

// ApplyTurn advances the world by one turn for the given action.
//
// The order is fixed: the player acts, the action is paid for, bullets fly,
// the swarm marches, and only then are collisions and the outcome resolved.
// A finished world is left untouched and ErrAlreadyOver is returned.
func ApplyTurn(w *models.World, a models.Action) (TurnResult, error) {
	if w.Status.Over() {
		return TurnResult{Turn: w.Turn, Action: a, Score: w.Score, Status: w.Status}, ErrAlreadyOver
	}
	if !a.Valid() {
		return TurnResult{Turn: w.Turn, Action: a, Score: w.Score, Status: w.Status}, fmt.Errorf("%w: %v", ErrUnknownAction, a)
	}

	startScore := w.Score
	w.Turn++
	w.Explosions = nil
	res := TurnResult{Turn: w.Turn, Action: a}

	switch a {
	case models.MoveLeft:
		res.Moved = movePlayer(w, -1)
	case models.MoveRight:
		res.Moved = movePlayer(w, 1)
	case models.Fire:
		// Spawned in the player's cell; the advance below lifts it to the
		// row above the ship before anything can observe it.
		w.Bullets = append(w.Bullets, models.Bullet{Pos: w.Player.Pos})
		res.Fired = true
	}

	w.Score -= ActionCost

	res.Expired = advanceBullets(w)
	res.Reversed = advanceSwarm(w)

	res.Destroyed = resolveHits(w, res.Reversed)
	w.Score += AlienPoints * len(res.Destroyed)

	resolveOutcome(w)

	res.ScoreDelta = w.Score - startScore
	res.Score = w.Score
	res.Status = w.Status
	return res, nil
}

func movePlayer(w *models.World, dx int) bool {
	x := w.Bounds.ClampX(w.Player.Pos.X + dx)
	if x == w.Player.Pos.X {
		return false
	}
	w.Player.Pos.X = x
	return true
}

// resolveOutcome decides whether the turn ended the game.
func resolveOutcome(w *models.World) {
	if len(w.Aliens) == 0 {
		w.Status = models.Won
		return
	}
	for _, a := range w.Aliens {
		if a.Pos == w.Player.Pos {
			w.Player.Alive = false
			w.Status = models.Lost
		}
		if a.Pos.Y >= w.Player.Pos.Y || a.Pos.Y >= w.Bounds.BottomRow() {
			w.Status = models.Lost
		}
	}
}
