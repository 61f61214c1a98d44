package engine

import "github.com/tatianab/asciiliens/internal/models"

// NextAction picks a move for a headless player. It fires when a bullet
// leaving now would meet an alien on its current sweep, and otherwise walks
// towards the column where the lowest alien will be by the time a bullet could
// reach it. Swarm reversals are not predicted.
func NextAction(w *models.World) models.Action {
	px, py := w.Player.Pos.X, w.Player.Pos.Y

	for _, a := range w.Aliens {
		if interceptColumn(w, a) == px && a.Pos.Y < py {
			return models.Fire
		}
	}

	target, ok := lowestAlien(w)
	if !ok {
		return models.Fire
	}
	aim := w.Bounds.ClampX(interceptColumn(w, target))
	switch {
	case aim < px:
		return models.MoveLeft
	case aim > px:
		return models.MoveRight
	default:
		return models.Fire
	}
}

// interceptColumn is where a reaches its row when a bullet fired this turn
// gets there, assuming the swarm keeps its direction.
func interceptColumn(w *models.World, a models.Alien) int {
	turns := w.Player.Pos.Y - a.Pos.Y
	return a.Pos.X + w.Direction*turns
}

// lowestAlien returns the alien closest to the player's row. Ties go to the
// one nearest the player's column, then to the leftmost.
func lowestAlien(w *models.World) (models.Alien, bool) {
	var best models.Alien
	found := false
	px := w.Player.Pos.X
	for _, a := range w.Aliens {
		if !found {
			best, found = a, true
			continue
		}
		switch {
		case a.Pos.Y > best.Pos.Y:
			best = a
		case a.Pos.Y == best.Pos.Y:
			da, db := abs(a.Pos.X-px), abs(best.Pos.X-px)
			if da < db || (da == db && a.Pos.X < best.Pos.X) {
				best = a
			}
		}
	}
	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
