package engine

import "github.com/tatianab/asciiliens/internal/models"

// advanceSwarm marches every alien one column in the sweep direction. When
// any alien would leave the field the whole swarm turns around and drops one
// row instead. It reports whether the swarm dropped.
func advanceSwarm(w *models.World) bool {
	if len(w.Aliens) == 0 {
		return false
	}
	if w.Direction == 0 {
		w.Direction = 1
	}

	dx := w.Direction
	for _, a := range w.Aliens {
		if !w.Bounds.Contains(a.Pos.Add(dx, 0)) {
			w.Direction = -dx
			for i := range w.Aliens {
				w.Aliens[i].Pos.Y++
			}
			return true
		}
	}

	for i := range w.Aliens {
		w.Aliens[i].Pos.X += dx
	}
	return false
}
