package engine

import "github.com/tatianab/asciiliens/internal/models"

// advanceBullets moves every bullet up one row and drops those that leave the
// top of the field. It returns how many were dropped.
func advanceBullets(w *models.World) int {
	kept := w.Bullets[:0]
	expired := 0
	for _, b := range w.Bullets {
		b.Pos.Y--
		if b.Pos.Y < 0 {
			expired++
			continue
		}
		kept = append(kept, b)
	}
	w.Bullets = kept
	return expired
}

// resolveHits removes every alien that shares a cell with a bullet, together
// with all bullets involved. When the swarm dropped this turn, a bullet and an
// alien that traded places (the bullet rose into the alien's old cell while the
// alien fell into the bullet's) also count as a hit. Destroyed aliens are
// recorded as explosions for this turn.
func resolveHits(w *models.World, dropped bool) []models.Position {
	if len(w.Bullets) == 0 || len(w.Aliens) == 0 {
		return nil
	}

	cells := make(map[models.Position]int, len(w.Aliens))
	for i, a := range w.Aliens {
		if a.Alive {
			cells[a.Pos] = i
		}
	}

	hit := make(map[int]bool)
	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		i, ok := cells[b.Pos]
		if !ok && dropped {
			i, ok = cells[b.Pos.Add(0, 1)]
		}
		if ok {
			hit[i] = true
			continue
		}
		bullets = append(bullets, b)
	}
	w.Bullets = bullets

	if len(hit) == 0 {
		return nil
	}

	var destroyed []models.Position
	aliens := w.Aliens[:0]
	for i, a := range w.Aliens {
		if hit[i] {
			a.Alive = false
			destroyed = append(destroyed, a.Pos)
			continue
		}
		aliens = append(aliens, a)
	}
	w.Aliens = aliens
	w.Explosions = append(w.Explosions, destroyed...)
	return destroyed
}
