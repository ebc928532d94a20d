package engine

import "wolfcore/model"

// SortGameObjects refreshes each object's player-relative position and distance
// and orders them farthest first, so sprites paint back to front.
func SortGameObjects(game model.GameState, _ float64) model.GameState {
	n := len(game.GameObjects)
	if n == 0 {
		return game
	}
	order := make([]int, n)
	dist := make([]float64, n)
	updated := make([]model.GameObject, n)
	for i, obj := range game.GameObjects {
		p := obj.Common()
		p.PlayerRelativePosition = p.Position.Sub(game.Camera.Position)
		p.UnsquaredDistanceFromPlayer = game.Camera.Position.UnsquaredDistanceFrom(p.Position)
		updated[i] = obj.WithCommon(p)
		order[i] = i
		dist[i] = p.UnsquaredDistanceFromPlayer
	}
	combSort(order, dist, n)

	sorted := make([]model.GameObject, n)
	for i, idx := range order {
		sorted[i] = updated[idx]
	}
	return game.WithGameObjects(sorted)
}

// combSort orders by descending dist, permuting order alongside.
func combSort(order []int, dist []float64, amount int) {
	gap := amount
	swapped := false
	for gap > 1 || swapped {
		gap = (gap * 10) / 13
		if gap == 9 || gap == 10 {
			gap = 11
		}
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i < amount-gap; i++ {
			j := i + gap
			if dist[i] < dist[j] {
				dist[i], dist[j] = dist[j], dist[i]
				order[i], order[j] = order[j], order[i]
				swapped = true
			}
		}
	}
}
