package level

import "wolfcore/model"

// NewGameState assembles the first snapshot of a level. The map and area grid
// are shared with lvl; doors and objects are copied.
func NewGameState(lvl Level, objects []model.GameObject, player model.Player, index int) model.GameState {
	composite := make([]model.CompositeArea, lvl.NumberOfAreas)
	for i := range composite {
		composite[i] = model.NewCompositeArea(i)
	}
	return model.GameState{
		Level:          index,
		Map:            lvl.Map,
		Areas:          lvl.Areas,
		CompositeAreas: composite,
		GameObjects:    append([]model.GameObject(nil), objects...),
		Player:         player,
		Camera:         lvl.StartingPose,
		Doors:          model.CloneDoors(lvl.Doors),
	}
}
