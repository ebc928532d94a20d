package engine

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/sirupsen/logrus"

	"wolfcore/config"
	"wolfcore/logger"
	"wolfcore/model"
)

// UpdateFunc is one stage of the frame update.
type UpdateFunc func(game model.GameState, deltaMs float64) model.GameState

// Pipeline runs the stages in order, each seeing the previous stage's result.
type Pipeline []UpdateFunc

func (p Pipeline) Run(game model.GameState, deltaMs float64) model.GameState {
	for _, stage := range p {
		game = stage(game, deltaMs)
	}
	return game
}

// NewPipeline builds the frame update. walls is the wall pass of the frame
// being replaced; the action stage uses it to find the door ahead.
func NewPipeline(cfg config.Config, walls WallRenderingResult) Pipeline {
	return Pipeline{
		Movement(cfg.Movement),
		Rotation(cfg.Movement),
		Action(cfg, walls),
		DoorTimers(cfg.Timing),
		EnemyAnimation,
		Weapons(cfg.Timing),
		OverlayAnimation,
		SortGameObjects,
	}
}

// Update produces the next frame's state. The input state is not modified.
func Update(cfg config.Config, game model.GameState, walls WallRenderingResult, deltaMs float64) model.GameState {
	return NewPipeline(cfg, walls).Run(game, deltaMs)
}

// -- movement

// Movement moves along the pre-rotation facing. Backward runs at half speed.
func Movement(cfg config.Movement) UpdateFunc {
	return func(game model.GameState, deltaMs float64) model.GameState {
		speed := cfg.MovementSpeed * deltaMs / 1000.0
		dir := game.Camera.Direction
		right := dir.CrossProduct()
		controls := game.ControlState

		delta := model.Zero
		if controls.Has(model.Forward) {
			delta = delta.Add(dir.Scale(speed))
		}
		if controls.Has(model.Backward) {
			delta = delta.Sub(dir.Scale(speed / 2.0))
		}
		if controls.Has(model.StrafingLeft) {
			delta = delta.Sub(right.Scale(speed))
		}
		if controls.Has(model.StrafingRight) {
			delta = delta.Add(right.Scale(speed))
		}
		if delta == model.Zero {
			return game
		}

		game.Camera.Position = MoveWithSliding(game, game.Camera.Position, delta, game.Player.Radius)
		return game
	}
}

// MoveWithSliding applies delta one axis at a time. Each axis is probed a radius
// ahead in the direction of travel; a blocked axis keeps its coordinate while the
// other still moves.
func MoveWithSliding(game model.GameState, from, delta model.Vector2D, radius float64) model.Vector2D {
	to := from
	if delta.X != 0 {
		probe := model.Vec(from.X+delta.X+math.Copysign(radius, delta.X), from.Y)
		if CanPlayerTraverse(game, probe.ToMap()) {
			to.X = from.X + delta.X
		}
	}
	if delta.Y != 0 {
		probe := model.Vec(from.X, from.Y+delta.Y+math.Copysign(radius, delta.Y))
		if CanPlayerTraverse(game, probe.ToMap()) {
			to.Y = from.Y + delta.Y
		}
	}
	return to
}

// CanPlayerTraverse is false for walls, doors that are not fully open, cells
// holding a blocking object and anything outside the map.
func CanPlayerTraverse(game model.GameState, p model.MapPosition) bool {
	if !game.InMap(p) {
		return false
	}
	switch c := game.Cell(p).(type) {
	case model.Wall:
		return false
	case model.Door:
		if game.Door(c.DoorIndex).Status != model.DoorOpen {
			return false
		}
	}
	for _, obj := range game.GameObjects {
		if common := obj.Common(); common.Blocking && common.MapPosition() == p {
			return false
		}
	}
	return true
}

// -- rotation

func Rotation(cfg config.Movement) UpdateFunc {
	return func(game model.GameState, deltaMs float64) model.GameState {
		angle := cfg.RotationSpeed * deltaMs / 1000.0
		if game.ControlState.Has(model.TurningLeft) {
			game.Camera = game.Camera.Rotate(-angle)
		}
		if game.ControlState.Has(model.TurningRight) {
			game.Camera = game.Camera.Rotate(angle)
		}
		return game
	}
}

// -- doors

// Action opens a closed door straight ahead within reach.
func Action(cfg config.Config, walls WallRenderingResult) UpdateFunc {
	return func(game model.GameState, _ float64) model.GameState {
		if !game.ControlState.Has(model.Action) || !walls.IsDoorInFrontOfPlayer {
			return game
		}
		if walls.DistanceToWallInFrontOfPlayer < 0 || walls.DistanceToWallInFrontOfPlayer > cfg.ActionReach() {
			return game
		}
		door, index, ok := game.DoorAt(walls.WallInFrontOfPlayer)
		if !ok || door.Status != model.DoorClosed {
			return game
		}
		logDoor(index, door.Status, model.DoorOpening)
		door.Status = model.DoorOpening
		door.TimeRemainingInAnimation = cfg.Timing.DoorOpeningMs
		return game.WithDoor(index, door)
	}
}

// DoorTimers advances every moving or open door.
func DoorTimers(timing config.Timing) UpdateFunc {
	return func(game model.GameState, deltaMs float64) model.GameState {
		var doors []model.DoorState
		player := game.PlayerMapPosition()
		for i, door := range game.Doors {
			if door.Status == model.DoorClosed {
				continue
			}
			if doors == nil {
				doors = model.CloneDoors(game.Doors)
			}
			doors[i] = advanceDoor(i, door, timing, deltaMs, player)
		}
		if doors != nil {
			game.Doors = doors
		}
		return game
	}
}

func advanceDoor(index int, door model.DoorState, timing config.Timing, deltaMs float64, player model.MapPosition) model.DoorState {
	door.TimeRemainingInAnimation -= deltaMs
	remaining := door.TimeRemainingInAnimation

	switch door.Status {
	case model.DoorOpening:
		if remaining <= 0 {
			logDoor(index, door.Status, model.DoorOpen)
			door.Status = model.DoorOpen
			door.Offset = model.DoorOffsetMax
			door.TimeRemainingInAnimation = timing.DoorOpenMs
			break
		}
		door.Offset = geom.Clamp(model.DoorOffsetMax*(1.0-remaining/timing.DoorOpeningMs), 0, model.DoorOffsetMax)
	case model.DoorOpen:
		if remaining > 0 {
			break
		}
		if door.MapPosition == player {
			door.TimeRemainingInAnimation = timing.DoorOpenMs
			break
		}
		logDoor(index, door.Status, model.DoorClosing)
		door.Status = model.DoorClosing
		door.TimeRemainingInAnimation = timing.DoorClosingMs
	case model.DoorClosing:
		if remaining <= 0 {
			logDoor(index, door.Status, model.DoorClosed)
			door.Status = model.DoorClosed
			door.Offset = 0
			door.TimeRemainingInAnimation = 0
			break
		}
		door.Offset = geom.Clamp(model.DoorOffsetMax*remaining/timing.DoorClosingMs, 0, model.DoorOffsetMax)
	}
	return door
}

func logDoor(index int, from, to model.DoorStatus) {
	logger.Log.WithFields(logrus.Fields{
		"door": index,
		"from": from,
		"to":   to,
	}).Debug("door status changed")
}

// -- enemies

// EnemyAnimation steps enemy animation frames. Dying ends on Dead and pain
// returns to the state it interrupted.
func EnemyAnimation(game model.GameState, deltaMs float64) model.GameState {
	var objects []model.GameObject
	for i, obj := range game.GameObjects {
		enemy, ok := obj.(model.EnemyGameObject)
		if !ok {
			continue
		}
		next, changed := animateEnemy(enemy, deltaMs)
		if !changed {
			continue
		}
		if objects == nil {
			objects = append([]model.GameObject(nil), game.GameObjects...)
		}
		objects[i] = next
	}
	if objects != nil {
		game.GameObjects = objects
	}
	return game
}

func animateEnemy(e model.EnemyGameObject, deltaMs float64) (model.EnemyGameObject, bool) {
	frameTime := e.AnimationTimeForState()
	if frameTime == 0 {
		return e, false
	}
	if _, dead := e.EnemyProperties.State.(model.Dead); dead {
		return e, false
	}

	p := e.EnemyProperties
	p.TimeUntilNextAnimationFrame -= deltaMs
	if p.TimeUntilNextAnimationFrame > 0 {
		return e.WithEnemy(p), true
	}

	p.TimeUntilNextAnimationFrame = frameTime
	p.CurrentAnimationFrame++
	e = e.WithEnemy(p)
	if p.CurrentAnimationFrame < e.AnimationFrames() {
		return e, true
	}

	switch s := p.State.(type) {
	case model.Dying:
		p.State = model.Dead{}
		p.CurrentAnimationFrame = max(0, len(p.DeathSpriteIndexes)-1)
		return e.WithEnemy(p), true
	case model.InPain:
		return e.WithState(s.Previous), true
	default:
		p.CurrentAnimationFrame = 0
		return e.WithEnemy(p), true
	}
}

// -- weapons

// Weapons handles weapon selection and steps the firing animation. A shot spends
// ammunition when the weapon needs it; auto-repeat weapons keep firing while
// Fire is held.
func Weapons(timing config.Timing) UpdateFunc {
	return func(game model.GameState, deltaMs float64) model.GameState {
		if !game.IsFiring {
			if slot := game.ControlState.SelectedWeapon(); slot >= 0 {
				game.Player = game.Player.SelectWeapon(slot)
			} else if game.ControlState.Has(model.CycleWeapon) {
				game.Player = game.Player.NextWeapon()
			}
		}

		weapon, ok := game.Player.CurrentWeapon()
		if !ok {
			return game
		}

		if !game.IsFiring {
			if game.ControlState.Has(model.Fire) && canFire(game.Player, weapon) {
				game = startFiring(game, weapon, timing)
			}
			return game
		}

		remaining := timing.WeaponFrameMs
		if game.TimeToNextWeaponFrame != nil {
			remaining = *game.TimeToNextWeaponFrame
		}
		remaining -= deltaMs
		if remaining > 0 {
			game.TimeToNextWeaponFrame = &remaining
			return game
		}

		weapon.CurrentFrame++
		if weapon.CurrentFrame < weapon.AnimationFrames() {
			next := timing.WeaponFrameMs
			game.TimeToNextWeaponFrame = &next
			game.Player = game.Player.WithCurrentWeapon(weapon)
			return game
		}

		weapon.CurrentFrame = 0
		game.Player = game.Player.WithCurrentWeapon(weapon)
		game.IsFiring = false
		game.TimeToNextWeaponFrame = nil
		if weapon.AutoRepeat && game.ControlState.Has(model.Fire) && canFire(game.Player, weapon) {
			game = startFiring(game, weapon, timing)
		}
		return game
	}
}

func canFire(p model.Player, w model.PlayerWeapon) bool {
	return w.AnimationFrames() > 0 && (!w.RequiresAmmunition || p.Ammunition > 0)
}

func startFiring(game model.GameState, weapon model.PlayerWeapon, timing config.Timing) model.GameState {
	if weapon.RequiresAmmunition {
		game.Player.Ammunition--
	}
	if weapon.AnimationFrames() > 1 {
		weapon.CurrentFrame = 1
	}
	game.Player = game.Player.WithCurrentWeapon(weapon)
	game.IsFiring = true
	next := timing.WeaponFrameMs
	game.TimeToNextWeaponFrame = &next
	return game
}

// -- overlay

// OverlayAnimation fades the viewport tint in to its peak and back out, then
// clears it.
func OverlayAnimation(game model.GameState, deltaMs float64) model.GameState {
	if game.ViewportFilter == nil {
		return game
	}
	o := *game.ViewportFilter
	o.TimeRemainingUntilNextFrame -= deltaMs
	if o.TimeRemainingUntilNextFrame > 0 {
		game.ViewportFilter = &o
		return game
	}

	o.TimeRemainingUntilNextFrame = o.FrameLength
	o.Opacity += o.OpacityDelta
	if o.OpacityDelta > 0 && o.Opacity >= o.MaxOpacity {
		o.Opacity = o.MaxOpacity
		o.OpacityDelta = -o.OpacityDelta
	}
	if o.Opacity <= 0 {
		game.ViewportFilter = nil
		return game
	}
	game.ViewportFilter = &o
	return game
}
