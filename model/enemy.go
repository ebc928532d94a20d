package model

import "fmt"

// -- enemy state

// EnemyState is the enemy behaviour state. AI decides the transitions; rendering
// and animation timing only read it.
type EnemyState interface {
	isEnemyState()
}

type PatrolPath struct {
	TargetX, TargetY     int
	ChaseOnTargetReached bool
}

var NoPatrolPath = PatrolPath{TargetX: -1, TargetY: -1}

type (
	Standing  struct{}
	Ambushing struct{}
	Attacking struct{}
	Pathing   struct{ Path PatrolPath }
	Shooting  struct{}
	Chasing   struct{ Target MapPosition }
	Dying     struct{}
	Dead      struct{}
	InPain    struct{ Previous EnemyState }
)

func (Standing) isEnemyState()  {}
func (Ambushing) isEnemyState() {}
func (Attacking) isEnemyState() {}
func (Pathing) isEnemyState()   {}
func (Shooting) isEnemyState()  {}
func (Chasing) isEnemyState()   {}
func (Dying) isEnemyState()     {}
func (Dead) isEnemyState()      {}
func (InPain) isEnemyState()    {}

func unhandledState(s EnemyState) string {
	return fmt.Sprintf("unhandled enemy state %T", s)
}

// -- enemy animation contract

func (e EnemyGameObject) IsAlive() bool {
	switch e.EnemyProperties.State.(type) {
	case Dying, Dead:
		return false
	}
	return true
}

func (e EnemyGameObject) IsBoss() bool {
	switch e.EnemyProperties.EnemyType {
	case Guard, Officer, Dog, SS, Zombie:
		return false
	}
	return true
}

// DirectionVector is the facing used for 8-way sprite selection. Bosses and
// enemies without a facing have a single view.
func (e EnemyGameObject) DirectionVector() (Vector2D, bool) {
	if e.IsBoss() || e.EnemyProperties.Direction == NoDirection {
		return Zero, false
	}
	return e.EnemyProperties.Direction.ToVector(), true
}

func (e EnemyGameObject) StationarySpriteBlockIndex() int {
	return e.CommonProperties.SpriteIndex
}

func (e EnemyGameObject) NumberOfMovementAnimationFrames() int {
	return e.EnemyProperties.SpriteBlocks - 1
}

// MovementSpriteBlockIndex is the first sprite of walking frame n. Walking blocks
// follow the stationary block.
func (e EnemyGameObject) MovementSpriteBlockIndex(frame int) int {
	return e.CommonProperties.SpriteIndex + (frame+1)*e.EnemyProperties.FramesPerBlock
}

// frameOf returns -1 for an empty list so texture lookup fails loudly.
func frameOf(indexes []int, frame int) int {
	if len(indexes) == 0 {
		return -1
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= len(indexes) {
		frame = len(indexes) - 1
	}
	return indexes[frame]
}

// BaseSpriteIndexForState is the sprite before any view-angle offset is added.
func (e EnemyGameObject) BaseSpriteIndexForState() int {
	p := e.EnemyProperties
	switch p.State.(type) {
	case Standing, Ambushing, Shooting:
		return e.StationarySpriteBlockIndex()
	case Chasing, Pathing:
		return e.MovementSpriteBlockIndex(p.CurrentAnimationFrame)
	case Attacking:
		return frameOf(p.AttackSpriteIndexes, p.CurrentAnimationFrame)
	case InPain:
		return p.HurtSpriteIndex
	case Dying, Dead:
		return frameOf(p.DeathSpriteIndexes, p.CurrentAnimationFrame)
	}
	panic(unhandledState(p.State))
}

// AnimationTimeForState is the frame length in milliseconds, 0 when the state
// does not animate.
func (e EnemyGameObject) AnimationTimeForState() float64 {
	switch e.EnemyProperties.State.(type) {
	case Attacking:
		return 200.0
	case Chasing:
		return 100.0
	case Pathing:
		return 300.0
	case InPain:
		return 100.0
	case Dying, Dead:
		return 100.0
	case Standing, Ambushing, Shooting:
		return 0.0
	}
	panic(unhandledState(e.EnemyProperties.State))
}

func (e EnemyGameObject) SpriteIndexForAnimationFrame() int {
	p := e.EnemyProperties
	switch p.State.(type) {
	case Attacking:
		return frameOf(p.AttackSpriteIndexes, p.CurrentAnimationFrame)
	case Dying, Dead:
		return frameOf(p.DeathSpriteIndexes, p.CurrentAnimationFrame)
	}
	return e.StationarySpriteBlockIndex()
}

func (e EnemyGameObject) AnimationFrames() int {
	p := e.EnemyProperties
	switch p.State.(type) {
	case Attacking:
		return len(p.AttackSpriteIndexes)
	case Dying, Dead:
		return len(p.DeathSpriteIndexes)
	case Chasing, Pathing:
		if n := e.NumberOfMovementAnimationFrames(); n > 1 {
			return n
		}
	}
	return 1
}

// WithState switches state and restarts the animation for it.
func (e EnemyGameObject) WithState(s EnemyState) EnemyGameObject {
	e.EnemyProperties.State = s
	e.EnemyProperties.CurrentAnimationFrame = 0
	e.EnemyProperties.TimeUntilNextAnimationFrame = e.AnimationTimeForState()
	return e
}
