package model

// -- game objects

// GameObject is either a StaticGameObject or an EnemyGameObject.
type GameObject interface {
	Common() BasicGameObjectProperties
	// WithCommon returns a copy of the object carrying p.
	WithCommon(p BasicGameObjectProperties) GameObject
	isGameObject()
}

type BasicGameObjectProperties struct {
	Position Vector2D
	// recomputed every frame for the draw order sort
	PlayerRelativePosition      Vector2D
	UnsquaredDistanceFromPlayer float64
	SpriteIndex                 int
	CollidesWithBullets         bool
	Pickupable                  bool
	HitPointsRestored           int
	AmmoRestored                int
	LivesRestored               int
	Score                       int
	Blocking                    bool
}

func (p BasicGameObjectProperties) MapPosition() MapPosition {
	return p.Position.ToMap()
}

type StaticGameObject struct {
	CommonProperties BasicGameObjectProperties
}

func (s StaticGameObject) Common() BasicGameObjectProperties { return s.CommonProperties }
func (StaticGameObject) isGameObject()                       {}

func (s StaticGameObject) WithCommon(p BasicGameObjectProperties) GameObject {
	s.CommonProperties = p
	return s
}

type EnemyType int

const (
	Guard EnemyType = iota
	Officer
	SS
	Dog
	Zombie
	FakeAdolf
	Adolf
	Fettgesicht
	Schabbs
	Gretel
	Hans
	Otto
	Ghost
)

type EnemyProperties struct {
	EnemyType                   EnemyType
	Direction                   MapDirection
	DeathSpriteIndexes          []int
	AttackSpriteIndexes         []int
	SpriteBlocks                int
	FramesPerBlock              int
	CurrentAnimationFrame       int
	TimeUntilNextAnimationFrame float64
	State                       EnemyState
	IsFirstAttack               bool
	FireAtPlayerRequired        bool
	MoveToChaseRequired         bool
	HitPoints                   int
	HurtSpriteIndex             int
	PatrolSpeed                 float64
	ChaseSpeed                  float64
}

type EnemyGameObject struct {
	CommonProperties BasicGameObjectProperties
	EnemyProperties  EnemyProperties
}

func (e EnemyGameObject) Common() BasicGameObjectProperties { return e.CommonProperties }
func (EnemyGameObject) isGameObject()                       {}

func (e EnemyGameObject) WithCommon(p BasicGameObjectProperties) GameObject {
	e.CommonProperties = p
	return e
}

// WithEnemy returns a copy carrying p.
func (e EnemyGameObject) WithEnemy(p EnemyProperties) EnemyGameObject {
	e.EnemyProperties = p
	return e
}
