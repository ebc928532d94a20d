package model

type WeaponType int

const (
	Knife WeaponType = iota
	Pistol
	MachineGun
	ChainGun
)

func (w WeaponType) String() string {
	switch w {
	case Knife:
		return "knife"
	case Pistol:
		return "pistol"
	case MachineGun:
		return "machine gun"
	case ChainGun:
		return "chain gun"
	}
	return "unknown"
}

type PlayerWeapon struct {
	// indexes into the sprite table, one per firing frame
	SpriteIndexes       []int
	CurrentFrame        int
	Damage              int
	AutoRepeat          bool
	RequiresAmmunition  bool
	StatusBarImageIndex int
	WeaponType          WeaponType
}

func (w PlayerWeapon) AnimationFrames() int { return len(w.SpriteIndexes) }

func (w PlayerWeapon) CurrentSpriteIndex() int {
	return frameOf(w.SpriteIndexes, w.CurrentFrame)
}

type Player struct {
	Score              int
	Lives              int
	Health             int
	Radius             float64
	CurrentWeaponIndex int
	Ammunition         int
	Weapons            []PlayerWeapon
	CurrentFaceIndex   int
	TimeToFaceChangeMs float64
}

// NewPlayer starts with the second weapon drawn when there is one.
func NewPlayer(radius float64, weapons []PlayerWeapon) Player {
	current := 1
	if len(weapons) < 2 {
		current = 0
	}
	return Player{
		Lives:              3,
		Health:             100,
		Radius:             radius,
		CurrentWeaponIndex: current,
		Ammunition:         9,
		Weapons:            weapons,
		TimeToFaceChangeMs: 1500.0,
	}
}

func (p Player) CurrentWeapon() (PlayerWeapon, bool) {
	if p.CurrentWeaponIndex < 0 || p.CurrentWeaponIndex >= len(p.Weapons) {
		return PlayerWeapon{}, false
	}
	return p.Weapons[p.CurrentWeaponIndex], true
}

// SelectWeapon switches to the weapon at index. Indexes the player does not hold
// leave the selection unchanged, as does switching mid-animation.
func (p Player) SelectWeapon(index int) Player {
	if index < 0 || index >= len(p.Weapons) {
		return p
	}
	if w, ok := p.CurrentWeapon(); ok && w.CurrentFrame != 0 {
		return p
	}
	p.CurrentWeaponIndex = index
	return p
}

func (p Player) NextWeapon() Player {
	if len(p.Weapons) == 0 {
		return p
	}
	next := p.CurrentWeaponIndex + 1
	if next >= len(p.Weapons) {
		next = 0
	}
	return p.SelectWeapon(next)
}

// WithCurrentWeapon replaces the drawn weapon. The weapon list is copied so
// earlier snapshots keep theirs.
func (p Player) WithCurrentWeapon(w PlayerWeapon) Player {
	if p.CurrentWeaponIndex < 0 || p.CurrentWeaponIndex >= len(p.Weapons) {
		return p
	}
	weapons := CloneWeapons(p.Weapons)
	weapons[p.CurrentWeaponIndex] = w
	p.Weapons = weapons
	return p
}
