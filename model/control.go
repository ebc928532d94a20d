package model

import "strings"

// ControlState holds the input flags sampled for a frame.
type ControlState uint16

const (
	Forward ControlState = 1 << iota
	TurningLeft
	TurningRight
	StrafingLeft
	StrafingRight
	Backward
	Fire
	Action
	Weapon0
	Weapon1
	Weapon2
	Weapon3
	// draws the next weapon in the player's list
	CycleWeapon

	NoControl ControlState = 0
)

var controlNames = []struct {
	flag ControlState
	name string
}{
	{Forward, "forward"},
	{TurningLeft, "turning-left"},
	{TurningRight, "turning-right"},
	{StrafingLeft, "strafing-left"},
	{StrafingRight, "strafing-right"},
	{Backward, "backward"},
	{Fire, "fire"},
	{Action, "action"},
	{Weapon0, "weapon-0"},
	{Weapon1, "weapon-1"},
	{Weapon2, "weapon-2"},
	{Weapon3, "weapon-3"},
	{CycleWeapon, "cycle-weapon"},
}

func (c ControlState) Has(flag ControlState) bool {
	return c&flag != 0
}

func (c ControlState) Toggle(flag ControlState) ControlState {
	return c ^ flag
}

func (c ControlState) With(flag ControlState, on bool) ControlState {
	if on {
		return c | flag
	}
	return c &^ flag
}

// SelectedWeapon returns the lowest weapon slot requested, or -1.
func (c ControlState) SelectedWeapon() int {
	for i, flag := range []ControlState{Weapon0, Weapon1, Weapon2, Weapon3} {
		if c.Has(flag) {
			return i
		}
	}
	return -1
}

func (c ControlState) String() string {
	if c == NoControl {
		return "none"
	}
	var names []string
	for _, n := range controlNames {
		if c.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
