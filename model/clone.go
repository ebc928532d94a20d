package model

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of v. Panics inside copier are returned as errors.
func Clone[T any](v T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in Clone: %v", r)
		}
	}()

	if err := copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true}); err != nil {
		return out, fmt.Errorf("clone %T: %w", v, err)
	}
	return out, nil
}

// MustClone is Clone for plain data types that copier always handles.
func MustClone[T any](v T) T {
	out, err := Clone(v)
	if err != nil {
		panic(err)
	}
	return out
}

func CloneWeapons(weapons []PlayerWeapon) []PlayerWeapon {
	if weapons == nil {
		return nil
	}
	return MustClone(weapons)
}

func CloneDoors(doors []DoorState) []DoorState {
	if doors == nil {
		return nil
	}
	return MustClone(doors)
}
