package model

import "github.com/zyedidia/generic/mapset"

// CompositeArea groups floor areas joined by open doors. Areas are recorded at
// load but the groups are not maintained yet.
type CompositeArea struct {
	Area        int
	ConnectedTo mapset.Set[int]
}

func NewCompositeArea(area int, connected ...int) CompositeArea {
	set := mapset.New[int]()
	for _, a := range connected {
		set.Put(a)
	}
	return CompositeArea{Area: area, ConnectedTo: set}
}

func (c CompositeArea) IsConnectedTo(area int) bool {
	return area == c.Area || c.ConnectedTo.Has(area)
}
