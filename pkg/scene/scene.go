package scene

import (
	"sort"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/layout"
)

// BoundingBox is an axis-aligned extent given as min/max corners.
type BoundingBox struct {
	Min geo.Vec3 `json:"min"`
	Max geo.Vec3 `json:"max"`
}

// Layout is the complete generated warren: the room graph plus every
// artifact derived from it, ready for serialization. It carries no
// clocks or host state; two runs from the same spec marshal to
// identical bytes.
type Layout struct {
	Name          string         `json:"name"`
	Seed          string         `json:"seed"`
	SeedValue     uint32         `json:"seed_value"`
	WallThickness float64        `json:"wall_thickness"`
	Bounds        BoundingBox    `json:"bounds"`
	Spawn         geo.Vec3       `json:"spawn"`
	SpawnRoom     int            `json:"spawn_room"`
	Rooms         []layout.Room  `json:"rooms"`
	Doors         []layout.Door  `json:"doors"`
	Trusses       []layout.Truss `json:"trusses"`
	Lights        []layout.Light `json:"lights"`
	Pads          []layout.Pad   `json:"pads"`
}

// Room returns the room with the given ID. Rooms are stored in ID
// order, so this is an index lookup with a range check.
func (l *Layout) Room(id int) (layout.Room, bool) {
	if id < 0 || id >= len(l.Rooms) {
		return layout.Room{}, false
	}
	return l.Rooms[id], true
}

// FloorLevels returns the distinct room floor heights in ascending
// order. Viewers step through the warren level by level with these.
func (l *Layout) FloorLevels() []float64 {
	var levels []float64
	for _, r := range l.Rooms {
		f := r.Box().Floor()
		found := false
		for _, v := range levels {
			if v-f < geo.Epsilon && f-v < geo.Epsilon {
				found = true
				break
			}
		}
		if !found {
			levels = append(levels, f)
		}
	}
	sort.Float64s(levels)
	return levels
}
