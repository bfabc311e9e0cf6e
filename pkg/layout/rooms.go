package layout

import (
	"github.com/purefictiongames/Warren-sub010/pkg/geo"
)

// PathClass tells which pass of the builder produced a room.
type PathClass string

const (
	PathMain PathClass = "main"
	PathSpur PathClass = "spur"
)

// Room is a placed axis-aligned interior volume. Center and Size
// describe the open cavity; the shell extends WallThickness beyond it
// on every side, and connected rooms sit shell against shell.
type Room struct {
	ID          int       `json:"id"`
	Center      geo.Vec3  `json:"center"`
	Size        geo.Vec3  `json:"size"`
	Parent      int       `json:"parent"` // -1 for the root
	Connections []int     `json:"connections"`
	Path        PathClass `json:"path"`
	AttachFace  geo.Face  `json:"attach_face"` // direction of growth from the parent
}

// Box returns the room cavity as a geo.Box.
func (r Room) Box() geo.Box {
	return geo.Box{Center: r.Center, Size: r.Size}
}

// Door is an opening cut through the shared wall (or floor/ceiling)
// between two connected rooms.
type Door struct {
	ID     int      `json:"id"`
	RoomA  int      `json:"room_a"` // parent side
	RoomB  int      `json:"room_b"` // child side
	Center geo.Vec3 `json:"center"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	// Axis is the touching axis the door punches through; WidthAxis is
	// the in-plane axis the width is measured on.
	Axis      geo.Axis `json:"axis"`
	WidthAxis geo.Axis `json:"width_axis"`
	// Bottom is the door sill height for wall doors; nil for vertical
	// doors, which have no sill.
	Bottom *float64 `json:"bottom,omitempty"`
}

// Box returns the door opening as a solid box: the opening rectangle
// extruded into a thin slab on the touching axis. The slab thickness
// keeps zero-thickness walls from producing degenerate boxes.
func (d Door) Box() geo.Box {
	const slab = 0.2
	var size geo.Vec3
	switch d.Axis {
	case geo.AxisX:
		size = geo.V(slab, d.Height, d.Width)
	case geo.AxisY:
		size = geo.V(d.Width, slab, d.Height)
	default:
		size = geo.V(d.Width, d.Height, slab)
	}
	return geo.Box{Center: d.Center, Size: size}
}

// TrussType distinguishes the two structural support shapes.
type TrussType string

const (
	// TrussCeiling spans the floor gap under a vertical doorway.
	TrussCeiling TrussType = "ceiling"
	// TrussWall rises from a room floor to a wall door's sill.
	TrussWall TrussType = "wall"
)

// Truss is a support column emitted where a doorway sits well above
// the floor it serves.
type Truss struct {
	ID     int       `json:"id"`
	Door   int       `json:"door"`
	Center geo.Vec3  `json:"center"`
	Size   geo.Vec3  `json:"size"`
	Type   TrussType `json:"type"`
}

// Box returns the truss volume.
func (t Truss) Box() geo.Box {
	return geo.Box{Center: t.Center, Size: t.Size}
}

// Light is a ceiling-height strip fixture mounted on one wall face of
// a room. Exactly one is planned per room.
type Light struct {
	ID     int      `json:"id"`
	Room   int      `json:"room"`
	Center geo.Vec3 `json:"center"`
	Size   geo.Vec3 `json:"size"`
	Face   geo.Face `json:"face"`
}

// Pad is a floor marker for spawning or waypointing. The first pad is
// the spawn pad in the root room.
type Pad struct {
	ID       int      `json:"id"`
	Room     int      `json:"room"`
	Position geo.Vec3 `json:"position"` // floor-level center
	Spawn    bool     `json:"spawn"`
}
