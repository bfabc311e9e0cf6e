package geo

// Face is one of the six axis-aligned directions a room can grow in,
// or FaceNone for a room that has no parent.
type Face int

const (
	FaceNone Face = iota
	FaceEast      // +X
	FaceWest      // -X
	FaceUp        // +Y
	FaceDown      // -Y
	FaceNorth     // -Z
	FaceSouth     // +Z
)

// Faces lists the six directions in canonical scan order: horizontal
// faces first, then vertical.
var Faces = [6]Face{FaceEast, FaceWest, FaceNorth, FaceSouth, FaceUp, FaceDown}

// HorizontalFaces lists the four wall faces in canonical scan order.
var HorizontalFaces = [4]Face{FaceEast, FaceWest, FaceNorth, FaceSouth}

// VerticalFaces lists the up and down faces.
var VerticalFaces = [2]Face{FaceUp, FaceDown}

var faceName = [...]string{
	FaceNone:  "none",
	FaceEast:  "east",
	FaceWest:  "west",
	FaceUp:    "up",
	FaceDown:  "down",
	FaceNorth: "north",
	FaceSouth: "south",
}

var faceOpposite = [...]Face{
	FaceNone:  FaceNone,
	FaceEast:  FaceWest,
	FaceWest:  FaceEast,
	FaceUp:    FaceDown,
	FaceDown:  FaceUp,
	FaceNorth: FaceSouth,
	FaceSouth: FaceNorth,
}

var faceAxis = [...]Axis{
	FaceNone:  AxisX,
	FaceEast:  AxisX,
	FaceWest:  AxisX,
	FaceUp:    AxisY,
	FaceDown:  AxisY,
	FaceNorth: AxisZ,
	FaceSouth: AxisZ,
}

var faceSign = [...]float64{
	FaceNone:  0,
	FaceEast:  1,
	FaceWest:  -1,
	FaceUp:    1,
	FaceDown:  -1,
	FaceNorth: -1,
	FaceSouth: 1,
}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceName) {
		return "none"
	}
	return faceName[f]
}

// Opposite returns the face pointing the other way.
func (f Face) Opposite() Face {
	return faceOpposite[f]
}

// Axis returns the axis the face is normal to.
func (f Face) Axis() Axis {
	return faceAxis[f]
}

// Sign returns +1 or -1 along the face's axis, 0 for FaceNone.
func (f Face) Sign() float64 {
	return faceSign[f]
}

// Vertical reports whether the face points up or down.
func (f Face) Vertical() bool {
	return f == FaceUp || f == FaceDown
}

// Dir returns the unit vector for the face.
func (f Face) Dir() Vec3 {
	return Vec3{}.WithComponent(f.Axis(), f.Sign())
}

// FaceToward returns the horizontal or vertical face that points from
// the origin coordinate toward the target coordinate on the given axis.
func FaceToward(a Axis, from, to float64) Face {
	pos := to-from >= 0
	switch a {
	case AxisX:
		if pos {
			return FaceEast
		}
		return FaceWest
	case AxisY:
		if pos {
			return FaceUp
		}
		return FaceDown
	default:
		if pos {
			return FaceSouth
		}
		return FaceNorth
	}
}

// MarshalJSON encodes the face as its lowercase name.
func (f Face) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}
