package layout

import (
	"fmt"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// PlanTrusses emits support columns where a doorway sits well above
// the floor it serves: one ceiling truss under a vertical doorway
// whose floor gap exceeds the threshold, and a wall truss on each
// side of a wall door whose sill does.
func PlanTrusses(rooms []Room, doors []Door, params *plan.Params) ([]Truss, *validation.Report) {
	report := validation.NewReport()
	var trusses []Truss

	for _, d := range doors {
		if d.Axis == geo.AxisY {
			if t, ok := ceilingTruss(rooms, d, len(trusses), params); ok {
				trusses = append(trusses, t)
			}
			continue
		}
		for _, roomID := range []int{d.RoomA, d.RoomB} {
			if t, ok := wallTruss(rooms[roomID], d, len(trusses), params); ok {
				trusses = append(trusses, t)
			}
		}
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("planned %d truss(es) for %d door(s)", len(trusses), len(doors)),
	})
	return trusses, report
}

// ceilingTruss spans the floor gap under a vertical doorway: a square
// column from the lower room's floor up to the upper room's floor,
// hugging one edge of the opening to stay out of the climb path.
func ceilingTruss(rooms []Room, d Door, id int, p *plan.Params) (Truss, bool) {
	a, b := rooms[d.RoomA], rooms[d.RoomB]
	lower, upper := a, b
	if b.Center.Y < a.Center.Y {
		lower, upper = b, a
	}
	gap := upper.Box().Floor() - lower.Box().Floor()
	if gap <= p.FloorThreshold {
		return Truss{}, false
	}

	thick := p.TrussThickness
	center := d.Center
	center.Y = lower.Box().Floor() + gap/2
	if offset := d.Width/2 - thick/2; offset > 0 {
		center = center.Add(geo.Vec3{}.WithComponent(d.WidthAxis, offset))
	}

	return Truss{
		ID:     id,
		Door:   d.ID,
		Center: center,
		Size:   geo.V(thick, gap, thick),
		Type:   TrussCeiling,
	}, true
}

// wallTruss rises from a room's floor to a wall door's sill when the
// sill sits higher than the threshold, placed just inside the room
// against the shared wall.
func wallTruss(room Room, d Door, id int, p *plan.Params) (Truss, bool) {
	if d.Bottom == nil {
		return Truss{}, false
	}
	sill := *d.Bottom - room.Box().Floor()
	if sill <= p.FloorThreshold {
		return Truss{}, false
	}

	thick := p.TrussThickness
	wallFace := geo.FaceToward(d.Axis, room.Center.Component(d.Axis), d.Center.Component(d.Axis))
	center := d.Center.
		WithComponent(d.Axis, room.Box().FaceCoord(wallFace)-wallFace.Sign()*thick/2)
	center.Y = room.Box().Floor() + sill/2

	return Truss{
		ID:     id,
		Door:   d.ID,
		Center: center,
		Size:   geo.V(thick, sill, thick),
		Type:   TrussWall,
	}, true
}
