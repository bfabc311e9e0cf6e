package layout

import (
	"fmt"
	"math"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// PlanDoors cuts one doorway through the shared wall of every
// parent-child edge. The touching axis is derived geometrically from
// the placed boxes, not from builder bookkeeping, so any two rooms in
// shell contact can be joined. Edges without a shared wall plane are
// reported and skipped.
func PlanDoors(rooms []Room, params *plan.Params) ([]Door, *validation.Report) {
	report := validation.NewReport()
	var doors []Door

	for _, child := range rooms {
		if child.Parent < 0 {
			continue
		}
		parent := rooms[child.Parent]
		door, ok := planDoor(parent, child, len(doors), params)
		if !ok {
			report.AddWarning(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("rooms %d and %d share no wall rectangle; door skipped", parent.ID, child.ID),
			})
			continue
		}
		doors = append(doors, door)
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("planned %d door(s) across %d room(s)", len(doors), len(rooms)),
	})
	return doors, report
}

func planDoor(parent, child Room, id int, p *plan.Params) (Door, bool) {
	pb, cb := parent.Box(), child.Box()
	pe, ce := pb.Expand(p.WallThickness), cb.Expand(p.WallThickness)

	// 1. Touching axis: the expanded far face of one room coincides
	//    with the expanded near face of the other.
	axis := geo.AxisX
	found := false
	for _, a := range geo.Axes {
		low := math.Abs(ce.Min().Component(a) - pe.Max().Component(a))
		high := math.Abs(pe.Min().Component(a) - ce.Max().Component(a))
		if low < geo.Epsilon || high < geo.Epsilon {
			axis, found = a, true
			break
		}
	}
	if !found {
		return Door{}, false
	}

	// 2. The un-expanded footprints must overlap on both in-plane axes
	//    to leave a wall rectangle to cut.
	for _, a := range geo.Axes {
		if a != axis && pb.OverlapOn(cb, a) <= geo.Epsilon {
			return Door{}, false
		}
	}

	// Door center on the touching axis sits mid-cavity between the two
	// un-expanded faces.
	toward := geo.FaceToward(axis, parent.Center.Component(axis), child.Center.Component(axis))
	mid := (pb.FaceCoord(toward) + cb.FaceCoord(toward.Opposite())) / 2

	// 3. Size and place the opening.
	if axis == geo.AxisY {
		width := clampDoor(pb.OverlapOn(cb, geo.AxisX), p)
		height := clampDoor(pb.OverlapOn(cb, geo.AxisZ), p)
		center := geo.V(overlapMid(pb, cb, geo.AxisX), mid, overlapMid(pb, cb, geo.AxisZ))
		return Door{
			ID: id, RoomA: parent.ID, RoomB: child.ID,
			Center: center, Width: width, Height: height,
			Axis: axis, WidthAxis: geo.AxisX,
		}, true
	}

	widthAxis := geo.AxisZ
	if axis == geo.AxisZ {
		widthAxis = geo.AxisX
	}
	width := clampDoor(pb.OverlapOn(cb, widthAxis), p)
	height := clampDoor(pb.OverlapOn(cb, geo.AxisY), p)

	// Wall doors align to the higher of the two floors.
	bottom := math.Max(pb.Floor(), cb.Floor()) + p.DoorEdgeMargin
	center := geo.Vec3{}.
		WithComponent(axis, mid).
		WithComponent(widthAxis, overlapMid(pb, cb, widthAxis))
	center.Y = bottom + height/2

	return Door{
		ID: id, RoomA: parent.ID, RoomB: child.ID,
		Center: center, Width: width, Height: height,
		Axis: axis, WidthAxis: widthAxis,
		Bottom: &bottom,
	}, true
}

// clampDoor sizes an opening inside the available overlap: edge
// margins are reserved on both sides, the configured door size caps
// it, and degenerate overlaps clamp to zero.
func clampDoor(overlap float64, p *plan.Params) float64 {
	v := math.Min(overlap-2*p.DoorEdgeMargin, p.DoorSize)
	return math.Max(v, 0)
}

// overlapMid returns the midpoint of the two boxes' shared extent on
// one axis.
func overlapMid(a, b geo.Box, axis geo.Axis) float64 {
	lo := math.Max(a.Min().Component(axis), b.Min().Component(axis))
	hi := math.Min(a.Max().Component(axis), b.Max().Component(axis))
	return (lo + hi) / 2
}
