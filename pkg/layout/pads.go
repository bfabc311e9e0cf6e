package layout

import (
	"fmt"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/rng"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

const (
	padSideRatio  = 0.6 // pad side length as a fraction of base unit
	padCandidates = 8
)

// PlanPads drops floor markers: a spawn pad in the root room, then
// waypoint pads on a stride through the remaining rooms in id order.
// A room with no safe floor spot falls through to the next room once
// before the slot is given up.
func PlanPads(rooms []Room, doors []Door, trusses []Truss, params *plan.Params, r *rng.RNG) ([]Pad, *validation.Report) {
	report := validation.NewReport()
	if len(rooms) == 0 {
		report.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "no rooms to place pads in",
		})
		return nil, report
	}

	side := padSideRatio * params.BaseUnit
	obstacles, openings := padHazards(rooms, doors, trusses)

	var pads []Pad
	used := make(map[int]bool, len(rooms))

	// 1. Spawn pad in the root room.
	root := rooms[0]
	if pos, ok := safeSpot(root, side, obstacles[root.ID], openings[root.ID], r); ok {
		pads = append(pads, Pad{ID: 0, Room: root.ID, Position: pos, Spawn: true})
		used[root.ID] = true
	} else {
		report.AddWarning(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "no safe spawn position in the root room; spawn falls back to its floor center",
		})
	}

	// 2. Stride through the remaining rooms, skipping the spawn room.
	stride := params.RoomsPerPad
	if params.PadCount > 0 {
		stride = len(rooms) / params.PadCount
	}
	if stride < 1 {
		stride = 1
	}

	for i := stride; i < len(rooms); i += stride {
		placed := false
		for _, j := range []int{i, i + 1} { // one fallback room per slot
			if j >= len(rooms) || used[rooms[j].ID] {
				continue
			}
			room := rooms[j]
			pos, ok := safeSpot(room, side, obstacles[room.ID], openings[room.ID], r)
			if !ok {
				continue
			}
			pads = append(pads, Pad{ID: len(pads), Room: room.ID, Position: pos})
			used[room.ID] = true
			placed = true
			break
		}
		if !placed {
			report.AddWarning(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("no safe pad position around room %d; slot skipped", rooms[i].ID),
			})
		}
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("placed %d pad(s) across %d room(s), stride %d", len(pads), len(rooms), stride),
	})
	return pads, report
}

// padHazards indexes, per room, the solid volumes a pad must avoid
// and the vertical-door openings it must not sit under or over.
func padHazards(rooms []Room, doors []Door, trusses []Truss) (map[int][]geo.Box, map[int][]geo.Box) {
	obstacles := make(map[int][]geo.Box)
	openings := make(map[int][]geo.Box)

	doorByID := make(map[int]Door, len(doors))
	for _, d := range doors {
		doorByID[d.ID] = d
		for _, id := range []int{d.RoomA, d.RoomB} {
			if d.Axis == geo.AxisY {
				openings[id] = append(openings[id], d.Box())
			} else {
				obstacles[id] = append(obstacles[id], d.Box())
			}
		}
	}
	for _, t := range trusses {
		d := doorByID[t.Door]
		for _, id := range []int{d.RoomA, d.RoomB} {
			if t.Box().ShellsOverlap(rooms[id].Box(), 0) {
				obstacles[id] = append(obstacles[id], t.Box())
			}
		}
	}
	return obstacles, openings
}

// safeSpot finds a floor position for a pad, trying the room's floor
// center first and then jittered candidates inside the footprint.
func safeSpot(room Room, side float64, obstacles, openings []geo.Box, r *rng.RNG) (geo.Vec3, bool) {
	box := room.Box()
	center := geo.V(box.Center.X, box.Floor(), box.Center.Z)

	insetX := box.Size.X/2 - side
	insetZ := box.Size.Z/2 - side

	for attempt := 0; attempt < padCandidates; attempt++ {
		pos := center
		if attempt > 0 {
			if insetX <= 0 || insetZ <= 0 {
				break // too small to jitter; only the center was viable
			}
			pos.X = r.FloatBetween(box.Center.X-insetX, box.Center.X+insetX)
			pos.Z = r.FloatBetween(box.Center.Z-insetZ, box.Center.Z+insetZ)
		}
		if padSafe(pos, side, obstacles, openings) {
			return pos, true
		}
	}
	return geo.Vec3{}, false
}

func padSafe(pos geo.Vec3, side float64, obstacles, openings []geo.Box) bool {
	pad := geo.Box{
		Center: geo.V(pos.X, pos.Y+side/2, pos.Z),
		Size:   geo.V(side, side, side),
	}
	for _, o := range obstacles {
		if pad.ShellsOverlap(o, 0) {
			return false
		}
	}
	for _, o := range openings {
		// floor and ceiling openings exclude the whole column of air
		// above and below them, so only the footprint matters
		if pad.OverlapOn(o, geo.AxisX) > geo.Epsilon && pad.OverlapOn(o, geo.AxisZ) > geo.Epsilon {
			return false
		}
	}
	return true
}
