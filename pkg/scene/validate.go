package scene

import (
	"fmt"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// ValidateLayout performs structural validation on a generated layout.
// It checks referential integrity, graph connectivity, shell
// separation, and artifact geometry.
func ValidateLayout(l *Layout) *validation.Report {
	r := validation.NewReport()

	if l == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "layout is nil",
		})
		return r
	}
	if len(l.Rooms) == 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelSpatial,
			Message:  "layout has no rooms",
			SpecPath: "rooms",
		})
		return r
	}

	validateRoomIDs(l, r)
	validateRoomGraph(l, r)
	validateReachability(l, r)
	validateSeparation(l, r)
	validateDoorRefs(l, r)
	validateTrussRefs(l, r)
	validateLightCoverage(l, r)
	validatePadRefs(l, r)
	validateEnclosure(l, r)

	return r
}

func validateRoomIDs(l *Layout, r *validation.Report) {
	for i, room := range l.Rooms {
		if room.ID != i {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("room at index %d has ID %d; rooms must be stored in ID order", i, room.ID),
				SpecPath:    fmt.Sprintf("rooms[%d].id", i),
				ActualValue: room.ID,
				Expected:    fmt.Sprintf("%d", i),
			})
		}
		if room.Size.X <= 0 || room.Size.Y <= 0 || room.Size.Z <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("room %d has zero or negative dimension (%.2f, %.2f, %.2f)", room.ID, room.Size.X, room.Size.Y, room.Size.Z),
				SpecPath:    fmt.Sprintf("rooms[%d].size", i),
				ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", room.Size.X, room.Size.Y, room.Size.Z),
				Expected:    "all dimensions > 0",
			})
		}
	}
}

func validateRoomGraph(l *Layout, r *validation.Report) {
	n := len(l.Rooms)

	for i, room := range l.Rooms {
		if i == 0 {
			if room.Parent != -1 {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("root room has parent %d", room.Parent),
					SpecPath:    "rooms[0].parent",
					ActualValue: room.Parent,
					Expected:    "-1",
				})
			}
		} else if room.Parent < 0 || room.Parent >= n {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("room %d references non-existent parent %d", room.ID, room.Parent),
				SpecPath:    fmt.Sprintf("rooms[%d].parent", i),
				ActualValue: room.Parent,
			})
			continue
		} else if !containsID(room.Connections, room.Parent) {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("room %d is not connected to its parent %d", room.ID, room.Parent),
				SpecPath: fmt.Sprintf("rooms[%d].connections", i),
			})
		}

		for _, c := range room.Connections {
			if c < 0 || c >= n {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("room %d lists non-existent connection %d", room.ID, c),
					SpecPath:    fmt.Sprintf("rooms[%d].connections", i),
					ActualValue: c,
				})
				continue
			}
			if !containsID(l.Rooms[c].Connections, room.ID) {
				r.AddError(validation.Result{
					Level:    validation.LevelSpatial,
					Message:  fmt.Sprintf("connection %d to %d is not bidirectional", room.ID, c),
					SpecPath: fmt.Sprintf("rooms[%d].connections", c),
				})
			}
		}
	}
}

// validateReachability walks the connection graph from the root and
// confirms every room is reachable.
func validateReachability(l *Layout, r *validation.Report) {
	n := len(l.Rooms)
	seen := make([]bool, n)
	seen[0] = true
	visited := 1

	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, c := range l.Rooms[id].Connections {
			if c < 0 || c >= n || seen[c] {
				continue
			}
			seen[c] = true
			visited++
			queue = append(queue, c)
		}
	}

	if visited != n {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("room graph is disconnected: only %d of %d rooms reachable from the root", visited, n),
			SpecPath:    "rooms",
			ActualValue: visited,
			Expected:    fmt.Sprintf("%d", n),
		})
	}
}

// validateSeparation checks that no two rooms intrude on each other's
// wall shells. Connected rooms sit shell against shell, which the
// epsilon-tolerant overlap test already treats as clear.
func validateSeparation(l *Layout, r *validation.Report) {
	for i := 0; i < len(l.Rooms); i++ {
		for j := i + 1; j < len(l.Rooms); j++ {
			a, b := l.Rooms[i], l.Rooms[j]
			if containsID(a.Connections, b.ID) {
				continue
			}
			if a.Box().ShellsOverlap(b.Box(), l.WallThickness) {
				r.AddError(validation.Result{
					Level:    validation.LevelSpatial,
					Message:  fmt.Sprintf("rooms %d and %d overlap including wall shells", a.ID, b.ID),
					SpecPath: fmt.Sprintf("rooms[%d]", j),
				})
			}
		}
	}
}

func validateDoorRefs(l *Layout, r *validation.Report) {
	n := len(l.Rooms)

	for i, d := range l.Doors {
		if d.RoomA < 0 || d.RoomA >= n || d.RoomB < 0 || d.RoomB >= n {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("door %d references non-existent room (%d, %d)", d.ID, d.RoomA, d.RoomB),
				SpecPath:    fmt.Sprintf("doors[%d]", i),
				ActualValue: fmt.Sprintf("%d, %d", d.RoomA, d.RoomB),
			})
			continue
		}
		if !containsID(l.Rooms[d.RoomA].Connections, d.RoomB) {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("door %d joins rooms %d and %d, which are not connected", d.ID, d.RoomA, d.RoomB),
				SpecPath: fmt.Sprintf("doors[%d]", i),
			})
		}
		if d.Width < 0 || d.Height < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("door %d has negative extent %.2f x %.2f", d.ID, d.Width, d.Height),
				SpecPath:    fmt.Sprintf("doors[%d]", i),
				ActualValue: fmt.Sprintf("%.2f x %.2f", d.Width, d.Height),
				Expected:    "width and height >= 0",
			})
		}
		if d.Axis == geo.AxisY {
			if d.Bottom != nil {
				r.AddError(validation.Result{
					Level:    validation.LevelSpatial,
					Message:  fmt.Sprintf("vertical door %d carries a sill height", d.ID),
					SpecPath: fmt.Sprintf("doors[%d].bottom", i),
				})
			}
		} else if d.Bottom == nil {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("wall door %d has no sill height", d.ID),
				SpecPath: fmt.Sprintf("doors[%d].bottom", i),
			})
		}
	}
}

func validateTrussRefs(l *Layout, r *validation.Report) {
	doorIDs := make(map[int]bool, len(l.Doors))
	for _, d := range l.Doors {
		doorIDs[d.ID] = true
	}

	for i, t := range l.Trusses {
		if !doorIDs[t.Door] {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("truss %d references non-existent door %d", t.ID, t.Door),
				SpecPath:    fmt.Sprintf("trusses[%d].door", i),
				ActualValue: t.Door,
			})
		}
		if t.Size.X <= 0 || t.Size.Y <= 0 || t.Size.Z <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("truss %d has zero or negative dimension (%.2f, %.2f, %.2f)", t.ID, t.Size.X, t.Size.Y, t.Size.Z),
				SpecPath:    fmt.Sprintf("trusses[%d].size", i),
				ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", t.Size.X, t.Size.Y, t.Size.Z),
				Expected:    "all dimensions > 0",
			})
		}
	}
}

// validateLightCoverage checks the one-fixture-per-room contract.
func validateLightCoverage(l *Layout, r *validation.Report) {
	n := len(l.Rooms)
	count := make([]int, n)

	for i, lt := range l.Lights {
		if lt.Room < 0 || lt.Room >= n {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("light %d references non-existent room %d", lt.ID, lt.Room),
				SpecPath:    fmt.Sprintf("lights[%d].room", i),
				ActualValue: lt.Room,
			})
			continue
		}
		count[lt.Room]++
	}

	for id, c := range count {
		if c != 1 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("room %d has %d light fixtures", id, c),
				SpecPath:    fmt.Sprintf("rooms[%d]", id),
				ActualValue: c,
				Expected:    "1",
			})
		}
	}
}

func validatePadRefs(l *Layout, r *validation.Report) {
	n := len(l.Rooms)
	spawns := 0

	for i, p := range l.Pads {
		if p.Room < 0 || p.Room >= n {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("pad %d references non-existent room %d", p.ID, p.Room),
				SpecPath:    fmt.Sprintf("pads[%d].room", i),
				ActualValue: p.Room,
			})
			continue
		}
		if p.Spawn {
			spawns++
		}

		box := l.Rooms[p.Room].Box()
		if p.Position.X < box.Min().X-geo.Epsilon || p.Position.X > box.Max().X+geo.Epsilon ||
			p.Position.Z < box.Min().Z-geo.Epsilon || p.Position.Z > box.Max().Z+geo.Epsilon {
			r.AddWarning(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("pad %d sits outside the footprint of room %d", p.ID, p.Room),
				SpecPath: fmt.Sprintf("pads[%d].position", i),
			})
		}
		if diff := p.Position.Y - box.Floor(); diff > geo.Epsilon || diff < -geo.Epsilon {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("pad %d floats %.3f above the floor of room %d", p.ID, diff, p.Room),
				SpecPath:    fmt.Sprintf("pads[%d].position", i),
				ActualValue: p.Position.Y,
				Expected:    fmt.Sprintf("%.3f", box.Floor()),
			})
		}
	}

	if spawns > 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("layout has %d spawn pads", spawns),
			SpecPath:    "pads",
			ActualValue: spawns,
			Expected:    "at most 1",
		})
	}
}

func validateEnclosure(l *Layout, r *validation.Report) {
	outer := geo.BoxFromCorners(l.Bounds.Min, l.Bounds.Max)

	for _, room := range l.Rooms {
		if !outer.ContainsBox(room.Box().Expand(l.WallThickness)) {
			r.AddWarning(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("room %d shell extends outside the layout bounds", room.ID),
				SpecPath: "bounds",
			})
			break
		}
	}
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
