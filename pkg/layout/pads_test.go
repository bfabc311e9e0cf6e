package layout

import (
	"testing"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/rng"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
)

func rowOfRooms(n int) []Room {
	rooms := make([]Room, n)
	for i := range rooms {
		parent := i - 1
		rooms[i] = Room{
			ID:     i,
			Center: geo.V(float64(7*i), 0, 0),
			Size:   geo.V(6, 4, 6),
			Parent: parent,
		}
	}
	return rooms
}

func TestPlanPadsSpawnAndStride(t *testing.T) {
	p := testParams(t, nil) // rooms_per_pad 3
	rooms := rowOfRooms(7)

	pads, report := PlanPads(rooms, nil, nil, p, rng.New(99))
	if !report.Valid {
		t.Fatalf("PlanPads() failed: %+v", report.Errors)
	}
	if len(pads) != 3 {
		t.Fatalf("len(pads) = %d, want spawn plus rooms 3 and 6", len(pads))
	}

	if !pads[0].Spawn || pads[0].Room != 0 {
		t.Errorf("first pad = room %d spawn=%v, want the root spawn pad", pads[0].Room, pads[0].Spawn)
	}
	if pads[1].Room != 3 || pads[2].Room != 6 {
		t.Errorf("stride pads in rooms %d and %d, want 3 and 6", pads[1].Room, pads[2].Room)
	}
	for _, pad := range pads {
		if pad.ID != 0 && pad.Spawn {
			t.Errorf("pad %d marked as spawn", pad.ID)
		}
		if !approx(pad.Position.Y, -2) {
			t.Errorf("pad %d sits at y=%v, want the floor -2", pad.ID, pad.Position.Y)
		}
	}
}

func TestPlanPadsCountDerivesStride(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) { s.Pads.Count = 3 })
	rooms := rowOfRooms(6)

	pads, _ := PlanPads(rooms, nil, nil, p, rng.New(99))
	// stride 6/3 = 2: spawn, then rooms 2 and 4
	if len(pads) != 3 {
		t.Fatalf("len(pads) = %d, want 3", len(pads))
	}
	if pads[1].Room != 2 || pads[2].Room != 4 {
		t.Errorf("stride pads in rooms %d and %d, want 2 and 4", pads[1].Room, pads[2].Room)
	}
}

func TestPlanPadsFallsBackPastUnsafeRoom(t *testing.T) {
	p := testParams(t, nil)
	rooms := rowOfRooms(5)
	// a floor opening covering room 3's whole footprint leaves it no
	// safe spot, so the slot falls through to room 4
	opening := Door{
		ID: 0, RoomA: 3, RoomB: 3,
		Center: geo.V(21, -2, 0),
		Width:  8, Height: 8,
		Axis: geo.AxisY, WidthAxis: geo.AxisX,
	}

	pads, report := PlanPads(rooms, []Door{opening}, nil, p, rng.New(99))
	if len(pads) != 2 {
		t.Fatalf("len(pads) = %d, want spawn plus the fallback pad", len(pads))
	}
	if pads[1].Room != 4 {
		t.Errorf("fallback pad in room %d, want 4", pads[1].Room)
	}
	if !report.Valid {
		t.Error("a fallback must not invalidate the report")
	}
}

func TestPlanPadsSkipsSlotWithWarning(t *testing.T) {
	p := testParams(t, nil)
	rooms := rowOfRooms(4)
	opening := Door{
		ID: 0, RoomA: 3, RoomB: 3,
		Center: geo.V(21, -2, 0),
		Width:  8, Height: 8,
		Axis: geo.AxisY, WidthAxis: geo.AxisX,
	}

	pads, report := PlanPads(rooms, []Door{opening}, nil, p, rng.New(99))
	if len(pads) != 1 {
		t.Fatalf("len(pads) = %d, want only the spawn pad", len(pads))
	}
	if len(report.Warnings) == 0 {
		t.Error("a skipped slot produced no warning")
	}
	if !report.Valid {
		t.Error("a skipped slot must stay a warning, not an error")
	}
}

func TestPlanPadsClearOfOffCenterTruss(t *testing.T) {
	p := testParams(t, nil)
	rooms := []Room{
		{ID: 0, Center: geo.V(0, 0, 0), Size: geo.V(12, 4, 12), Parent: -1},
	}
	door := Door{
		ID: 0, RoomA: 0, RoomB: 0,
		Center: geo.V(6.5, 0, 0), Width: 3, Height: 3,
		Axis: geo.AxisX, WidthAxis: geo.AxisZ,
	}
	truss := Truss{
		ID: 0, Door: 0,
		Center: geo.V(4, 0, 4),
		Size:   geo.V(4, 4, 4),
		Type:   TrussWall,
	}

	pads, _ := PlanPads(rooms, []Door{door}, []Truss{truss}, p, rng.New(7))
	if len(pads) != 1 {
		t.Fatalf("len(pads) = %d, want 1", len(pads))
	}
	pad := pads[0]
	// the floor center is clear of the corner column and wins first
	if !approx(pad.Position.X, 0) || !approx(pad.Position.Z, 0) {
		t.Errorf("spawn pad at (%v, %v), want the floor center", pad.Position.X, pad.Position.Z)
	}
	padBox := geo.NewBox(geo.V(pad.Position.X, pad.Position.Y+1.5, pad.Position.Z), geo.V(3, 3, 3))
	if padBox.ShellsOverlap(truss.Box(), 0) {
		t.Errorf("spawn pad at %v intersects the truss column", pad.Position)
	}
}

func TestPlanPadsGivesUpInFullyBlockedRoom(t *testing.T) {
	p := testParams(t, nil)
	rooms := []Room{
		{ID: 0, Center: geo.V(0, 0, 0), Size: geo.V(12, 4, 12), Parent: -1},
	}
	door := Door{
		ID: 0, RoomA: 0, RoomB: 0,
		Center: geo.V(6.5, 0, 0), Width: 3, Height: 3,
		Axis: geo.AxisX, WidthAxis: geo.AxisZ,
	}
	// a column wider than the room: every candidate collides
	truss := Truss{
		ID: 0, Door: 0,
		Center: geo.V(0, 0, 0),
		Size:   geo.V(16, 4, 16),
		Type:   TrussWall,
	}

	pads, report := PlanPads(rooms, []Door{door}, []Truss{truss}, p, rng.New(7))
	if len(pads) != 0 {
		t.Fatalf("len(pads) = %d, want 0 in a fully blocked room", len(pads))
	}
	if len(report.Warnings) == 0 {
		t.Error("missing spawn pad produced no warning")
	}
}
