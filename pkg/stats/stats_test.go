package stats

import (
	"math"
	"testing"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/layout"
	"github.com/purefictiongames/Warren-sub010/pkg/scene"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
)

// fixtureLayout is a hand-built three-room warren with one artifact of
// every kind, sized for exact arithmetic: a wide root, a main-path
// room east of it, and a spur room stacked above that.
func fixtureLayout() *scene.Layout {
	sill := 0.5
	return &scene.Layout{
		Name:          "fixture",
		Seed:          "fixture",
		SeedValue:     101,
		WallThickness: 0.5,
		Bounds: scene.BoundingBox{
			Min: geo.V(-3.5, -2.5, -3.5),
			Max: geo.V(8.5, 7.5, 3.5),
		},
		Rooms: []layout.Room{
			{ID: 0, Center: geo.V(0, 0, 0), Size: geo.V(6, 4, 6), Parent: -1, Connections: []int{1}, Path: layout.PathMain},
			{ID: 1, Center: geo.V(6, 0, 0), Size: geo.V(4, 4, 4), Parent: 0, Connections: []int{0, 2}, Path: layout.PathMain, AttachFace: geo.FaceEast},
			{ID: 2, Center: geo.V(6, 5, 0), Size: geo.V(4, 4, 4), Parent: 1, Connections: []int{1}, Path: layout.PathSpur, AttachFace: geo.FaceUp},
		},
		Doors: []layout.Door{
			{ID: 0, RoomA: 0, RoomB: 1, Center: geo.V(3.5, 1.75, 0), Width: 3, Height: 2.5, Axis: geo.AxisX, WidthAxis: geo.AxisZ, Bottom: &sill},
			{ID: 1, RoomA: 1, RoomB: 2, Center: geo.V(6, 2.5, 0), Width: 0, Height: 3, Axis: geo.AxisY, WidthAxis: geo.AxisX},
		},
		Trusses: []layout.Truss{
			{ID: 0, Door: 0, Center: geo.V(5.25, -0.75, 0), Size: geo.V(2.5, 2.5, 2.5), Type: layout.TrussWall},
			{ID: 1, Door: 1, Center: geo.V(6, 0.5, 0), Size: geo.V(2.5, 5, 2.5), Type: layout.TrussCeiling},
		},
		Lights: []layout.Light{
			{ID: 0, Room: 0, Face: geo.FaceNorth},
			{ID: 1, Room: 1, Face: geo.FaceNorth},
			{ID: 2, Room: 2, Face: geo.FaceEast},
		},
		Pads: []layout.Pad{
			{ID: 0, Room: 0, Position: geo.V(0, -2, 0), Spawn: true},
		},
		Spawn:     geo.V(0, -2, 0),
		SpawnRoom: 0,
	}
}

func TestSummarizeFixtureCounts(t *testing.T) {
	s := Summarize(fixtureLayout())

	if s.Rooms.Count != 3 || s.Rooms.Main != 2 || s.Rooms.Spur != 1 {
		t.Errorf("rooms = %d (main %d, spur %d), want 3 (2, 1)", s.Rooms.Count, s.Rooms.Main, s.Rooms.Spur)
	}
	if s.Rooms.MaxDepth != 2 {
		t.Errorf("max depth = %d, want 2", s.Rooms.MaxDepth)
	}
	if s.Doors.Count != 2 || s.Doors.Wall != 1 || s.Doors.Vertical != 1 {
		t.Errorf("doors = %d (wall %d, vertical %d), want 2 (1, 1)", s.Doors.Count, s.Doors.Wall, s.Doors.Vertical)
	}
	if s.Doors.Degenerate != 1 {
		t.Errorf("degenerate doors = %d, want 1", s.Doors.Degenerate)
	}
	if s.Trusses.Count != 2 || s.Trusses.Ceiling != 1 || s.Trusses.Wall != 1 {
		t.Errorf("trusses = %d (ceiling %d, wall %d), want 2 (1, 1)", s.Trusses.Count, s.Trusses.Ceiling, s.Trusses.Wall)
	}
	if s.Lights != 3 {
		t.Errorf("lights = %d, want 3", s.Lights)
	}
	if s.Pads != 1 {
		t.Errorf("pads = %d, want 1", s.Pads)
	}
}

func TestSummarizeFixtureVolumes(t *testing.T) {
	s := Summarize(fixtureLayout())

	// 6*4*6 + 4*4*4 + 4*4*4 = 272
	if math.Abs(s.Rooms.CavityVolume-272) > 1e-9 {
		t.Errorf("cavity volume = %.3f, want 272", s.Rooms.CavityVolume)
	}
	if math.Abs(s.Rooms.MeanVolume-272.0/3.0) > 1e-9 {
		t.Errorf("mean volume = %.3f, want %.3f", s.Rooms.MeanVolume, 272.0/3.0)
	}
	if math.Abs(s.Doors.MeanWidth-1.5) > 1e-9 {
		t.Errorf("mean door width = %.3f, want 1.5", s.Doors.MeanWidth)
	}
}

func TestSummarizeFixtureExtent(t *testing.T) {
	s := Summarize(fixtureLayout())

	want := geo.V(12, 10, 7)
	if s.Extent != want {
		t.Errorf("extent = %v, want %v", s.Extent, want)
	}
	if s.FloorLevels != 2 {
		t.Errorf("floor levels = %d, want 2", s.FloorLevels)
	}
}

func TestSummarizeEmptyLayout(t *testing.T) {
	s := Summarize(&scene.Layout{Name: "empty"})

	if s.Rooms.Count != 0 || s.Rooms.CavityVolume != 0 || s.Rooms.MeanVolume != 0 {
		t.Errorf("empty layout rooms = %+v", s.Rooms)
	}
	if s.Doors.Count != 0 || s.Doors.MeanWidth != 0 {
		t.Errorf("empty layout doors = %+v", s.Doors)
	}
}

func TestSummarizeGeneratedLayout(t *testing.T) {
	ws := spec.Default()
	ws.Seed = "warren"
	l, report := scene.Generate(ws)
	if !report.Valid {
		t.Fatalf("generation failed: %s", report.Summary)
	}

	s := Summarize(l)

	if s.Rooms.Count != len(l.Rooms) {
		t.Errorf("room count = %d, layout has %d", s.Rooms.Count, len(l.Rooms))
	}
	if s.Rooms.Main+s.Rooms.Spur != s.Rooms.Count {
		t.Errorf("main %d + spur %d != count %d", s.Rooms.Main, s.Rooms.Spur, s.Rooms.Count)
	}
	if s.Lights != s.Rooms.Count {
		t.Errorf("lights = %d, expected one per room (%d)", s.Lights, s.Rooms.Count)
	}
	// Every dimension is floored at the minimum room size, so the mean
	// cavity volume cannot drop below its cube.
	if s.Rooms.MeanVolume < 64 {
		t.Errorf("mean volume = %.1f, below the 4^3 floor", s.Rooms.MeanVolume)
	}
	if s.Doors.Degenerate != 0 {
		t.Errorf("%d degenerate doors with default clamps", s.Doors.Degenerate)
	}
	if s.Extent.X <= 0 || s.Extent.Y <= 0 || s.Extent.Z <= 0 {
		t.Errorf("extent %v is not positive", s.Extent)
	}
	t.Logf("generated: %d rooms (depth %d), %d doors, %d trusses, %d floor levels",
		s.Rooms.Count, s.Rooms.MaxDepth, s.Doors.Count, s.Trusses.Count, s.FloorLevels)
}
