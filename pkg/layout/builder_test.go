package layout

import (
	"reflect"
	"testing"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/rng"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
)

func testParams(t *testing.T, mutate func(*spec.WarrenSpec)) *plan.Params {
	t.Helper()
	s := spec.Default()
	if mutate != nil {
		mutate(s)
	}
	p, report := plan.Resolve(s)
	if !report.Valid {
		t.Fatalf("Resolve() failed: %+v", report.Errors)
	}
	return p
}

func buildRooms(t *testing.T, p *plan.Params) []Room {
	t.Helper()
	b := NewBuilder(p, rng.New(p.Seed))
	rooms, report := b.Build()
	if !report.Valid {
		t.Fatalf("Build() failed: %+v", report.Errors)
	}
	return rooms
}

func connected(a, b Room) bool {
	for _, id := range a.Connections {
		if id == b.ID {
			return true
		}
	}
	return false
}

func TestBuildThreeRoomChain(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) {
		s.Seed = "42"
		s.Generator.MainPathLength = 3
		s.Generator.SpurCount = spec.IntRange{}
	})
	rooms := buildRooms(t, p)

	if len(rooms) != 3 {
		t.Fatalf("len(rooms) = %d, want exactly 3", len(rooms))
	}
	if rooms[0].Parent != -1 {
		t.Errorf("root parent = %d, want -1", rooms[0].Parent)
	}
	for i := 1; i < 3; i++ {
		if rooms[i].Parent != i-1 {
			t.Errorf("room %d parent = %d, want %d", i, rooms[i].Parent, i-1)
		}
		if !connected(rooms[i], rooms[i-1]) || !connected(rooms[i-1], rooms[i]) {
			t.Errorf("rooms %d and %d are not mutually connected", i-1, i)
		}
	}
	if len(rooms[0].Connections) != 1 || len(rooms[2].Connections) != 1 {
		t.Error("chain ends must have exactly one connection")
	}
	if len(rooms[1].Connections) != 2 {
		t.Errorf("middle room has %d connections, want 2", len(rooms[1].Connections))
	}
}

func TestBuildDeterministic(t *testing.T) {
	p := testParams(t, nil)
	a := buildRooms(t, p)
	b := buildRooms(t, p)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical parameters produced different room graphs")
	}
}

func TestBuildSeedsDiverge(t *testing.T) {
	a := buildRooms(t, testParams(t, func(s *spec.WarrenSpec) { s.Seed = "12" }))
	b := buildRooms(t, testParams(t, func(s *spec.WarrenSpec) { s.Seed = "13" }))
	if reflect.DeepEqual(a, b) {
		t.Error("different seeds produced identical room graphs")
	}
}

func TestBuildNoIllegalOverlap(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) {
		s.Seed = "warren"
	})
	rooms := buildRooms(t, p)
	if len(rooms) < 4 {
		t.Fatalf("build produced only %d rooms", len(rooms))
	}
	for i, a := range rooms {
		for _, b := range rooms[i+1:] {
			if connected(a, b) {
				continue
			}
			if a.Box().ShellsOverlap(b.Box(), p.WallThickness) {
				t.Errorf("unconnected rooms %d and %d overlap with margins applied", a.ID, b.ID)
			}
		}
	}
}

func TestBuildFlatWhenVerticalDisallowed(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) {
		s.Seed = "7"
		s.Generator.AllowUp = false
		s.Generator.AllowDown = false
	})
	rooms := buildRooms(t, p)
	for _, r := range rooms {
		if r.Center.Y != rooms[0].Center.Y {
			t.Errorf("room %d center Y = %v, want root level %v", r.ID, r.Center.Y, rooms[0].Center.Y)
		}
		if r.AttachFace.Vertical() {
			t.Errorf("room %d attached on vertical face %s", r.ID, r.AttachFace)
		}
	}
}

func TestBuildSpursBranchFromJunctions(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) {
		s.Seed = "9"
		s.Generator.MainPathLength = 4
		s.Generator.SpurCount = spec.IntRange{Min: 3, Max: 3}
	})
	rooms := buildRooms(t, p)

	var spurs []Room
	for _, r := range rooms {
		if r.Path == PathSpur {
			spurs = append(spurs, r)
		}
	}
	if len(spurs) == 0 {
		t.Fatal("no spur rooms were placed")
	}
	for _, r := range spurs {
		if r.Parent < 0 {
			t.Errorf("spur room %d has no parent", r.ID)
		}
	}

	// the first room of a spur attaches to a former two-connection
	// room, giving it a third
	hasJunction := false
	for _, r := range rooms {
		if len(r.Connections) >= 3 {
			hasJunction = true
		}
	}
	if !hasJunction {
		t.Error("no room gained a third connection from a spur")
	}
}

func TestBuildRespectsBounds(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) {
		s.Seed = "3"
		s.Bounds = &spec.BoundsDef{Min: [3]float64{-40, -40, -40}, Max: [3]float64{40, 40, 40}}
	})
	rooms := buildRooms(t, p)
	for _, r := range rooms {
		if !p.Bounds.ContainsBox(r.Box().Expand(p.WallThickness)) {
			t.Errorf("room %d shell leaves the world bounds", r.ID)
		}
	}
}

func TestBuildRespectsVerticalBand(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) {
		s.Seed = "5"
		s.Generator.VerticalChance = 80
		s.Generator.MinY = -12
		s.Generator.MaxY = 12
	})
	rooms := buildRooms(t, p)
	for _, r := range rooms {
		box := r.Box()
		if box.Min().Y < p.MinY-geo.Epsilon || box.Max().Y > p.MaxY+geo.Epsilon {
			t.Errorf("room %d spans %v..%v, outside the %v..%v band", r.ID, box.Min().Y, box.Max().Y, p.MinY, p.MaxY)
		}
	}
}

func TestBuildPhaseSwitch(t *testing.T) {
	data := []byte(`
seed: 11
generator:
  main_path_length: 8
phases:
  - after: {rooms: 4}
    set:
      generator:
        straightness: 97
`)
	s, err := spec.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p, report := plan.Resolve(s)
	if !report.Valid {
		t.Fatalf("Resolve() failed: %+v", report.Errors)
	}

	b := NewBuilder(p, rng.New(p.Seed))
	rooms, _ := b.Build()
	if len(rooms) < 4 {
		t.Fatalf("build produced only %d rooms, phase trigger never reachable", len(rooms))
	}
	if b.ActiveParams() == p {
		t.Fatal("phase parameters never took effect")
	}
	if b.ActiveParams().Straightness != 97 {
		t.Errorf("active straightness = %v, want the phase overlay's 97", b.ActiveParams().Straightness)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	p := testParams(t, nil)
	b := NewBuilder(p, rng.New(p.Seed))
	first, _ := b.Build()
	second, report := b.Build()
	if report.Valid {
		t.Error("second Build() did not report an error")
	}
	if len(second) != len(first) {
		t.Errorf("second Build() returned %d rooms, want the existing %d", len(second), len(first))
	}
}

func TestBuildRoomDimensions(t *testing.T) {
	p := testParams(t, func(s *spec.WarrenSpec) { s.Seed = "21" })
	rooms := buildRooms(t, p)
	for _, r := range rooms {
		for _, a := range geo.Axes {
			d := r.Size.Component(a)
			if d < p.MinRoomSize-geo.Epsilon {
				t.Errorf("room %d dimension on %s = %v, below minimum %v", r.ID, a, d, p.MinRoomSize)
			}
		}
	}
}
