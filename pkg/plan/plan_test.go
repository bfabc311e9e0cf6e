package plan

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/purefictiongames/Warren-sub010/pkg/spec"
)

func TestResolveFillsDerivedDefaults(t *testing.T) {
	s := spec.Default()
	p, report := Resolve(s)

	if !report.Valid {
		t.Fatalf("Resolve on defaults reported invalid: %+v", report.Errors)
	}
	if p.DoorEdgeMargin != s.Rooms.WallThickness {
		t.Errorf("DoorEdgeMargin = %v, want wall thickness %v", p.DoorEdgeMargin, s.Rooms.WallThickness)
	}
	if p.TrussThickness != s.Generator.BaseUnit/2 {
		t.Errorf("TrussThickness = %v, want %v", p.TrussThickness, s.Generator.BaseUnit/2)
	}
	if p.LightMinWidth != 0.4*s.Generator.BaseUnit {
		t.Errorf("LightMinWidth = %v, want %v", p.LightMinWidth, 0.4*s.Generator.BaseUnit)
	}
	if p.LightMaxWidth != 2*s.Generator.BaseUnit {
		t.Errorf("LightMaxWidth = %v, want %v", p.LightMaxWidth, 2*s.Generator.BaseUnit)
	}
}

func TestResolveHonorsExplicitOverrides(t *testing.T) {
	s := spec.Default()
	edge := 0.0
	thick := 1.25
	s.Doors.EdgeMargin = &edge
	s.Trusses.Thickness = &thick

	p, _ := Resolve(s)

	if p.DoorEdgeMargin != 0 {
		t.Errorf("DoorEdgeMargin = %v, want explicit 0", p.DoorEdgeMargin)
	}
	if p.TrussThickness != 1.25 {
		t.Errorf("TrussThickness = %v, want 1.25", p.TrussThickness)
	}
}

func TestResolveSeed(t *testing.T) {
	s := spec.Default()
	s.Seed = "42"
	p, _ := Resolve(s)
	if p.Seed != 42 {
		t.Errorf("numeric seed resolved to %d, want 42", p.Seed)
	}
	if p.RawSeed != "42" {
		t.Errorf("RawSeed = %q, want the original text", p.RawSeed)
	}

	s.Seed = "warren"
	p, _ = Resolve(s)
	if p.Seed != 2276 {
		t.Errorf("string seed resolved to %d, want 2276", p.Seed)
	}
}

func TestResolveConvertsGeometry(t *testing.T) {
	s := spec.Default()
	s.Origin = [3]float64{1, 2, 3}
	s.Goals = [][3]float64{{120, 0, -40}}
	s.Bounds = &spec.BoundsDef{Min: [3]float64{-200, -60, -200}, Max: [3]float64{200, 60, 200}}

	p, _ := Resolve(s)

	if p.Origin.X != 1 || p.Origin.Y != 2 || p.Origin.Z != 3 {
		t.Errorf("Origin = %+v, want (1, 2, 3)", p.Origin)
	}
	if len(p.Goals) != 1 || p.Goals[0].Z != -40 {
		t.Errorf("Goals = %+v, want one goal at Z=-40", p.Goals)
	}
	if p.Bounds == nil {
		t.Fatal("Bounds not resolved")
	}
	if p.Bounds.Center.X != 0 || p.Bounds.Size.X != 400 {
		t.Errorf("Bounds = %+v, want centered box of width 400", p.Bounds)
	}
}

func TestResolveMaterializesPhases(t *testing.T) {
	data := []byte(`
seed: 7
phases:
  - after: {rooms: 6}
    set:
      generator:
        vertical_chance: 80
      rooms:
        size_range: {min: 0.8, max: 1.1}
`)
	s, err := spec.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	p, report := Resolve(s)
	if !report.Valid {
		t.Fatalf("Resolve reported invalid: %+v", report.Errors)
	}
	if len(p.Phases) != 1 {
		t.Fatalf("len(Phases) = %d, want 1", len(p.Phases))
	}

	ph := p.Phases[0]
	if ph.After.Rooms != 6 {
		t.Errorf("phase trigger rooms = %d, want 6", ph.After.Rooms)
	}
	if ph.Params.VerticalChance != 80 {
		t.Errorf("phase vertical chance = %v, want 80", ph.Params.VerticalChance)
	}
	if ph.Params.SizeRange.Max != 1.1 {
		t.Errorf("phase size range max = %v, want 1.1", ph.Params.SizeRange.Max)
	}
	if ph.Params.Straightness != p.Straightness {
		t.Errorf("untouched phase field = %v, want inherited %v", ph.Params.Straightness, p.Straightness)
	}
	if p.VerticalChance == 80 {
		t.Error("phase overlay leaked into the base parameters")
	}
	if ph.Params.Phases != nil {
		t.Error("phase parameters must not nest further phases")
	}
}

func TestResolvePhasesStackCumulatively(t *testing.T) {
	data := []byte(`
phases:
  - after: {rooms: 4}
    set:
      generator:
        vertical_chance: 70
  - after: {paths: 2}
    set:
      generator:
        straightness: 20
`)
	s, err := spec.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	p, report := Resolve(s)
	if !report.Valid {
		t.Fatalf("Resolve reported invalid: %+v", report.Errors)
	}
	if len(p.Phases) != 2 {
		t.Fatalf("len(Phases) = %d, want 2", len(p.Phases))
	}
	second := p.Phases[1].Params
	if second.VerticalChance != 70 {
		t.Errorf("second phase vertical chance = %v, want 70 carried over from the first", second.VerticalChance)
	}
	if second.Straightness != 20 {
		t.Errorf("second phase straightness = %v, want 20", second.Straightness)
	}
}

func TestResolveLeavesSourceSpecIntact(t *testing.T) {
	data := []byte(`
doors:
  edge_margin: 0.75
phases:
  - after: {rooms: 3}
    set:
      doors:
        edge_margin: 0.25
`)
	s, err := spec.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	p, _ := Resolve(s)

	if got := *s.Doors.EdgeMargin; got != 0.75 {
		t.Errorf("source spec edge margin = %v after Resolve, want 0.75", got)
	}
	if p.DoorEdgeMargin != 0.75 {
		t.Errorf("base edge margin = %v, want 0.75", p.DoorEdgeMargin)
	}
	if p.Phases[0].Params.DoorEdgeMargin != 0.25 {
		t.Errorf("phase edge margin = %v, want 0.25", p.Phases[0].Params.DoorEdgeMargin)
	}
}

func TestResolveRejectsBadPhaseOverlay(t *testing.T) {
	s := spec.Default()
	var node yaml.Node
	if err := yaml.Unmarshal([]byte("generator: [not, a, mapping]"), &node); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	s.Phases = []spec.PhaseDef{{After: spec.PhaseTrigger{Rooms: 3}, Set: *node.Content[0]}}

	_, report := Resolve(s)
	if report.Valid {
		t.Error("undecodable phase overlay passed resolution")
	}
}

func TestResolveFlagsImpossibleDoorFit(t *testing.T) {
	s := spec.Default()
	s.Doors.MinSize = 3.5
	edge := 1.0
	s.Doors.EdgeMargin = &edge
	// 3.5 + 2*1.0 > min room size 4.

	_, report := Resolve(s)
	if report.Valid {
		t.Error("door that cannot fit the smallest room passed resolution")
	}
}

func TestResolveFlagsShortScanDistance(t *testing.T) {
	s := spec.Default()
	s.Generator.ScanDistance = 8
	// 8 - 5 < min room size 4.

	_, report := Resolve(s)
	if report.Valid {
		t.Error("scan distance shorter than one room passed resolution")
	}
}
