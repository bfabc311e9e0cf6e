package plan

import (
	"fmt"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/rng"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// Params holds the flat, resolved configuration the planners consume.
// Derived defaults (door edge margin, truss thickness, light widths)
// are filled in, the seed is resolved to its numeric form, and every
// phase overlay is materialized as its own parameter set.
type Params struct {
	Name    string `json:"name"`
	RawSeed string `json:"raw_seed"`
	Seed    uint32 `json:"seed"`

	BaseUnit           float64       `json:"base_unit"`
	MainPathLength     int           `json:"main_path_length"`
	MaxSegmentsPerPath int           `json:"max_segments_per_path"`
	SpurCount          spec.IntRange `json:"spur_count"`
	Straightness       float64       `json:"straightness"`
	GoalBias           float64       `json:"goal_bias"`
	VerticalChance     float64       `json:"vertical_chance"`
	AllowUp            bool          `json:"allow_up"`
	AllowDown          bool          `json:"allow_down"`
	MinY               float64       `json:"min_y"`
	MaxY               float64       `json:"max_y"`
	ScanDistance       float64       `json:"scan_distance"`
	PlaceRetries       int           `json:"place_retries"`

	SizeRange     spec.FloatRange `json:"size_range"`
	AspectRatio   spec.FloatRange `json:"aspect_ratio"`
	HeightScale   spec.FloatRange `json:"height_scale"`
	GridSnap      float64         `json:"grid_snap"`
	MinRoomSize   float64         `json:"min_room_size"`
	WallThickness float64         `json:"wall_thickness"`

	DoorSize       float64 `json:"door_size"`
	MinDoorSize    float64 `json:"min_door_size"`
	DoorEdgeMargin float64 `json:"door_edge_margin"`

	FloorThreshold float64 `json:"floor_threshold"`
	TrussThickness float64 `json:"truss_thickness"`

	LightWidthRatio float64 `json:"light_width_ratio"`
	LightMinWidth   float64 `json:"light_min_width"`
	LightMaxWidth   float64 `json:"light_max_width"`

	PadCount    int `json:"pad_count"`
	RoomsPerPad int `json:"rooms_per_pad"`

	Origin geo.Vec3   `json:"origin"`
	Goals  []geo.Vec3 `json:"goals,omitempty"`
	Bounds *geo.Box   `json:"bounds,omitempty"`

	Phases []Phase `json:"phases,omitempty"`
}

// Phase is a materialized configuration switch: the trigger plus the
// fully resolved parameters that take effect once it fires.
type Phase struct {
	After  spec.PhaseTrigger `json:"after"`
	Params *Params           `json:"params"`
}

// Resolve computes planner parameters from a schema-valid spec.
// Phase overlays apply cumulatively: each set is layered onto the spec
// produced by the previous phase. Returns the parameters and a
// plan-level validation report; the parameters are usable even when
// the report carries warnings.
func Resolve(s *spec.WarrenSpec) (*Params, *validation.Report) {
	report := validation.NewReport()
	p := resolveBase(s)

	active := s
	for i, ph := range s.Phases {
		overlay := active.Clone()
		overlay.Phases = nil
		if !ph.Set.IsZero() {
			if err := ph.Set.Decode(overlay); err != nil {
				report.AddError(validation.Result{
					Level:    validation.LevelPlan,
					Message:  fmt.Sprintf("phases[%d].set does not decode as a spec overlay: %v", i, err),
					SpecPath: fmt.Sprintf("phases[%d].set", i),
				})
				continue
			}
		}
		pp := resolveBase(overlay)
		validatePlan(pp, fmt.Sprintf("phases[%d].set.", i), report)
		p.Phases = append(p.Phases, Phase{After: ph.After, Params: pp})
		active = overlay
	}

	validatePlan(p, "", report)
	report.AddInfo(validation.Result{
		Level:   validation.LevelPlan,
		Message: fmt.Sprintf("resolved seed %d from %q, %d phase(s)", p.Seed, p.RawSeed, len(p.Phases)),
	})

	return p, report
}

func resolveBase(s *spec.WarrenSpec) *Params {
	base := s.Generator.BaseUnit

	edge := s.Rooms.WallThickness
	if s.Doors.EdgeMargin != nil {
		edge = *s.Doors.EdgeMargin
	}
	thick := base / 2
	if s.Trusses.Thickness != nil {
		thick = *s.Trusses.Thickness
	}
	lightMin := 0.4 * base
	if s.Lights.MinWidth != nil {
		lightMin = *s.Lights.MinWidth
	}
	lightMax := 2 * base
	if s.Lights.MaxWidth != nil {
		lightMax = *s.Lights.MaxWidth
	}

	p := &Params{
		Name:    s.Name,
		RawSeed: string(s.Seed),
		Seed:    rng.SeedFrom(string(s.Seed)),

		BaseUnit:           base,
		MainPathLength:     s.Generator.MainPathLength,
		MaxSegmentsPerPath: s.Generator.MaxSegmentsPerPath,
		SpurCount:          s.Generator.SpurCount,
		Straightness:       s.Generator.Straightness,
		GoalBias:           s.Generator.GoalBias,
		VerticalChance:     s.Generator.VerticalChance,
		AllowUp:            s.Generator.AllowUp,
		AllowDown:          s.Generator.AllowDown,
		MinY:               s.Generator.MinY,
		MaxY:               s.Generator.MaxY,
		ScanDistance:       s.Generator.ScanDistance,
		PlaceRetries:       s.Generator.PlaceRetries,

		SizeRange:     s.Rooms.SizeRange,
		AspectRatio:   s.Rooms.AspectRatio,
		HeightScale:   s.Rooms.HeightScale,
		GridSnap:      s.Rooms.GridSnap,
		MinRoomSize:   s.Rooms.MinSize,
		WallThickness: s.Rooms.WallThickness,

		DoorSize:       s.Doors.Size,
		MinDoorSize:    s.Doors.MinSize,
		DoorEdgeMargin: edge,

		FloorThreshold: s.Trusses.FloorThreshold,
		TrussThickness: thick,

		LightWidthRatio: s.Lights.WidthRatio,
		LightMinWidth:   lightMin,
		LightMaxWidth:   lightMax,

		PadCount:    s.Pads.Count,
		RoomsPerPad: s.Pads.RoomsPerPad,

		Origin: geo.V(s.Origin[0], s.Origin[1], s.Origin[2]),
	}

	for _, g := range s.Goals {
		p.Goals = append(p.Goals, geo.V(g[0], g[1], g[2]))
	}
	if s.Bounds != nil {
		b := geo.BoxFromCorners(
			geo.V(s.Bounds.Min[0], s.Bounds.Min[1], s.Bounds.Min[2]),
			geo.V(s.Bounds.Max[0], s.Bounds.Max[1], s.Bounds.Max[2]),
		)
		p.Bounds = &b
	}
	return p
}

// validatePlan checks relations that only exist after defaults are
// resolved. pathPrefix scopes findings to a phase overlay.
func validatePlan(p *Params, pathPrefix string, report *validation.Report) {
	needed := p.MinDoorSize + 2*p.DoorEdgeMargin
	if needed > p.MinRoomSize {
		report.AddError(validation.Result{
			Level:       validation.LevelPlan,
			Message:     fmt.Sprintf("min door size plus edge margins (%.1f) exceeds the minimum room size (%.1f): no placement can satisfy the door overlap", needed, p.MinRoomSize),
			SpecPath:    pathPrefix + "doors.min_size",
			ActualValue: needed,
			Expected:    fmt.Sprintf("<= %.1f", p.MinRoomSize),
		})
	}

	if p.ScanDistance-p.BaseUnit < p.MinRoomSize {
		report.AddError(validation.Result{
			Level:       validation.LevelPlan,
			Message:     fmt.Sprintf("scan_distance (%.1f) leaves less than one minimum room (%.1f) of forward space", p.ScanDistance, p.MinRoomSize),
			SpecPath:    pathPrefix + "generator.scan_distance",
			ActualValue: p.ScanDistance,
			Expected:    fmt.Sprintf(">= %.1f", p.MinRoomSize+p.BaseUnit),
		})
	}

	if p.GoalBias > 0 && len(p.Goals) == 0 && pathPrefix == "" {
		report.AddInfo(validation.Result{
			Level:    validation.LevelPlan,
			Message:  "goal_bias is set but no goals are defined; the bias never applies",
			SpecPath: "goals",
		})
	}

	if p.Bounds != nil {
		if p.MinY < p.Bounds.Min().Y || p.MaxY > p.Bounds.Max().Y {
			report.AddWarning(validation.Result{
				Level:       validation.LevelPlan,
				Message:     fmt.Sprintf("vertical range %.1f..%.1f extends beyond bounds %.1f..%.1f; bounds govern", p.MinY, p.MaxY, p.Bounds.Min().Y, p.Bounds.Max().Y),
				SpecPath:    pathPrefix + "generator.min_y",
				ActualValue: fmt.Sprintf("%.1f..%.1f", p.MinY, p.MaxY),
			})
		}
	}
}
