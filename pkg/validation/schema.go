package validation

import (
	"fmt"

	"github.com/purefictiongames/Warren-sub010/pkg/spec"
)

// ValidateSchema performs Level 1 (schema) validation on a parsed
// WarrenSpec. It checks structural correctness before any generation.
func ValidateSchema(s *spec.WarrenSpec) *Report {
	r := NewReport()

	validateGenerator(s, r)
	validateRooms(s, r)
	validateDoors(s, r)
	validateTrusses(s, r)
	validateLights(s, r)
	validatePads(s, r)
	validateBounds(s, r)
	validatePhases(s, r)

	return r
}

func validateGenerator(s *spec.WarrenSpec, r *Report) {
	g := s.Generator

	if g.BaseUnit <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "base_unit must be greater than 0",
			SpecPath:    "generator.base_unit",
			ActualValue: g.BaseUnit,
			Expected:    "> 0",
		})
	}
	if g.MainPathLength < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "main_path_length must be at least 1 (the root room)",
			SpecPath:    "generator.main_path_length",
			ActualValue: g.MainPathLength,
			Expected:    ">= 1",
		})
	}
	if g.MaxSegmentsPerPath < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "max_segments_per_path must be at least 1",
			SpecPath:    "generator.max_segments_per_path",
			ActualValue: g.MaxSegmentsPerPath,
			Expected:    ">= 1",
		})
	}
	if g.SpurCount.Min < 0 || g.SpurCount.Max < g.SpurCount.Min {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("spur_count range %d-%d is invalid", g.SpurCount.Min, g.SpurCount.Max),
			SpecPath:    "generator.spur_count",
			ActualValue: fmt.Sprintf("%d-%d", g.SpurCount.Min, g.SpurCount.Max),
			Expected:    "0 <= min <= max",
		})
	}

	for _, pct := range []struct {
		name  string
		value float64
	}{
		{"straightness", g.Straightness},
		{"goal_bias", g.GoalBias},
		{"vertical_chance", g.VerticalChance},
	} {
		if pct.value < 0 || pct.value > 100 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s must be a percentage", pct.name),
				SpecPath:    "generator." + pct.name,
				ActualValue: pct.value,
				Expected:    "0-100",
			})
		}
	}

	if g.MinY >= g.MaxY {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("min_y (%.1f) must be less than max_y (%.1f)", g.MinY, g.MaxY),
			SpecPath:    "generator.min_y",
			ActualValue: fmt.Sprintf("%.1f..%.1f", g.MinY, g.MaxY),
		})
	}
	if g.ScanDistance <= g.BaseUnit {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "scan_distance must exceed one base unit or no room can ever be placed",
			SpecPath:    "generator.scan_distance",
			ActualValue: g.ScanDistance,
			Expected:    fmt.Sprintf("> %.1f", g.BaseUnit),
		})
	}
	if g.PlaceRetries < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "place_retries must be non-negative",
			SpecPath:    "generator.place_retries",
			ActualValue: g.PlaceRetries,
			Expected:    ">= 0",
		})
	}
}

func validateRooms(s *spec.WarrenSpec, r *Report) {
	rm := s.Rooms

	for _, rg := range []struct {
		name string
		rng  spec.FloatRange
	}{
		{"size_range", rm.SizeRange},
		{"aspect_ratio", rm.AspectRatio},
		{"height_scale", rm.HeightScale},
	} {
		if rg.rng.Min <= 0 || rg.rng.Max < rg.rng.Min {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("rooms.%s range %.2f-%.2f is invalid", rg.name, rg.rng.Min, rg.rng.Max),
				SpecPath:    "rooms." + rg.name,
				ActualValue: fmt.Sprintf("%.2f-%.2f", rg.rng.Min, rg.rng.Max),
				Expected:    "0 < min <= max",
			})
		}
	}

	if rm.GridSnap <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "grid_snap must be greater than 0",
			SpecPath:    "rooms.grid_snap",
			ActualValue: rm.GridSnap,
			Expected:    "> 0",
		})
	}
	if rm.MinSize <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "min_size must be greater than 0",
			SpecPath:    "rooms.min_size",
			ActualValue: rm.MinSize,
			Expected:    "> 0",
		})
	}
	if rm.WallThickness < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "wall_thickness must be non-negative",
			SpecPath:    "rooms.wall_thickness",
			ActualValue: rm.WallThickness,
			Expected:    ">= 0",
		})
	}
}

func validateDoors(s *spec.WarrenSpec, r *Report) {
	d := s.Doors

	if d.Size <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "doors.size must be greater than 0",
			SpecPath:    "doors.size",
			ActualValue: d.Size,
			Expected:    "> 0",
		})
	}
	if d.MinSize < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "doors.min_size must be non-negative",
			SpecPath:    "doors.min_size",
			ActualValue: d.MinSize,
			Expected:    ">= 0",
		})
	}
	if d.MinSize > d.Size {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("doors.min_size (%.1f) exceeds doors.size (%.1f); doors will clamp to min_size availability only", d.MinSize, d.Size),
			SpecPath:    "doors.min_size",
			ActualValue: d.MinSize,
			Suggestions: []string{"Set doors.size >= doors.min_size"},
		})
	}
	if d.EdgeMargin != nil && *d.EdgeMargin < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "doors.edge_margin must be non-negative",
			SpecPath:    "doors.edge_margin",
			ActualValue: *d.EdgeMargin,
			Expected:    ">= 0",
		})
	}
	if d.MinSize > s.Rooms.MinSize {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("doors.min_size (%.1f) exceeds rooms.min_size (%.1f): no placement could ever satisfy the door overlap", d.MinSize, s.Rooms.MinSize),
			SpecPath:    "doors.min_size",
			ActualValue: d.MinSize,
			Expected:    fmt.Sprintf("<= %.1f", s.Rooms.MinSize),
		})
	}
}

func validateTrusses(s *spec.WarrenSpec, r *Report) {
	if s.Trusses.FloorThreshold < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "trusses.floor_threshold must be non-negative",
			SpecPath:    "trusses.floor_threshold",
			ActualValue: s.Trusses.FloorThreshold,
			Expected:    ">= 0",
		})
	}
	if s.Trusses.Thickness != nil && *s.Trusses.Thickness <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "trusses.thickness must be greater than 0 when set",
			SpecPath:    "trusses.thickness",
			ActualValue: *s.Trusses.Thickness,
			Expected:    "> 0",
		})
	}
}

func validateLights(s *spec.WarrenSpec, r *Report) {
	l := s.Lights

	if l.WidthRatio <= 0 || l.WidthRatio > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "lights.width_ratio must be in (0, 1]",
			SpecPath:    "lights.width_ratio",
			ActualValue: l.WidthRatio,
			Expected:    "0 < ratio <= 1",
		})
	}
	if l.MinWidth != nil && l.MaxWidth != nil && *l.MinWidth > *l.MaxWidth {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("lights.min_width (%.1f) exceeds lights.max_width (%.1f)", *l.MinWidth, *l.MaxWidth),
			SpecPath:    "lights.min_width",
			ActualValue: *l.MinWidth,
		})
	}
}

func validatePads(s *spec.WarrenSpec, r *Report) {
	if s.Pads.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "pads.count must be non-negative",
			SpecPath:    "pads.count",
			ActualValue: s.Pads.Count,
			Expected:    ">= 0",
		})
	}
	if s.Pads.Count == 0 && s.Pads.RoomsPerPad < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "pads.rooms_per_pad must be at least 1 when pads.count is 0",
			SpecPath:    "pads.rooms_per_pad",
			ActualValue: s.Pads.RoomsPerPad,
			Expected:    ">= 1",
		})
	}
}

func validateBounds(s *spec.WarrenSpec, r *Report) {
	if s.Bounds == nil {
		return
	}
	axes := [3]string{"x", "y", "z"}
	for i := range axes {
		if s.Bounds.Min[i] >= s.Bounds.Max[i] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("bounds min %s (%.1f) must be less than max %s (%.1f)", axes[i], s.Bounds.Min[i], axes[i], s.Bounds.Max[i]),
				SpecPath:    "bounds",
				ActualValue: fmt.Sprintf("%.1f..%.1f", s.Bounds.Min[i], s.Bounds.Max[i]),
			})
		}
	}
	for i := range axes {
		if s.Origin[i] < s.Bounds.Min[i] || s.Origin[i] > s.Bounds.Max[i] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("origin %s (%.1f) lies outside bounds", axes[i], s.Origin[i]),
				SpecPath:    "origin",
				ActualValue: s.Origin[i],
				Expected:    fmt.Sprintf("%.1f..%.1f", s.Bounds.Min[i], s.Bounds.Max[i]),
			})
		}
	}
	for gi, goal := range s.Goals {
		for i := range axes {
			if goal[i] < s.Bounds.Min[i] || goal[i] > s.Bounds.Max[i] {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("goals[%d] %s (%.1f) lies outside bounds; growth toward it will stall at the boundary", gi, axes[i], goal[i]),
					SpecPath:    fmt.Sprintf("goals[%d]", gi),
					ActualValue: goal[i],
				})
			}
		}
	}
}

func validatePhases(s *spec.WarrenSpec, r *Report) {
	for i, ph := range s.Phases {
		hasRooms := ph.After.Rooms > 0
		hasPaths := ph.After.Paths > 0
		if hasRooms == hasPaths {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("phases[%d].after must set exactly one of rooms or paths to a positive count", i),
				SpecPath:    fmt.Sprintf("phases[%d].after", i),
				ActualValue: fmt.Sprintf("rooms:%d paths:%d", ph.After.Rooms, ph.After.Paths),
			})
		}
		if ph.Set.IsZero() {
			r.AddWarning(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("phases[%d].set is empty; the phase switch will have no effect", i),
				SpecPath: fmt.Sprintf("phases[%d].set", i),
			})
		}
	}
}
