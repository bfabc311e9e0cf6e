package spec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WarrenSpec is the top-level specification for a warren: one connected
// graph of rooms plus the artifacts derived from it. Specs are loaded
// by layering the project file over the built-in defaults and an
// optional named preset, so files only state what they change.
type WarrenSpec struct {
	SpecVersion string       `yaml:"spec_version" json:"spec_version"`
	Name        string       `yaml:"name" json:"name"`
	Seed        Seed         `yaml:"seed" json:"seed"`
	Preset      string       `yaml:"preset" json:"preset,omitempty"`
	Generator   GeneratorDef `yaml:"generator" json:"generator"`
	Rooms       RoomsDef     `yaml:"rooms" json:"rooms"`
	Doors       DoorsDef     `yaml:"doors" json:"doors"`
	Trusses     TrussesDef   `yaml:"trusses" json:"trusses"`
	Lights      LightsDef    `yaml:"lights" json:"lights"`
	Pads        PadsDef      `yaml:"pads" json:"pads"`
	Origin      [3]float64   `yaml:"origin" json:"origin"`
	Goals       [][3]float64 `yaml:"goals" json:"goals,omitempty"`
	Bounds      *BoundsDef   `yaml:"bounds" json:"bounds,omitempty"`
	Phases      []PhaseDef   `yaml:"phases" json:"phases,omitempty"`
}

// Clone returns a deep copy of the spec. Phase overlays decode into
// clones so the source document is never written through a shared
// pointer field.
func (s *WarrenSpec) Clone() *WarrenSpec {
	c := *s
	c.Doors.EdgeMargin = clonePtr(s.Doors.EdgeMargin)
	c.Trusses.Thickness = clonePtr(s.Trusses.Thickness)
	c.Lights.MinWidth = clonePtr(s.Lights.MinWidth)
	c.Lights.MaxWidth = clonePtr(s.Lights.MaxWidth)
	if s.Bounds != nil {
		b := *s.Bounds
		c.Bounds = &b
	}
	c.Goals = append([][3]float64(nil), s.Goals...)
	c.Phases = append([]PhaseDef(nil), s.Phases...)
	return &c
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Seed is a YAML scalar that may be written as an integer or a string.
// The raw text is preserved here; resolution to a numeric seed happens
// during parameter resolution.
type Seed string

// UnmarshalYAML accepts any scalar and keeps its raw text.
func (s *Seed) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("seed must be a scalar, got %s", value.Tag)
	}
	*s = Seed(value.Value)
	return nil
}

// GeneratorDef controls the room graph builder: path shape, growth
// biases, vertical limits, and placement retry budget.
type GeneratorDef struct {
	BaseUnit           float64  `yaml:"base_unit" json:"base_unit"`
	MainPathLength     int      `yaml:"main_path_length" json:"main_path_length"`
	MaxSegmentsPerPath int      `yaml:"max_segments_per_path" json:"max_segments_per_path"`
	SpurCount          IntRange `yaml:"spur_count" json:"spur_count"`
	Straightness       float64  `yaml:"straightness" json:"straightness"`
	GoalBias           float64  `yaml:"goal_bias" json:"goal_bias"`
	VerticalChance     float64  `yaml:"vertical_chance" json:"vertical_chance"`
	AllowUp            bool     `yaml:"allow_up" json:"allow_up"`
	AllowDown          bool     `yaml:"allow_down" json:"allow_down"`
	MinY               float64  `yaml:"min_y" json:"min_y"`
	MaxY               float64  `yaml:"max_y" json:"max_y"`
	ScanDistance       float64  `yaml:"scan_distance" json:"scan_distance"`
	PlaceRetries       int      `yaml:"place_retries" json:"place_retries"`
}

// RoomsDef controls room dimensions. Multipliers are in base units;
// grid_snap, min_size and wall_thickness are in world units.
type RoomsDef struct {
	SizeRange     FloatRange `yaml:"size_range" json:"size_range"`
	AspectRatio   FloatRange `yaml:"aspect_ratio" json:"aspect_ratio"`
	HeightScale   FloatRange `yaml:"height_scale" json:"height_scale"`
	GridSnap      float64    `yaml:"grid_snap" json:"grid_snap"`
	MinSize       float64    `yaml:"min_size" json:"min_size"`
	WallThickness float64    `yaml:"wall_thickness" json:"wall_thickness"`
}

// DoorsDef controls doorway dimensions. EdgeMargin defaults to the
// wall thickness when omitted.
type DoorsDef struct {
	Size       float64  `yaml:"size" json:"size"`
	MinSize    float64  `yaml:"min_size" json:"min_size"`
	EdgeMargin *float64 `yaml:"edge_margin" json:"edge_margin,omitempty"`
}

// TrussesDef controls vertical supports at doorways. Thickness
// defaults to half a base unit when omitted.
type TrussesDef struct {
	FloorThreshold float64  `yaml:"floor_threshold" json:"floor_threshold"`
	Thickness      *float64 `yaml:"thickness" json:"thickness,omitempty"`
}

// LightsDef controls the per-room wall fixture footprint. Min and max
// width default to fractions of the base unit when omitted.
type LightsDef struct {
	WidthRatio float64  `yaml:"width_ratio" json:"width_ratio"`
	MinWidth   *float64 `yaml:"min_width" json:"min_width,omitempty"`
	MaxWidth   *float64 `yaml:"max_width" json:"max_width,omitempty"`
}

// PadsDef controls interaction pad density. A positive Count takes
// precedence over RoomsPerPad.
type PadsDef struct {
	Count       int `yaml:"count" json:"count"`
	RoomsPerPad int `yaml:"rooms_per_pad" json:"rooms_per_pad"`
}

// BoundsDef is an optional world-bounds box given as min/max corners.
type BoundsDef struct {
	Min [3]float64 `yaml:"min" json:"min"`
	Max [3]float64 `yaml:"max" json:"max"`
}

// PhaseDef redefines parts of the active configuration once a trigger
// is met. Set holds an arbitrary partial spec in the same schema as
// the main file and is overlaid when the phase fires.
type PhaseDef struct {
	After PhaseTrigger `yaml:"after" json:"after"`
	Set   yaml.Node    `yaml:"set" json:"-"`
}

// PhaseTrigger counts rooms or paths completed since the previous
// phase switch. Exactly one of the two should be positive.
type PhaseTrigger struct {
	Rooms int `yaml:"rooms" json:"rooms,omitempty"`
	Paths int `yaml:"paths" json:"paths,omitempty"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// FloatRange is an inclusive float range.
type FloatRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}
