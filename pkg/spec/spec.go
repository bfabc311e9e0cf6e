package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration. Project files and
// presets are overlaid on top of it, so every field has a workable
// value even for an empty file.
func Default() *WarrenSpec {
	return &WarrenSpec{
		SpecVersion: "0.1.0",
		Name:        "warren",
		Seed:        "1",
		Generator: GeneratorDef{
			BaseUnit:           5,
			MainPathLength:     10,
			MaxSegmentsPerPath: 6,
			SpurCount:          IntRange{Min: 1, Max: 3},
			Straightness:       55,
			GoalBias:           30,
			VerticalChance:     15,
			AllowUp:            true,
			AllowDown:          true,
			MinY:               -60,
			MaxY:               60,
			ScanDistance:       80,
			PlaceRetries:       8,
		},
		Rooms: RoomsDef{
			SizeRange:     FloatRange{Min: 1.0, Max: 2.2},
			AspectRatio:   FloatRange{Min: 0.6, Max: 1.6},
			HeightScale:   FloatRange{Min: 0.8, Max: 1.4},
			GridSnap:      1,
			MinSize:       4,
			WallThickness: 0.5,
		},
		Doors: DoorsDef{
			Size:    3,
			MinSize: 2,
		},
		Trusses: TrussesDef{
			FloorThreshold: 1.5,
		},
		Lights: LightsDef{
			WidthRatio: 0.5,
		},
		Pads: PadsDef{
			RoomsPerPad: 3,
		},
	}
}

// Load reads a warren spec from a YAML file, layering it over the
// built-in defaults and any preset the file names.
func Load(path string) (*WarrenSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes spec YAML. Overlay order is defaults, then the named
// preset (if any), then the document itself, so later layers win and
// absent fields keep their earlier values.
func Parse(data []byte) (*WarrenSpec, error) {
	var probe struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	s := Default()
	if probe.Preset != "" {
		overlay, err := LoadPreset(probe.Preset)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(overlay, s); err != nil {
			return nil, fmt.Errorf("applying preset %q: %w", probe.Preset, err)
		}
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	return s, nil
}

// LoadProject loads a warren spec from a project directory.
// It looks for warren.yaml in the given directory.
func LoadProject(projectDir string) (*WarrenSpec, error) {
	return Load(filepath.Join(projectDir, "warren.yaml"))
}

// ApplyOverrides layers a preset and a seed over an already-loaded
// spec, for overrides arriving outside the project file (flags, API
// requests). Empty values leave the spec unchanged. Note the preset
// wins over the file here, unlike Parse, because the caller asked for
// it explicitly.
func ApplyOverrides(s *WarrenSpec, seed, preset string) error {
	if preset != "" {
		overlay, err := LoadPreset(preset)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(overlay, s); err != nil {
			return fmt.Errorf("applying preset %q: %w", preset, err)
		}
		s.Preset = preset
	}
	if seed != "" {
		s.Seed = Seed(seed)
	}
	return nil
}
