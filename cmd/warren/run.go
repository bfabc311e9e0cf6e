package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	get "github.com/hashicorp/go-getter"

	"github.com/purefictiongames/Warren-sub010/internal/preview"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/scene"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
	"github.com/purefictiongames/Warren-sub010/pkg/stats"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// loadSpec loads the project spec and applies any flag overrides.
func loadSpec(projectPath, seed, preset string) (*spec.WarrenSpec, error) {
	ws, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}
	if err := spec.ApplyOverrides(ws, seed, preset); err != nil {
		return nil, err
	}
	return ws, nil
}

// generate runs the full pipeline plus the structural layout checks.
func generate(ws *spec.WarrenSpec) (*scene.Layout, *validation.Report, error) {
	l, report := scene.Generate(ws)
	if l == nil {
		printValidationReport(report)
		return nil, nil, fmt.Errorf("spec has validation errors")
	}
	report.Merge(scene.ValidateLayout(l))
	return l, report, nil
}

func runGenerate(projectPath, seed, preset, outPath string) error {
	ws, err := loadSpec(projectPath, seed, preset)
	if err != nil {
		return err
	}
	l, report, err := generate(ws)
	if err != nil {
		return err
	}

	output := map[string]any{
		"layout":     l,
		"seed":       l.Seed,
		"stats":      stats.Summarize(l),
		"validation": report,
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runValidate(projectPath string) error {
	ws, err := loadSpec(projectPath, "", "")
	if err != nil {
		return err
	}

	report := validation.ValidateSchema(ws)
	if report.Valid {
		// Parameter resolution catches the cross-field problems the
		// schema pass cannot see.
		_, planReport := plan.Resolve(ws)
		report.Merge(planReport)
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runStats(projectPath, seed, preset string) error {
	ws, err := loadSpec(projectPath, seed, preset)
	if err != nil {
		return err
	}
	l, report, err := generate(ws)
	if err != nil {
		return err
	}

	printStatsReport(stats.Summarize(l))

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runView(projectPath, seed, preset string) error {
	ws, err := loadSpec(projectPath, seed, preset)
	if err != nil {
		return err
	}
	l, _, err := generate(ws)
	if err != nil {
		return err
	}
	return preview.Run(l)
}

func runPresets() error {
	names := spec.Presets()
	if len(names) == 0 {
		fmt.Println("No built-in presets.")
		return nil
	}

	fmt.Println("Built-in presets:")
	for _, name := range names {
		data, err := spec.LoadPreset(name)
		if err != nil {
			return err
		}
		// The first line of each preset file is a comment describing it.
		desc := ""
		first, _, _ := strings.Cut(string(data), "\n")
		if d, ok := strings.CutPrefix(first, "# "); ok {
			desc = d
		}
		fmt.Printf("  %-18s %s\n", name, desc)
	}
	fmt.Println()
	fmt.Println("Select one with --preset, or a preset: line in warren.yaml.")
	return nil
}

func runFetch(url, dst string) error {
	fmt.Printf("Fetching %s\n", url)
	if err := get.Get(dst, url); err != nil {
		return fmt.Errorf("fetching project: %w", err)
	}
	fmt.Printf("Project written to %s\n", dst)
	return nil
}
