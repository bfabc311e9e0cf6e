package main

import (
	"fmt"

	"github.com/purefictiongames/Warren-sub010/pkg/stats"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printStatsReport(s *stats.Summary) {
	fmt.Println("Layout Summary")
	fmt.Println("==============")
	fmt.Println()
	fmt.Printf("  Name:          %s\n", s.Name)
	fmt.Printf("  Seed:          %s (%d)\n", s.Seed, s.SeedValue)
	fmt.Printf("  Extent:        %.1f x %.1f x %.1f\n", s.Extent.X, s.Extent.Y, s.Extent.Z)
	fmt.Printf("  Floor levels:  %d\n", s.FloorLevels)
	fmt.Println()

	fmt.Printf("%-10s %8s  %s\n", "Element", "Count", "Breakdown")
	fmt.Printf("%-10s %8s  %s\n", "----------", "--------", "------------------------------")
	fmt.Printf("%-10s %8d  %d main, %d spur, max depth %d\n",
		"Rooms", s.Rooms.Count, s.Rooms.Main, s.Rooms.Spur, s.Rooms.MaxDepth)
	fmt.Printf("%-10s %8d  %d wall, %d vertical\n",
		"Doors", s.Doors.Count, s.Doors.Wall, s.Doors.Vertical)
	fmt.Printf("%-10s %8d  %d ceiling, %d wall\n",
		"Trusses", s.Trusses.Count, s.Trusses.Ceiling, s.Trusses.Wall)
	fmt.Printf("%-10s %8d\n", "Lights", s.Lights)
	fmt.Printf("%-10s %8d\n", "Pads", s.Pads)
	fmt.Println()

	fmt.Printf("  Cavity volume:    %.1f\n", s.Rooms.CavityVolume)
	fmt.Printf("  Mean volume:      %.1f\n", s.Rooms.MeanVolume)
	fmt.Printf("  Mean door width:  %.1f\n", s.Doors.MeanWidth)
	if s.Doors.Degenerate > 0 {
		fmt.Printf("  Degenerate doors: %d\n", s.Doors.Degenerate)
	}
}
