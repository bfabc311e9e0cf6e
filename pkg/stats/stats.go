// Package stats derives summary metrics from a generated layout:
// counts, volumes, graph depth, and artifact breakdowns.
package stats

import (
	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/layout"
	"github.com/purefictiongames/Warren-sub010/pkg/scene"
)

// RoomStats aggregates the room graph.
type RoomStats struct {
	Count        int     `json:"count"`
	Main         int     `json:"main"`
	Spur         int     `json:"spur"`
	MaxDepth     int     `json:"max_depth"`
	CavityVolume float64 `json:"cavity_volume"`
	MeanVolume   float64 `json:"mean_volume"`
}

// DoorStats aggregates the doorways.
type DoorStats struct {
	Count      int     `json:"count"`
	Wall       int     `json:"wall"`
	Vertical   int     `json:"vertical"`
	Degenerate int     `json:"degenerate"`
	MeanWidth  float64 `json:"mean_width"`
}

// TrussStats aggregates the support columns.
type TrussStats struct {
	Count   int `json:"count"`
	Ceiling int `json:"ceiling"`
	Wall    int `json:"wall"`
}

// Summary is the complete metrics output for one layout.
type Summary struct {
	Name      string `json:"name"`
	Seed      string `json:"seed"`
	SeedValue uint32 `json:"seed_value"`

	Rooms   RoomStats  `json:"rooms"`
	Doors   DoorStats  `json:"doors"`
	Trusses TrussStats `json:"trusses"`
	Lights  int        `json:"lights"`
	Pads    int        `json:"pads"`

	Extent      geo.Vec3 `json:"extent"`
	FloorLevels int      `json:"floor_levels"`
}

// Summarize computes metrics for a generated layout.
func Summarize(l *scene.Layout) *Summary {
	s := &Summary{
		Name:      l.Name,
		Seed:      l.Seed,
		SeedValue: l.SeedValue,
		Lights:    len(l.Lights),
		Pads:      len(l.Pads),
	}

	s.Rooms = roomStats(l.Rooms)
	s.Doors = doorStats(l.Doors)
	s.Trusses = trussStats(l.Trusses)

	s.Extent = l.Bounds.Max.Sub(l.Bounds.Min)
	s.FloorLevels = len(l.FloorLevels())

	return s
}

func roomStats(rooms []layout.Room) RoomStats {
	rs := RoomStats{Count: len(rooms)}
	if len(rooms) == 0 {
		return rs
	}

	// Parents always precede their children, so one pass resolves
	// every depth.
	depth := make([]int, len(rooms))
	for _, r := range rooms {
		switch r.Path {
		case layout.PathSpur:
			rs.Spur++
		default:
			rs.Main++
		}
		if r.Parent >= 0 && r.Parent < r.ID {
			depth[r.ID] = depth[r.Parent] + 1
			if depth[r.ID] > rs.MaxDepth {
				rs.MaxDepth = depth[r.ID]
			}
		}
		rs.CavityVolume += r.Size.X * r.Size.Y * r.Size.Z
	}
	rs.MeanVolume = rs.CavityVolume / float64(len(rooms))

	return rs
}

func doorStats(doors []layout.Door) DoorStats {
	ds := DoorStats{Count: len(doors)}
	if len(doors) == 0 {
		return ds
	}

	width := 0.0
	for _, d := range doors {
		if d.Axis == geo.AxisY {
			ds.Vertical++
		} else {
			ds.Wall++
		}
		if d.Width <= 0 || d.Height <= 0 {
			ds.Degenerate++
		}
		width += d.Width
	}
	ds.MeanWidth = width / float64(len(doors))

	return ds
}

func trussStats(trusses []layout.Truss) TrussStats {
	ts := TrussStats{Count: len(trusses)}
	for _, t := range trusses {
		if t.Type == layout.TrussCeiling {
			ts.Ceiling++
		} else {
			ts.Wall++
		}
	}
	return ts
}
