package layout

import (
	"math"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
)

// Index is the append-only set of placed rooms the builder checks
// collisions and scans horizons against. Room ids are positions in
// the backing slice. Lookups are linear; the working scale is tens to
// low hundreds of rooms.
type Index struct {
	rooms []Room
}

// Add appends a placed room. The caller assigns ids in append order.
func (ix *Index) Add(r Room) {
	ix.rooms = append(ix.rooms, r)
}

// Len returns the number of placed rooms.
func (ix *Index) Len() int {
	return len(ix.rooms)
}

// Rooms returns the placed rooms in placement order. The slice is
// shared, not copied.
func (ix *Index) Rooms() []Room {
	return ix.rooms
}

// Connect records a bidirectional connection between two placed rooms.
func (ix *Index) Connect(a, b int) {
	ix.rooms[a].Connections = append(ix.rooms[a].Connections, b)
	ix.rooms[b].Connections = append(ix.rooms[b].Connections, a)
}

// OverlapsAny reports the first placed room whose shell overlaps the
// given box. Both boxes are expanded by margin; the room with the
// exclude id is skipped. Exact shell-to-shell contact is clear.
func (ix *Index) OverlapsAny(box geo.Box, margin float64, exclude int) (int, bool) {
	for _, r := range ix.rooms {
		if r.ID == exclude {
			continue
		}
		if box.ShellsOverlap(r.Box(), margin) {
			return r.ID, true
		}
	}
	return -1, false
}

// Scan measures the free distance from one face of a box along its
// outward normal, up to maxDist. Only rooms whose margin-expanded
// shells overlap the box's extents on both perpendicular axes block
// the ray; the nearest blocking shell sets the distance. The room
// with the exclude id is skipped.
func (ix *Index) Scan(from geo.Box, f geo.Face, maxDist, margin float64, exclude int) float64 {
	axis := f.Axis()
	sign := f.Sign()
	start := from.FaceCoord(f)
	best := maxDist

	for _, r := range ix.rooms {
		if r.ID == exclude {
			continue
		}
		shell := r.Box().Expand(margin)

		inPath := true
		for _, a := range geo.Axes {
			if a == axis {
				continue
			}
			if from.OverlapOn(shell, a) <= geo.Epsilon {
				inPath = false
				break
			}
		}
		if !inPath {
			continue
		}

		// skip shells entirely behind the scan face
		far := shell.FaceCoord(f)
		if (far-start)*sign < geo.Epsilon {
			continue
		}
		gap := (shell.FaceCoord(f.Opposite()) - start) * sign
		if gap < 0 {
			gap = 0
		}
		best = math.Min(best, gap)
	}
	return best
}
