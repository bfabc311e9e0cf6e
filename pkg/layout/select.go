package layout

import (
	"math"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/rng"
)

// scanned pairs a candidate face with its measured free distance.
type scanned struct {
	face geo.Face
	dist float64
}

// selectFace picks the growth direction for the next room off the
// parent and returns the free distance along it.
func (b *Builder) selectFace(parent Room, lastFace geo.Face, goal *geo.Vec3) (geo.Face, float64, bool) {
	p := b.active

	// 1. Filter: drop disallowed verticals, faces whose minimal next
	//    room would leave the allowed volume, and the way we came.
	allowed := make([]geo.Face, 0, 6)
	for _, f := range geo.Faces {
		if f == geo.FaceUp && !p.AllowUp {
			continue
		}
		if f == geo.FaceDown && !p.AllowDown {
			continue
		}
		if lastFace != geo.FaceNone && f == lastFace.Opposite() {
			continue
		}
		if !b.minimalFits(parent, f) {
			continue
		}
		allowed = append(allowed, f)
	}
	if len(allowed) == 0 {
		return geo.FaceNone, 0, false
	}

	// 2. Split into pools and roll for vertical movement. An empty
	//    pool falls back to the other.
	var horizontal, vertical []geo.Face
	for _, f := range allowed {
		if f.Vertical() {
			vertical = append(vertical, f)
		} else {
			horizontal = append(horizontal, f)
		}
	}
	pool := horizontal
	if b.rng.Roll(p.VerticalChance) && len(vertical) > 0 {
		pool = vertical
	} else if len(horizontal) == 0 {
		pool = vertical
	}

	// 3. Scan each pooled face. Clear faces reach the full scan
	//    distance; usable ones are blocked but leave more than one
	//    base unit of space.
	var clear, usable []scanned
	for _, f := range pool {
		d := b.index.Scan(parent.Box(), f, p.ScanDistance, p.WallThickness, parent.ID)
		switch {
		case d >= p.ScanDistance-geo.Epsilon:
			clear = append(clear, scanned{f, d})
		case d > p.BaseUnit:
			usable = append(usable, scanned{f, d})
		}
	}

	// 4. Straight-on: keep the previous direction when it is clear and
	//    the straightness roll passes.
	if lastFace != geo.FaceNone {
		for _, s := range clear {
			if s.face != lastFace {
				continue
			}
			if b.rng.Roll(p.Straightness) {
				return s.face, s.dist, true
			}
			break
		}
	}

	// 5. Goal bias: prefer the first clear wall face that closes the
	//    distance to the active goal.
	if goal != nil && p.GoalBias > 0 {
		for _, s := range clear {
			if s.face.Vertical() {
				continue
			}
			a := s.face.Axis()
			if (goal.Component(a)-parent.Center.Component(a))*s.face.Sign() <= geo.Epsilon {
				continue
			}
			if b.rng.Roll(p.GoalBias) {
				return s.face, s.dist, true
			}
			break
		}
	}

	// 6. Uniform pick among clear faces, else the single farthest
	//    usable one.
	if len(clear) > 0 {
		s := rng.Choice(b.rng, clear)
		return s.face, s.dist, true
	}
	if len(usable) > 0 {
		best := usable[0]
		for _, s := range usable[1:] {
			if s.dist > best.dist {
				best = s
			}
		}
		return best.face, best.dist, true
	}
	return geo.FaceNone, 0, false
}

// minimalFits checks whether a minimum-size room attached on the face
// would stay inside the vertical band and the world bounds.
func (b *Builder) minimalFits(parent Room, f geo.Face) bool {
	p := b.active
	axis := f.Axis()
	step := parent.Size.Component(axis)/2 + p.MinRoomSize/2 + 2*p.WallThickness
	box := geo.Box{
		Center: parent.Center.Add(f.Dir().Scale(step)),
		Size:   geo.V(p.MinRoomSize, p.MinRoomSize, p.MinRoomSize),
	}
	return b.fitsLimits(box)
}

// rollDims draws the next room's dimensions: a size roll spread over
// the axes by aspect ratio and height scale, snapped to the grid. The
// movement-axis dimension is capped so the room leaves at least one
// base unit of the scanned span free.
func (b *Builder) rollDims(face geo.Face, dist float64) (geo.Vec3, bool) {
	p := b.active
	size := b.rng.FloatBetween(p.SizeRange.Min, p.SizeRange.Max)
	aspect := b.rng.FloatBetween(p.AspectRatio.Min, p.AspectRatio.Max)
	hscale := b.rng.FloatBetween(p.HeightScale.Min, p.HeightScale.Max)

	dims := geo.V(
		b.snap(size*aspect*p.BaseUnit),
		b.snap(size*hscale*p.BaseUnit),
		b.snap(size/aspect*p.BaseUnit),
	)
	if face == geo.FaceNone {
		return dims, true
	}

	axis := face.Axis()
	limit := dist - p.BaseUnit
	if dims.Component(axis) > limit {
		snapped := b.snapDown(limit)
		if snapped < p.MinRoomSize {
			return dims, false
		}
		dims = dims.WithComponent(axis, snapped)
	}
	return dims, true
}

// snap rounds a dimension down to the grid and floors it at the
// minimum room size.
func (b *Builder) snap(v float64) float64 {
	s := b.snapDown(v)
	if s < b.active.MinRoomSize {
		return b.active.MinRoomSize
	}
	return s
}

func (b *Builder) snapDown(v float64) float64 {
	g := b.active.GridSnap
	if g <= 0 {
		return v
	}
	return math.Floor(v/g+geo.Epsilon) * g
}
