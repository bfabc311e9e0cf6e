package geo

import "math"

// Box is an axis-aligned box described by its center and full size.
type Box struct {
	Center Vec3 `json:"center"`
	Size   Vec3 `json:"size"`
}

// NewBox constructs a box from a center and full size.
func NewBox(center, size Vec3) Box {
	return Box{Center: center, Size: size}
}

// BoxFromCorners constructs the box spanning two opposite corners.
func BoxFromCorners(min, max Vec3) Box {
	return Box{
		Center: min.Add(max).Scale(0.5),
		Size:   max.Sub(min),
	}
}

// Half returns the half-extents.
func (b Box) Half() Vec3 {
	return b.Size.Scale(0.5)
}

// Min returns the corner with the smallest coordinates.
func (b Box) Min() Vec3 {
	return b.Center.Sub(b.Half())
}

// Max returns the corner with the largest coordinates.
func (b Box) Max() Vec3 {
	return b.Center.Add(b.Half())
}

// Floor returns the Y coordinate of the bottom face.
func (b Box) Floor() float64 {
	return b.Center.Y - b.Size.Y/2
}

// Ceiling returns the Y coordinate of the top face.
func (b Box) Ceiling() float64 {
	return b.Center.Y + b.Size.Y/2
}

// FaceCoord returns the plane coordinate of the given face.
func (b Box) FaceCoord(f Face) float64 {
	a := f.Axis()
	return b.Center.Component(a) + f.Sign()*b.Half().Component(a)
}

// Expand returns a copy grown by m on every side.
func (b Box) Expand(m float64) Box {
	b.Size = b.Size.Add(Vec3{2 * m, 2 * m, 2 * m})
	return b
}

// Contains reports whether p lies inside the box (inclusive).
func (b Box) Contains(p Vec3) bool {
	min, max := b.Min(), b.Max()
	return p.X >= min.X && p.X <= max.X &&
		p.Y >= min.Y && p.Y <= max.Y &&
		p.Z >= min.Z && p.Z <= max.Z
}

// ContainsBox reports whether o lies entirely inside b, within Epsilon.
func (b Box) ContainsBox(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return oMin.X >= bMin.X-Epsilon && oMax.X <= bMax.X+Epsilon &&
		oMin.Y >= bMin.Y-Epsilon && oMax.Y <= bMax.Y+Epsilon &&
		oMin.Z >= bMin.Z-Epsilon && oMax.Z <= bMax.Z+Epsilon
}

// OverlapOn returns the overlap length of the two boxes' extents on one
// axis. A negative value is the separation gap.
func (b Box) OverlapOn(o Box, a Axis) float64 {
	bMin, bMax := b.Min().Component(a), b.Max().Component(a)
	oMin, oMax := o.Min().Component(a), o.Max().Component(a)
	return math.Min(bMax, oMax) - math.Max(bMin, oMin)
}

// ShellsOverlap reports whether the two boxes, each expanded by margin,
// overlap on all three axes. Exact touching does not count.
func (b Box) ShellsOverlap(o Box, margin float64) bool {
	be, oe := b.Expand(margin), o.Expand(margin)
	for _, a := range Axes {
		if be.OverlapOn(oe, a) <= Epsilon {
			return false
		}
	}
	return true
}

// OverlapAmount returns, per axis, the minimal signed push that would
// move b clear of o when both are expanded by margin. Axes without
// overlap report zero.
func (b Box) OverlapAmount(o Box, margin float64) Vec3 {
	be, oe := b.Expand(margin), o.Expand(margin)
	var push Vec3
	for _, a := range Axes {
		if be.OverlapOn(oe, a) <= Epsilon {
			continue
		}
		pos := oe.Max().Component(a) - be.Min().Component(a)
		neg := be.Max().Component(a) - oe.Min().Component(a)
		if pos <= neg {
			push = push.WithComponent(a, pos)
		} else {
			push = push.WithComponent(a, -neg)
		}
	}
	return push
}

// Union returns the smallest box enclosing both.
func (b Box) Union(o Box) Box {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	min := Vec3{math.Min(bMin.X, oMin.X), math.Min(bMin.Y, oMin.Y), math.Min(bMin.Z, oMin.Z)}
	max := Vec3{math.Max(bMax.X, oMax.X), math.Max(bMax.Y, oMax.Y), math.Max(bMax.Z, oMax.Z)}
	return BoxFromCorners(min, max)
}
