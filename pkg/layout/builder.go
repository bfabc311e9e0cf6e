package layout

import (
	"fmt"
	"math"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/rng"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

type buildState int

const (
	stateIdle buildState = iota
	stateGenerating
	stateComplete
)

// Builder grows the room graph: one main path walked out from the
// origin, then spur paths branching off junction rooms. A Builder is
// single use; create one per generation run.
type Builder struct {
	rng    *rng.RNG
	report *validation.Report
	state  buildState
	index  Index

	// active points at the parameter set currently in effect; phase
	// switches replace it mid-run.
	active     *plan.Params
	phases     []plan.Phase
	phaseIndex int
	roomsSince int
	pathsSince int
}

// placeResult carries one placement attempt's outcome. Reason is set
// when OK is false.
type placeResult struct {
	Room   Room
	OK     bool
	Reason string
}

// NewBuilder prepares a builder over resolved parameters and a seeded
// RNG. The builder owns the RNG for the duration of the run.
func NewBuilder(params *plan.Params, r *rng.RNG) *Builder {
	return &Builder{
		rng:    r,
		report: validation.NewReport(),
		active: params,
		phases: params.Phases,
	}
}

// ActiveParams returns the parameter set in effect when building
// stopped, so downstream planners see phase switches.
func (b *Builder) ActiveParams() *plan.Params {
	return b.active
}

// Build runs the whole room-graph construction and returns the placed
// rooms with a spatial report. Build is single shot; calling it again
// reports an error and returns the existing rooms.
func (b *Builder) Build() ([]Room, *validation.Report) {
	if b.state != stateIdle {
		b.report.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "builder already consumed; create a new one per run",
		})
		return b.index.Rooms(), b.report
	}
	b.state = stateGenerating

	// 1. Root room centered on the origin.
	dims, _ := b.rollDims(geo.FaceNone, 0)
	root := Room{
		ID:     0,
		Center: b.active.Origin,
		Size:   dims,
		Parent: -1,
		Path:   PathMain,
	}
	b.index.Add(root)
	b.roomPlaced()

	// 2. Main path out from the root.
	mainRooms := b.growPath(root, geo.FaceNone, b.active.MainPathLength-1, PathMain, b.goalFor(0))
	b.pathDone()

	// 3. Spur paths from junction rooms.
	budget := b.rng.IntBetween(b.active.SpurCount.Min, b.active.SpurCount.Max)
	spurs := 0
	for i := 0; i < budget; i++ {
		junction, ok := b.pickJunction()
		if !ok {
			b.report.AddInfo(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("spur budget %d not spent: no junction candidates after %d spur(s)", budget, spurs),
			})
			break
		}
		b.growPath(junction, junction.AttachFace, b.active.MaxSegmentsPerPath, PathSpur, b.goalFor(spurs+1))
		b.pathDone()
		spurs++
	}

	b.state = stateComplete
	b.report.AddInfo(validation.Result{
		Level: validation.LevelSpatial,
		Message: fmt.Sprintf("built %d rooms (main path %d, %d spur(s), %d phase switch(es))",
			b.index.Len(), mainRooms+1, spurs, b.phaseIndex),
	})
	return b.index.Rooms(), b.report
}

// growPath appends up to maxRooms rooms starting from a placed room.
// A segment failure ends the path early with a warning; that is the
// normal degraded outcome, never fatal.
func (b *Builder) growPath(from Room, lastFace geo.Face, maxRooms int, class PathClass, goal *geo.Vec3) int {
	parent := from
	placed := 0
	for placed < maxRooms {
		res := b.placeNext(parent, lastFace, goal, class)
		if !res.OK {
			b.report.AddWarning(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("%s path ended at room %d after %d segment(s): %s", class, parent.ID, placed, res.Reason),
			})
			break
		}
		b.index.Add(res.Room)
		b.index.Connect(parent.ID, res.Room.ID)
		parent = res.Room
		lastFace = res.Room.AttachFace
		placed++
		b.roomPlaced()
	}
	return placed
}

// placeNext selects a direction off the parent, rolls dimensions, and
// resolves collisions by shifting on a cross axis.
func (b *Builder) placeNext(parent Room, lastFace geo.Face, goal *geo.Vec3, class PathClass) placeResult {
	p := b.active

	face, scanned, ok := b.selectFace(parent, lastFace, goal)
	if !ok {
		return placeResult{Reason: "no viable direction"}
	}
	dims, ok := b.rollDims(face, scanned)
	if !ok {
		return placeResult{Reason: fmt.Sprintf("span %.1f toward %s cannot fit a minimum room", scanned, face)}
	}

	// Shell-to-shell placement: the gap between cavities on the
	// movement axis is exactly two wall thicknesses.
	axis := face.Axis()
	step := parent.Size.Component(axis)/2 + dims.Component(axis)/2 + 2*p.WallThickness
	room := Room{
		ID:         b.index.Len(),
		Center:     parent.Center.Add(face.Dir().Scale(step)),
		Size:       dims,
		Parent:     parent.ID,
		Path:       class,
		AttachFace: face,
	}

	placed := false
	for attempt := 0; attempt <= p.PlaceRetries; attempt++ {
		hit, overlapping := b.index.OverlapsAny(room.Box(), p.WallThickness, parent.ID)
		if !overlapping {
			placed = true
			break
		}
		if !b.shiftClear(&room, b.index.rooms[hit], axis) {
			return placeResult{Reason: fmt.Sprintf("collides with room %d and cannot shift clear", hit)}
		}
	}
	if !placed {
		return placeResult{Reason: fmt.Sprintf("still colliding after %d shift(s)", p.PlaceRetries)}
	}
	if !b.fitsLimits(room.Box()) {
		return placeResult{Reason: "shifted outside the allowed volume"}
	}

	// The shared wall must still leave space for a viable door on both
	// cross axes.
	needed := p.MinDoorSize + 2*p.DoorEdgeMargin
	for _, a := range geo.Axes {
		if a == axis {
			continue
		}
		if parent.Box().OverlapOn(room.Box(), a) < needed-geo.Epsilon {
			return placeResult{Reason: fmt.Sprintf("shifted out of door overlap with room %d on %s", parent.ID, a)}
		}
	}

	return placeResult{Room: room, OK: true}
}

// shiftClear nudges the candidate on a cross axis, plus half a base
// unit of clearance. Horizontal growth shifts only on the other
// horizontal axis so floors stay level with the parent; vertical
// growth shifts on whichever horizontal axis needs the smaller push.
func (b *Builder) shiftClear(room *Room, hit Room, movement geo.Axis) bool {
	push := room.Box().OverlapAmount(hit.Box(), b.active.WallThickness)

	var axes []geo.Axis
	switch movement {
	case geo.AxisX:
		axes = []geo.Axis{geo.AxisZ}
	case geo.AxisZ:
		axes = []geo.Axis{geo.AxisX}
	default:
		axes = []geo.Axis{geo.AxisX, geo.AxisZ}
	}

	shiftAxis := movement
	shift := 0.0
	for _, a := range axes {
		v := push.Component(a)
		if v == 0 {
			continue
		}
		if shiftAxis == movement || math.Abs(v) < math.Abs(shift) {
			shiftAxis, shift = a, v
		}
	}
	if shiftAxis == movement {
		return false
	}

	safety := 0.5 * b.active.BaseUnit
	if shift < 0 {
		safety = -safety
	}
	room.Center = room.Center.Add(geo.Vec3{}.WithComponent(shiftAxis, shift+safety))
	return true
}

// fitsLimits checks a cavity box against the vertical band and the
// optional world bounds (the shell must stay inside the bounds).
func (b *Builder) fitsLimits(box geo.Box) bool {
	p := b.active
	if box.Min().Y < p.MinY-geo.Epsilon || box.Max().Y > p.MaxY+geo.Epsilon {
		return false
	}
	if p.Bounds != nil && !p.Bounds.ContainsBox(box.Expand(p.WallThickness)) {
		return false
	}
	return true
}

// pickJunction selects a room with exactly two connections, root
// excluded, to branch a spur from.
func (b *Builder) pickJunction() (Room, bool) {
	var candidates []Room
	for _, r := range b.index.Rooms() {
		if r.ID == 0 || len(r.Connections) != 2 {
			continue
		}
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return Room{}, false
	}
	return rng.Choice(b.rng, candidates), true
}

// goalFor returns the goal a path steers toward, cycling through the
// configured goals by path index. Nil when no goals are set.
func (b *Builder) goalFor(pathIndex int) *geo.Vec3 {
	goals := b.active.Goals
	if len(goals) == 0 {
		return nil
	}
	g := goals[pathIndex%len(goals)]
	return &g
}

func (b *Builder) roomPlaced() {
	b.roomsSince++
	b.checkPhase()
}

func (b *Builder) pathDone() {
	b.pathsSince++
	b.checkPhase()
}

// checkPhase fires the next pending phase switch once its trigger
// count is reached. Counters measure progress since the last switch.
func (b *Builder) checkPhase() {
	if b.phaseIndex >= len(b.phases) {
		return
	}
	ph := b.phases[b.phaseIndex]
	fired := (ph.After.Rooms > 0 && b.roomsSince >= ph.After.Rooms) ||
		(ph.After.Paths > 0 && b.pathsSince >= ph.After.Paths)
	if !fired {
		return
	}
	b.active = ph.Params
	b.phaseIndex++
	b.roomsSince, b.pathsSince = 0, 0
	b.report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("phase %d parameters took effect at %d room(s)", b.phaseIndex, b.index.Len()),
	})
}
