package scene

import (
	"math"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/layout"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/rng"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// padSeedOffset separates the pad planner's draw stream from the
// builder's, so a change in one stage's draw count never shifts the
// other's results.
const padSeedOffset = 4

// Generate runs the full pipeline on a parsed spec: schema validation,
// parameter resolution, room graph construction, then the door, truss,
// light and pad planners in order. It returns the assembled layout and
// the merged report from every stage. The layout is nil only when
// schema validation or resolution fails; planner warnings still yield
// a best-effort layout.
func Generate(ws *spec.WarrenSpec) (*Layout, *validation.Report) {
	report := validation.ValidateSchema(ws)
	if !report.Valid {
		return nil, report
	}

	params, planReport := plan.Resolve(ws)
	report.Merge(planReport)
	if !report.Valid {
		return nil, report
	}

	// 1. Rooms. The builder owns the master RNG stream.
	builder := layout.NewBuilder(params, rng.New(params.Seed))
	rooms, buildReport := builder.Build()
	report.Merge(buildReport)

	// 2. Geometric planners run on whatever parameters were active when
	// the builder finished, so late phase switches carry through.
	active := builder.ActiveParams()
	doors, doorReport := layout.PlanDoors(rooms, active)
	report.Merge(doorReport)

	trusses, trussReport := layout.PlanTrusses(rooms, doors, active)
	report.Merge(trussReport)

	lights, lightReport := layout.PlanLights(rooms, doors, active)
	report.Merge(lightReport)

	// 3. Pads jitter from their own stream.
	pads, padReport := layout.PlanPads(rooms, doors, trusses, active, rng.New(params.Seed+padSeedOffset))
	report.Merge(padReport)

	return assemble(params, rooms, doors, trusses, lights, pads), report
}

// assemble packs the planner outputs into a serializable layout and
// fills the derived fields: bounds over the room shells and the spawn
// point.
func assemble(p *plan.Params, rooms []layout.Room, doors []layout.Door, trusses []layout.Truss, lights []layout.Light, pads []layout.Pad) *Layout {
	l := &Layout{
		Name:          p.Name,
		Seed:          p.RawSeed,
		SeedValue:     p.Seed,
		WallThickness: p.WallThickness,
		SpawnRoom:     -1,
		Rooms:         rooms,
		Doors:         doors,
		Trusses:       trusses,
		Lights:        lights,
		Pads:          pads,
	}

	l.Bounds = shellBounds(rooms, p.WallThickness)

	for _, pad := range pads {
		if pad.Spawn {
			l.Spawn = pad.Position
			l.SpawnRoom = pad.Room
			break
		}
	}
	if l.SpawnRoom < 0 && len(rooms) > 0 {
		// No safe spawn pad was found; fall back to the root floor
		// center so consumers always have a start point.
		root := rooms[0].Box()
		l.Spawn = geo.V(root.Center.X, root.Floor(), root.Center.Z)
		l.SpawnRoom = rooms[0].ID
	}

	return l
}

// shellBounds computes the AABB over all room shells.
func shellBounds(rooms []layout.Room, wall float64) BoundingBox {
	if len(rooms) == 0 {
		return BoundingBox{}
	}
	minV := geo.V(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
	maxV := geo.V(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64)

	for _, r := range rooms {
		shell := r.Box().Expand(wall)
		lo, hi := shell.Min(), shell.Max()
		minV.X = math.Min(minV.X, lo.X)
		minV.Y = math.Min(minV.Y, lo.Y)
		minV.Z = math.Min(minV.Z, lo.Z)
		maxV.X = math.Max(maxV.X, hi.X)
		maxV.Y = math.Max(maxV.Y, hi.Y)
		maxV.Z = math.Max(maxV.Z, hi.Z)
	}
	return BoundingBox{Min: minV, Max: maxV}
}
