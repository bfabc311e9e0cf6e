package layout

import (
	"fmt"
	"math"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/plan"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// lightPriority is the wall preference order for fixtures.
var lightPriority = [4]geo.Face{geo.FaceNorth, geo.FaceEast, geo.FaceSouth, geo.FaceWest}

const (
	lightDepthRatio  = 0.06 // fixture depth as a fraction of base unit
	lightHeightRatio = 0.12
	lightDropRatio   = 0.08 // gap between ceiling and fixture top
)

// PlanLights mounts exactly one strip light per room, preferring the
// first wall in priority order that carries no door. Rooms whose four
// walls all carry doors fall back to the first priority face.
func PlanLights(rooms []Room, doors []Door, params *plan.Params) ([]Light, *validation.Report) {
	report := validation.NewReport()

	// 1. Collect the door-bearing wall faces per room. Vertical doors
	//    live in floors and ceilings and never block a wall.
	carrying := make(map[int]map[geo.Face]bool, len(rooms))
	for _, d := range doors {
		if d.Axis == geo.AxisY {
			continue
		}
		for _, id := range []int{d.RoomA, d.RoomB} {
			room := rooms[id]
			f := geo.FaceToward(d.Axis, room.Center.Component(d.Axis), d.Center.Component(d.Axis))
			if carrying[id] == nil {
				carrying[id] = make(map[geo.Face]bool, 4)
			}
			carrying[id][f] = true
		}
	}

	// 2. One fixture per room.
	lights := make([]Light, 0, len(rooms))
	for _, r := range rooms {
		lights = append(lights, buildLight(r, lightFace(carrying[r.ID]), len(lights), params))
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("planned %d light(s), one per room", len(lights)),
	})
	return lights, report
}

func lightFace(carrying map[geo.Face]bool) geo.Face {
	for _, f := range lightPriority {
		if !carrying[f] {
			return f
		}
	}
	return lightPriority[0]
}

// buildLight sizes a strip from the wall's width and hangs it just
// below the ceiling on the inner wall surface.
func buildLight(r Room, f geo.Face, id int, p *plan.Params) Light {
	wall := r.Size.X // north and south walls run along X
	if f.Axis() == geo.AxisX {
		wall = r.Size.Z
	}
	width := math.Min(math.Max(wall*p.LightWidthRatio, p.LightMinWidth), p.LightMaxWidth)
	width = math.Min(width, wall)

	depth := lightDepthRatio * p.BaseUnit
	height := lightHeightRatio * p.BaseUnit

	box := r.Box()
	center := r.Center.
		WithComponent(f.Axis(), box.FaceCoord(f)-f.Sign()*depth/2)
	center.Y = box.Ceiling() - lightDropRatio*p.BaseUnit - height/2

	size := geo.V(width, height, depth)
	if f.Axis() == geo.AxisX {
		size = geo.V(depth, height, width)
	}
	return Light{ID: id, Room: r.ID, Center: center, Size: size, Face: f}
}
