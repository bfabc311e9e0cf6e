// Package preview renders floor slices of a generated layout in the
// terminal. One floor level is shown at a time as a top-down plan:
// room outlines with their IDs, doorways, and interaction pads.
package preview

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/layout"
	"github.com/purefictiongames/Warren-sub010/pkg/scene"
)

// Two columns per world unit keeps rooms roughly square on screen.
const colsPerUnit = 2

const panStep = 4

// Run opens a fullscreen viewer for the layout and blocks until the
// user quits.
func Run(l *scene.Layout) error {
	if l == nil || len(l.Rooms) == 0 {
		return fmt.Errorf("layout has no rooms to preview")
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	v := newViewer(l)
	v.draw(scr)
	for {
		switch ev := scr.PollEvent().(type) {
		case *tcell.EventResize:
			scr.Sync()
			v.draw(scr)
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
			v.draw(scr)
		}
	}
}

// viewer holds the camera state: which floor is shown and how far the
// view has been panned from the layout center.
type viewer struct {
	layout *scene.Layout
	floors []float64
	level  int
	panX   int
	panZ   int
}

func newViewer(l *scene.Layout) *viewer {
	v := &viewer{layout: l, floors: l.FloorLevels()}
	if len(v.floors) == 0 {
		v.floors = []float64{0}
	}
	// Start on the spawn room's floor.
	if r, ok := l.Room(l.SpawnRoom); ok {
		f := r.Box().Floor()
		for i, lvl := range v.floors {
			if math.Abs(lvl-f) <= geo.Epsilon {
				v.level = i
				break
			}
		}
	}
	return v
}

// handleKey updates the camera. It returns false when the user quits.
// Movement follows the usual vi keys alongside the arrows.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.panZ -= panStep
	case tcell.KeyDown:
		v.panZ += panStep
	case tcell.KeyLeft:
		v.panX -= panStep
	case tcell.KeyRight:
		v.panX += panStep
	case tcell.KeyPgUp:
		v.levelUp()
	case tcell.KeyPgDn:
		v.levelDown()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'h':
			v.panX -= panStep
		case 'l':
			v.panX += panStep
		case 'k':
			v.panZ -= panStep
		case 'j':
			v.panZ += panStep
		case '<', ',':
			v.levelDown()
		case '>', '.':
			v.levelUp()
		case '0':
			v.panX, v.panZ = 0, 0
		}
	}
	return true
}

func (v *viewer) levelUp() {
	if v.level+1 < len(v.floors) {
		v.level++
	}
}

func (v *viewer) levelDown() {
	if v.level > 0 {
		v.level--
	}
}

// draw renders the active floor. World X maps to columns and world Z
// to rows, centered on the layout bounds plus the pan offset. The
// bottom row is a status bar.
func (v *viewer) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()
	if h < 2 {
		return
	}
	camX := (v.layout.Bounds.Min.X+v.layout.Bounds.Max.X)/2 + float64(v.panX)
	camZ := (v.layout.Bounds.Min.Z+v.layout.Bounds.Max.Z)/2 + float64(v.panZ)
	col := func(x float64) int { return w/2 + int(math.Round(colsPerUnit*(x-camX))) }
	row := func(z float64) int { return (h-1)/2 + int(math.Round(z-camZ)) }

	level := v.floors[v.level]
	onLevel := make(map[int]bool, len(v.layout.Rooms))
	for _, r := range v.layout.Rooms {
		if math.Abs(r.Box().Floor()-level) <= geo.Epsilon {
			onLevel[r.ID] = true
		}
	}

	for _, r := range v.layout.Rooms {
		if !onLevel[r.ID] {
			continue
		}
		style := tcell.StyleDefault
		if r.Path == layout.PathSpur {
			style = style.Foreground(tcell.ColorGray)
		}
		box := r.Box()
		x0, x1 := col(box.Min().X), col(box.Max().X)
		z0, z1 := row(box.Min().Z), row(box.Max().Z)
		drawRect(s, x0, z0, x1, z1, style)
		label := strconv.Itoa(r.ID)
		if x1-x0 > len(label) {
			drawText(s, x0+1, z0+1, style, label)
		}
	}

	doorStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, d := range v.layout.Doors {
		if !onLevel[d.RoomA] && !onLevel[d.RoomB] {
			continue
		}
		ch := '='
		if d.Axis == geo.AxisY {
			ch = '^'
		}
		s.SetContent(col(d.Center.X), row(d.Center.Z), ch, nil, doorStyle)
	}

	// Trusses rise from the active floor; ceiling trusses span up from it.
	trussStyle := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	for _, t := range v.layout.Trusses {
		if math.Abs(t.Box().Floor()-level) > geo.Epsilon {
			continue
		}
		s.SetContent(col(t.Center.X), row(t.Center.Z), '#', nil, trussStyle)
	}

	lightStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for _, lt := range v.layout.Lights {
		if !onLevel[lt.Room] {
			continue
		}
		s.SetContent(col(lt.Center.X), row(lt.Center.Z), '*', nil, lightStyle)
	}

	for _, p := range v.layout.Pads {
		if !onLevel[p.Room] {
			continue
		}
		ch := 'o'
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
		if p.Spawn {
			ch = '@'
			style = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
		}
		s.SetContent(col(p.Position.X), row(p.Position.Z), ch, nil, style)
	}

	status := fmt.Sprintf("%s  seed %s  floor %d/%d  y %.1f  rooms %d",
		v.layout.Name, v.layout.Seed, v.level+1, len(v.floors), level, len(onLevel))
	drawText(s, 0, h-1, tcell.StyleDefault.Reverse(true), status)
	s.Show()
}

func drawRect(s tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, '-', nil, style)
		s.SetContent(x, y1, '-', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, '|', nil, style)
		s.SetContent(x1, y, '|', nil, style)
	}
	s.SetContent(x0, y0, '+', nil, style)
	s.SetContent(x1, y0, '+', nil, style)
	s.SetContent(x0, y1, '+', nil, style)
	s.SetContent(x1, y1, '+', nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
