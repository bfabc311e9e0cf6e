package scene

import (
	"strings"
	"testing"

	"github.com/purefictiongames/Warren-sub010/pkg/geo"
	"github.com/purefictiongames/Warren-sub010/pkg/layout"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

func hasError(report *validation.Report, substr string) bool {
	for _, e := range report.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateLayoutAcceptsGenerated(t *testing.T) {
	l := generateLayout(t, chainSpec())

	report := ValidateLayout(l)
	if !report.Valid {
		for _, e := range report.Errors {
			t.Errorf("unexpected error: %s", e.Message)
		}
	}
}

func TestValidateLayoutAcceptsLargeGenerated(t *testing.T) {
	s := spec.Default()
	s.Seed = "warren"

	l := generateLayout(t, s)
	report := ValidateLayout(l)
	if !report.Valid {
		for _, e := range report.Errors {
			t.Errorf("unexpected error: %s", e.Message)
		}
	}
	t.Logf("validated %d rooms, %d doors, %d trusses: %s",
		len(l.Rooms), len(l.Doors), len(l.Trusses), report.Summary)
}

func TestValidateLayoutRejectsNil(t *testing.T) {
	if ValidateLayout(nil).Valid {
		t.Error("nil layout validated")
	}
}

func TestValidateLayoutRejectsEmpty(t *testing.T) {
	if ValidateLayout(&Layout{}).Valid {
		t.Error("empty layout validated")
	}
}

func TestValidateLayoutFlagsMisorderedIDs(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Rooms[1].ID = 5

	report := ValidateLayout(l)
	if !hasError(report, "ID order") {
		t.Errorf("misordered IDs not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsBadParent(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Rooms[2].Parent = 99

	report := ValidateLayout(l)
	if !hasError(report, "non-existent parent") {
		t.Errorf("bad parent not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsOneWayConnection(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Rooms[0].Connections = nil

	report := ValidateLayout(l)
	if !hasError(report, "not bidirectional") {
		t.Errorf("one-way connection not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsDisconnectedGraph(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Rooms[1].Connections = []int{0}
	l.Rooms[2].Connections = nil

	report := ValidateLayout(l)
	if !hasError(report, "disconnected") {
		t.Errorf("disconnected graph not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsShellOverlap(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Rooms[2].Center = l.Rooms[0].Center

	report := ValidateLayout(l)
	if !hasError(report, "overlap including wall shells") {
		t.Errorf("shell overlap not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsDoorBetweenUnconnectedRooms(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Doors[0].RoomB = l.Doors[0].RoomA

	report := ValidateLayout(l)
	if !hasError(report, "not connected") {
		t.Errorf("door between unconnected rooms not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsMissingSill(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Doors[0].Bottom = nil

	report := ValidateLayout(l)
	if !hasError(report, "no sill") {
		t.Errorf("missing sill not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsOrphanTruss(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Trusses = append(l.Trusses, layout.Truss{ID: 0, Door: 99, Size: geo.V(1, 1, 1), Type: layout.TrussWall})

	report := ValidateLayout(l)
	if !hasError(report, "non-existent door") {
		t.Errorf("orphan truss not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsUnlitRoom(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Lights = l.Lights[:len(l.Lights)-1]

	report := ValidateLayout(l)
	if !hasError(report, "light fixtures") {
		t.Errorf("unlit room not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutFlagsDuplicateSpawn(t *testing.T) {
	l := generateLayout(t, chainSpec())
	second := l.Pads[0]
	second.ID = 99
	second.Room = 1
	second.Position = geo.V(l.Rooms[1].Center.X, l.Rooms[1].Box().Floor(), l.Rooms[1].Center.Z)
	l.Pads = append(l.Pads, second)

	report := ValidateLayout(l)
	if !hasError(report, "spawn pads") {
		t.Errorf("duplicate spawn not flagged: %s", report.Summary)
	}
}

func TestValidateLayoutWarnsOnFloatingPad(t *testing.T) {
	l := generateLayout(t, chainSpec())
	l.Pads[0].Position.Y += 1

	report := ValidateLayout(l)
	if !report.Valid {
		t.Fatalf("floating pad should warn, not error: %s", report.Summary)
	}
	if len(report.Warnings) == 0 {
		t.Error("floating pad produced no warning")
	}
}
