package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func record(day, start, subject, teacher, room, group, intake string) ClassRecord {
	return ClassRecord{
		Day:         day,
		StartTime:   start,
		Subject:     subject,
		Teacher:     teacher,
		Room:        room,
		Group:       group,
		Intake:      intake,
		IntakeGroup: intake + " " + group,
	}
}

func cellAt(t *testing.T, m DayMatrix, entity, slot string) string {
	t.Helper()
	si := -1
	for i, s := range m.Slots {
		if s == slot {
			si = i
		}
	}
	require.GreaterOrEqual(t, si, 0, "slot %s not on axis", slot)
	for _, row := range m.Rows {
		if row.Entity == entity {
			return row.Cells[si]
		}
	}
	t.Fatalf("entity %s not in matrix", entity)
	return ""
}

func TestBuildGroupsAndSpillsOver(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("Mon", "08:05:00", "Math", "A", "101", "G2", "JAN"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	require.Len(t, sheets, 1)
	require.Equal(t, "Mon", sheets[0].Day)

	m := sheets[0].Matrix
	require.Equal(t, "ROOM", m.Primary)
	require.Len(t, m.Rows, 1)
	require.Equal(t, "101", m.Rows[0].Entity)

	want := "A\nMath\nJAN G1\nJAN G2"
	require.Equal(t, want, cellAt(t, m, "101", "08:05:00"))
	require.Equal(t, want, cellAt(t, m, "101", "08:35:00"))
	require.Equal(t, "", cellAt(t, m, "101", "09:05:00"))
}

func TestBuildDeduplicatesIdenticalRows(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	require.Equal(t, "A\nMath\nJAN G1", cellAt(t, sheets[0].Matrix, "101", "08:05:00"))
}

func TestBuildTeacherView(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"),
	}

	sheets := Build(records, ViewTeacher, DefaultAxis())
	require.Len(t, sheets, 1)

	m := sheets[0].Matrix
	require.Equal(t, "TEACHER", m.Primary)
	require.Equal(t, "A", m.Rows[0].Entity)
	require.Equal(t, "101\nMath\nJAN G1", cellAt(t, m, "A", "08:05:00"))
}

func TestBuildNoSpilloverPastLastSlot(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "17:35:00", "Math", "A", "101", "G1", "JAN"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	m := sheets[0].Matrix
	require.Equal(t, "A\nMath\nJAN G1", cellAt(t, m, "101", "17:35:00"))
	require.Equal(t, "", cellAt(t, m, "101", "17:05:00"))
}

func TestBuildCollisionAccumulates(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("Mon", "08:05:00", "Physics", "B", "101", "G2", "FEB"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	got := cellAt(t, sheets[0].Matrix, "101", "08:05:00")
	require.Equal(t, "A\nMath\nJAN G1"+CellSeparator+"B\nPhysics\nFEB G2", got)
}

func TestBuildDayOrdering(t *testing.T) {
	records := []ClassRecord{
		record("FRI", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("Monday", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("wed", "08:05:00", "Math", "A", "101", "G1", "JAN"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	var days []string
	for _, s := range sheets {
		days = append(days, s.Day)
	}
	require.Equal(t, []string{"Monday", "wed", "FRI"}, days)
}

func TestBuildUnknownDaysSortLastInEncounterOrder(t *testing.T) {
	records := []ClassRecord{
		record("Revision Week", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("Exam Week", "08:05:00", "Math", "A", "101", "G1", "JAN"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	var days []string
	for _, s := range sheets {
		days = append(days, s.Day)
	}
	require.Equal(t, []string{"Mon", "Revision Week", "Exam Week"}, days)
}

func TestBuildSkipsDaysWithoutValidPrimaries(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "08:05:00", "Math", "A", "", "G1", "JAN"),
		record("Tue", "08:05:00", "Math", "A", "nan", "G1", "JAN"),
		record("Wed", "08:05:00", "Math", "A", "101", "G1", "JAN"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	require.Len(t, sheets, 1)
	require.Equal(t, "Wed", sheets[0].Day)
}

func TestBuildSortsEntitiesAndKeepsFullAxis(t *testing.T) {
	axis := DefaultAxis()
	records := []ClassRecord{
		record("Mon", "08:05:00", "Math", "A", "202", "G1", "JAN"),
		record("Mon", "09:05:00", "Physics", "B", "101", "G2", "FEB"),
	}

	sheets := Build(records, ViewRoom, axis)
	m := sheets[0].Matrix
	require.Equal(t, []string{"101", "202"}, []string{m.Rows[0].Entity, m.Rows[1].Entity})
	require.Len(t, m.Slots, axis.Len())
	for _, row := range m.Rows {
		require.Len(t, row.Cells, axis.Len())
	}
}

func TestBuildOffAxisStartTimeNeverPlaced(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "08:10:00", "Math", "A", "101", "G1", "JAN"),
	}

	sheets := Build(records, ViewRoom, DefaultAxis())
	require.Len(t, sheets, 1)
	for _, cell := range sheets[0].Matrix.Rows[0].Cells {
		require.Equal(t, "", cell)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	require.Empty(t, Build(nil, ViewRoom, DefaultAxis()))
}

func TestBuildIsDeterministic(t *testing.T) {
	records := []ClassRecord{
		record("Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"),
		record("Mon", "08:05:00", "Physics", "B", "101", "G2", "FEB"),
		record("Tue", "09:05:00", "Chem", "C", "202", "G3", "MAR"),
		record("Mon", "08:05:00", "Math", "A", "101", "G4", "JAN"),
	}

	first := Build(records, ViewRoom, DefaultAxis())
	second := Build(records, ViewRoom, DefaultAxis())
	require.Equal(t, first, second)
}
