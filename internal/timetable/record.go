package timetable

import (
	"fmt"
	"strings"
)

// View selects the primary (row) axis of a day matrix and which fields
// compose the cell text.
type View string

const (
	ViewRoom    View = "room"
	ViewTeacher View = "teacher"
)

// Primary returns the column header used for the entity column of a matrix
// built with this view.
func (v View) Primary() string {
	if v == ViewTeacher {
		return "TEACHER"
	}
	return "ROOM"
}

// RawTable is one sheet of the uploaded workbook: ordered column names plus
// string cell rows. Column names arrive as-is from the source file; the
// reader suffixes repeated names (DAY, DAY.1, ...) so the normalizer can
// reconcile the duplicate-day artifact of the multi-sheet export.
type RawTable struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ClassRecord is one normalized timetable row. Text fields are trimmed and
// never absent; StartTime is always HH:MM:SS.
type ClassRecord struct {
	Day         string
	StartTime   string
	Subject     string
	Teacher     string
	Room        string
	Group       string
	Intake      string
	IntakeGroup string
}

// OccupancyEntry is a deduplicated class instance ready for placement into
// grid cells: records sharing (day, start, subject, teacher, room) collapsed
// into one entry with their intake/group labels newline-joined.
type OccupancyEntry struct {
	Day          string
	StartTime    string
	Subject      string
	Teacher      string
	Room         string
	IntakeGroups string
}

// MatrixRow is one entity row of a day matrix. Cells is aligned with the
// axis: one text cell per slot, empty string for unoccupied slots.
type MatrixRow struct {
	Entity string
	Cells  []string
}

// DayMatrix is the occupancy grid for a single day: entity rows against the
// full slot axis, regardless of which slots that day actually uses.
type DayMatrix struct {
	Primary string
	Slots   []string
	Rows    []MatrixRow
}

// DaySheet pairs a day label with its matrix, in renderer-ready order.
type DaySheet struct {
	Day    string
	Matrix DayMatrix
}

// InputFormatError reports a payload that could not be read as tabular data
// at all (corrupt or non-spreadsheet upload).
type InputFormatError struct {
	Err error
}

func (e *InputFormatError) Error() string {
	return "invalid workbook: " + e.Err.Error()
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// SchemaError reports input whose merged columns lack a start-time column.
// Found lists the normalized column names that were actually present so the
// caller can correct the source file.
type SchemaError struct {
	Found []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing critical column %s, found: %s",
		columnStartTime, strings.Join(e.Found, ", "))
}
