package timetable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func table(columns []string, rows ...[]string) RawTable {
	return RawTable{Name: "Sheet1", Columns: columns, Rows: rows}
}

var allColumns = []string{"DAY", "START TIME", "SUBJECT", "TEACHER", "ROOM", "GROUP", "INTAKE"}

func TestNormalizeBasic(t *testing.T) {
	records, err := Normalize([]RawTable{table(allColumns,
		[]string{"Mon", "08:05:00", "Math", "A", "101", "G1", "JAN"},
	)})
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.Equal(t, ClassRecord{
		Day:         "Mon",
		StartTime:   "08:05:00",
		Subject:     "Math",
		Teacher:     "A",
		Room:        "101",
		Group:       "G1",
		Intake:      "JAN",
		IntakeGroup: "JAN G1",
	}, records[0])
}

func TestNormalizeMissingStartTimeColumn(t *testing.T) {
	_, err := Normalize([]RawTable{table([]string{"SUBJECT", "TEACHER"},
		[]string{"Math", "A"},
	)})
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	require.Equal(t, []string{"SUBJECT", "TEACHER"}, schemaErr.Found)
}

func TestNormalizeColumnCasingAndWhitespace(t *testing.T) {
	records, err := Normalize([]RawTable{table(
		[]string{" day ", "Start Time", "subject"},
		[]string{"  Mon ", "08:05:00", " Math  "},
	)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Mon", records[0].Day)
	require.Equal(t, "Math", records[0].Subject)
	// Absent columns default to empty, never fail.
	require.Equal(t, "", records[0].Teacher)
	require.Equal(t, "", records[0].Room)
	require.Equal(t, " ", records[0].IntakeGroup)
}

func TestNormalizeDayDuplicatePromotion(t *testing.T) {
	records, err := Normalize([]RawTable{table(
		[]string{"DAY", "START TIME", "DAY.1"},
		[]string{"stale", "08:05:00", "Mon"},
	)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Mon", records[0].Day)
}

func TestNormalizeMergesTablesInOrder(t *testing.T) {
	records, err := Normalize([]RawTable{
		table([]string{"DAY", "START TIME"}, []string{"Mon", "08:05:00"}),
		table([]string{"DAY", "START TIME", "ROOM"}, []string{"Tue", "09:05:00", "101"}),
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Mon", records[0].Day)
	require.Equal(t, "", records[0].Room)
	require.Equal(t, "Tue", records[1].Day)
	require.Equal(t, "101", records[1].Room)
}

func TestNormalizePermissiveTimeFallback(t *testing.T) {
	// One non-strict value switches the whole column to permissive parsing.
	records, err := Normalize([]RawTable{table(
		[]string{"DAY", "START TIME"},
		[]string{"Mon", "08:05:00"},
		[]string{"Mon", "8:35 AM"},
		[]string{"Mon", "2024-01-15 09:05:00"},
		[]string{"Mon", "not a time"},
		[]string{"Mon", ""},
	)})
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "08:05:00", records[0].StartTime)
	require.Equal(t, "08:35:00", records[1].StartTime)
	require.Equal(t, "09:05:00", records[2].StartTime)
}

func TestNormalizeDropsRowsWithoutStartTime(t *testing.T) {
	records, err := Normalize([]RawTable{table(
		[]string{"DAY", "START TIME"},
		[]string{"Mon", ""},
		[]string{"Tue", "08:05:00"},
	)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Tue", records[0].Day)
}

func TestNormalizeShortRows(t *testing.T) {
	// Rows narrower than the header never cause a mismatch.
	records, err := Normalize([]RawTable{table(allColumns,
		[]string{"Mon", "08:05:00", "Math"},
	)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Math", records[0].Subject)
	require.Equal(t, "", records[0].Teacher)
}
