package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/timegridapp/timegrid-backend/internal/config"
	"github.com/timegridapp/timegrid-backend/internal/excel"
	"github.com/timegridapp/timegrid-backend/internal/timetable"
)

// ErrNoScheduleRows reports an upload that normalized and filtered down to
// nothing placeable: there is no day matrix to render.
var ErrNoScheduleRows = errors.New("no schedulable rows in input")

const bannerTimeLayout = "02-Jan-2006 03:04 PM"

// ScheduleService runs the full report pipeline: read workbook, normalize,
// build the per-day matrices, render the styled output workbook. Stateless
// across calls; each request owns its own data end to end.
type ScheduleService struct {
	cfg  *config.Config
	log  zerolog.Logger
	axis timetable.Axis
}

// NewScheduleService creates a ScheduleService with the slot axis built
// from configuration.
func NewScheduleService(cfg *config.Config, log zerolog.Logger) (*ScheduleService, error) {
	axis, err := timetable.NewAxis(cfg.AxisStart, cfg.AxisEnd, cfg.AxisStep)
	if err != nil {
		return nil, fmt.Errorf("slot axis: %w", err)
	}
	return &ScheduleService{cfg: cfg, log: log, axis: axis}, nil
}

// GenerateWorkbook transforms an uploaded timetable workbook into the grid
// report for the given view. Errors are *timetable.InputFormatError,
// *timetable.SchemaError, ErrNoScheduleRows, or an unexpected internal
// failure.
func (s *ScheduleService) GenerateWorkbook(r io.Reader, view timetable.View) (*bytes.Buffer, error) {
	tables, err := excel.ReadWorkbook(r)
	if err != nil {
		return nil, err
	}

	records, err := timetable.Normalize(tables)
	if err != nil {
		return nil, err
	}

	sheets := timetable.Build(records, view, s.axis)
	if len(sheets) == 0 {
		return nil, ErrNoScheduleRows
	}

	s.log.Debug().
		Int("sheets", len(tables)).
		Int("records", len(records)).
		Int("days", len(sheets)).
		Str("view", string(view)).
		Msg("Built schedule matrices")

	buf, err := excel.WriteWorkbook(sheets, s.bannerText(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf, nil
}

// bannerText formats the "File Generated on" line in campus-local time.
func (s *ScheduleService) bannerText(now time.Time) string {
	local := now.UTC().Add(s.cfg.TimestampOffset)
	return "File Generated on: " + local.Format(bannerTimeLayout)
}

// DefaultFilename returns the per-view default download name.
func DefaultFilename(view timetable.View) string {
	if view == timetable.ViewTeacher {
		return "Teacher_Schedule.xlsx"
	}
	return "Room_Schedule.xlsx"
}

// OutputFilename resolves the requested download name: defaulted per view
// when empty, .xlsx suffix enforced.
func OutputFilename(requested string, view timetable.View) string {
	name := strings.TrimSpace(requested)
	if name == "" {
		name = DefaultFilename(view)
	}
	if !strings.HasSuffix(name, ".xlsx") {
		name += ".xlsx"
	}
	return name
}
