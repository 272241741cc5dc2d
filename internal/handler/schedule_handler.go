package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/timegridapp/timegrid-backend/internal/response"
	"github.com/timegridapp/timegrid-backend/internal/service"
	"github.com/timegridapp/timegrid-backend/internal/timetable"
	"github.com/timegridapp/timegrid-backend/internal/validator"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScheduleHandler handles schedule report generation endpoints.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	maxUploadBytes  int64
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService, maxUploadBytes int64) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, maxUploadBytes: maxUploadBytes}
}

type generateRequest struct {
	Filename string `form:"filename" binding:"omitempty,max=128"`
}

// GenerateRoomSchedule godoc
// POST /api/v1/schedule/room
// Generates the room-view grid report from an uploaded timetable workbook.
func (h *ScheduleHandler) GenerateRoomSchedule(c *gin.Context) {
	h.generate(c, timetable.ViewRoom)
}

// GenerateTeacherSchedule godoc
// POST /api/v1/schedule/teacher
// Generates the teacher-view grid report from an uploaded timetable workbook.
func (h *ScheduleHandler) GenerateTeacherSchedule(c *gin.Context) {
	h.generate(c, timetable.ViewTeacher)
}

func (h *ScheduleHandler) generate(c *gin.Context, view timetable.View) {
	var req generateRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		return
	}

	buf, err := h.scheduleService.GenerateWorkbook(file, view)
	if err != nil {
		var formatErr *timetable.InputFormatError
		var schemaErr *timetable.SchemaError
		switch {
		case errors.As(err, &formatErr):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidWorkbook)
		case errors.As(err, &schemaErr):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrMissingStartTime,
				map[string]string{"found_columns": strings.Join(schemaErr.Found, ", ")})
		case errors.Is(err, service.ErrNoScheduleRows):
			response.Fail(c, http.StatusBadRequest, response.ErrNoScheduleRows)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	filename := service.OutputFilename(req.Filename, view)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}
