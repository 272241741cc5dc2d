package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Upload ────────────────────────────────────────────────────────
	ErrFileRequired ErrCode = "FILE_REQUIRED"
	ErrFileTooLarge ErrCode = "FILE_TOO_LARGE"

	// ─── Input / Schema ────────────────────────────────────────────────
	ErrInvalidWorkbook  ErrCode = "INVALID_WORKBOOK"
	ErrMissingStartTime ErrCode = "MISSING_START_TIME"
	ErrNoScheduleRows   ErrCode = "NO_SCHEDULE_ROWS"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Upload ────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "A timetable file upload is required."
	case ErrFileTooLarge:
		return "The uploaded file exceeds the size limit."

	// ─── Input / Schema ────────────────────────────────────────────────
	case ErrInvalidWorkbook:
		return "The uploaded file could not be read as a spreadsheet workbook."
	case ErrMissingStartTime:
		return "The timetable is missing the critical START TIME column."
	case ErrNoScheduleRows:
		return "No usable timetable rows were found in the uploaded file."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
