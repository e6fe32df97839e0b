package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors carry the first failed field in "error" and all of them in "details"
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.First(), validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		BadRequest(w, "Employee ID already exists", nil)
	case errors.Is(err, employee.ErrInvalidDepartment):
		BadRequest(w, "Invalid department", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		BadRequest(w, "Attendance already marked for this date", nil)
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		BadRequest(w, "Employee not found", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Status must be Present or Absent", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
