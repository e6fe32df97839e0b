package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records an employee's status for a date, once per date
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (Attendance, error)

	// ListAttendance retrieves attendance records matching the filter
	ListAttendance(ctx context.Context, filter FilterCriteria) ([]Attendance, error)
}
