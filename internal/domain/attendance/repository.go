package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create stores a record. A second record for the same (employee, date) yields ErrAlreadyMarked.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// List returns records matching the filter, newest date first.
	List(ctx context.Context, filter Bounds) ([]Attendance, error)
}
