package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyMarked      = errors.New("attendance already marked for this date")
	ErrEmployeeNotFound   = errors.New("employee for attendance not found")
	ErrInvalidStatus      = errors.New("status must be Present or Absent")
)
