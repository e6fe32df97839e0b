package console

import "errors"

var (
	// ErrFetchFailure wraps the cause of a failed load or refetch. The previous snapshot is kept.
	ErrFetchFailure = errors.New("fetch failure")

	// ErrStaleResponse marks a fetch result superseded by a newer request. It never reaches callers.
	ErrStaleResponse = errors.New("stale response")

	ErrDeleteInFlight  = errors.New("delete already in progress")
	ErrNoPendingDelete = errors.New("no delete pending confirmation")
)

// User-facing notification texts.
const (
	MsgFetchDataFailed      = "Failed to fetch data"
	MsgFetchEmployeesFailed = "Failed to fetch employees"
	MsgFetchDashboardFailed = "Failed to fetch dashboard data"
	MsgFilterFailed         = "Failed to filter attendance"
	MsgFiltersApplied       = "Filters applied successfully"
	MsgEmployeeAdded        = "Employee added successfully"
	MsgAddEmployeeFailed    = "Failed to add employee"
	MsgEmployeeDeleted      = "Employee deleted successfully"
	MsgDeleteEmployeeFailed = "Failed to delete employee"
	MsgAttendanceMarked     = "Attendance marked successfully"
	MsgMarkAttendanceFailed = "Failed to mark attendance"
)
