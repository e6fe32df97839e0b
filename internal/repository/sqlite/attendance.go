package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attendances (id, employee_id, employee_code, employee_name, date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), newAttendance.Employee, newAttendance.EmployeeID, newAttendance.EmployeeName,
		newAttendance.Date.String(), string(newAttendance.Status), toMillis(now),
	)
	if err != nil {
		if database.IsSQLiteConstraint(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	newAttendance.ID = id.String()
	newAttendance.CreatedAt = now
	return newAttendance, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Bounds) ([]attendance.Attendance, error) {
	var (
		where []string
		args  []any
	)
	if filter.EmployeeID != "" {
		where = append(where, "employee_code = ?")
		args = append(args, filter.EmployeeID)
	}
	if !filter.StartDate.IsZero() {
		where = append(where, "date >= ?")
		args = append(args, filter.StartDate.String())
	}
	if !filter.EndDate.IsZero() {
		where = append(where, "date <= ?")
		args = append(args, filter.EndDate.String())
	}

	query := `SELECT id, employee_id, employee_code, employee_name, date, status, created_at FROM attendances`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var (
			rec       attendance.Attendance
			date      string
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.Employee, &rec.EmployeeID, &rec.EmployeeName, &date, &rec.Status, &createdAt); err != nil {
			return nil, err
		}
		if rec.Date, err = dateonly.Parse(date); err != nil {
			return nil, err
		}
		rec.CreatedAt = fromMillis(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
