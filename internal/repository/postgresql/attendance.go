package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. The employee row is share-locked while the
// record is inserted so a concurrent delete cannot orphan it, and the snapshot columns are
// refreshed from the locked row.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	employeeHandle, err := uuid.Parse(newAttendance.Employee)
	if err != nil {
		return attendance.Attendance{}, attendance.ErrEmployeeNotFound
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}

	created := newAttendance
	err = WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		err := q.QueryRow(ctx, `SELECT employee_id, full_name FROM employees WHERE id = $1 FOR SHARE`, employeeHandle).
			Scan(&created.EmployeeID, &created.EmployeeName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to lock employee: %w", err)
		}

		query := `
			INSERT INTO attendances (id, employee_id, employee_code, employee_name, date, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`
		var createdID uuid.UUID
		err = q.QueryRow(ctx, query,
			id, employeeHandle, created.EmployeeID, created.EmployeeName, newAttendance.Date.Time, string(newAttendance.Status),
		).Scan(&createdID, &created.CreatedAt)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return attendance.ErrAlreadyMarked
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		created.ID = createdID.String()
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Bounds) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_code = $%d", len(args)))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate.Time)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate.Time)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT id, employee_id, employee_code, employee_name, date, status, created_at FROM attendances`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var (
			rec            attendance.Attendance
			id, employeeID uuid.UUID
			date           time.Time
		)
		if err := rows.Scan(&id, &employeeID, &rec.EmployeeID, &rec.EmployeeName, &date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.ID = id.String()
		rec.Employee = employeeID.String()
		rec.Date = dateonly.FromTime(date)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
