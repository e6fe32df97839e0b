package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/xuri/excelize/v2"
)

const (
	AttendanceSheet = "Attendance"
	SummarySheet    = "Summary"
)

var (
	attendanceHeader = []any{"Date", "Employee ID", "Employee Name", "Status"}
	summaryHeader    = []any{"Employee ID", "Full Name", "Department", "Present Days", "Total Days", "Attendance %"}
)

// WriteAttendance writes records to w as an xlsx workbook. When summary is non-nil a second
// sheet lists its per-employee stats.
func WriteAttendance(w io.Writer, records []attendance.Attendance, summary *dashboard.DashboardSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AttendanceSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{rec.Date.String(), rec.EmployeeID, rec.EmployeeName, string(rec.Status)})
	}
	if err := writeSheet(f, AttendanceSheet, attendanceHeader, rows, headerStyle); err != nil {
		return err
	}

	if summary != nil {
		if _, err := f.NewSheet(SummarySheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", SummarySheet, err)
		}
		rows := make([][]any, 0, len(summary.EmployeeStats))
		for _, s := range summary.EmployeeStats {
			rows = append(rows, []any{s.EmployeeID, s.FullName, string(s.Department), s.PresentDays, s.TotalDays, s.AttendancePercentage})
		}
		if err := writeSheet(f, SummarySheet, summaryHeader, rows, headerStyle); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
