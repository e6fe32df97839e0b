package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderEmployees(w io.Writer, employees []employee.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(w, "No employees found")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\tEMPLOYEE ID\tNAME\tEMAIL\tDEPARTMENT\tBADGE")
	for _, e := range employees {
		badge := "-"
		if p, err := e.Department.Palette(); err == nil {
			badge = p.Background + "/" + p.Text
		}
		fmt.Fprintf(tw, "(%s)\t%s\t%s\t%s\t%s\t%s\n", e.Initial(), e.EmployeeID, e.FullName, e.Email, e.Department, badge)
	}
	tw.Flush()
	fmt.Fprintf(w, "%s employees\n", formatCount(len(employees)))
}

func renderAttendance(w io.Writer, records []attendance.Attendance) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No attendance records found")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tEMPLOYEE ID\tNAME\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Date, r.EmployeeID, r.EmployeeName, r.Status)
	}
	tw.Flush()
	fmt.Fprintf(w, "%s records\n", formatCount(len(records)))
}

func renderDashboard(w io.Writer, s dashboard.DashboardSummary) {
	fmt.Fprintf(w, "Dashboard for %s\n\n", s.TodayDate)

	tw := newTable(w)
	fmt.Fprintf(tw, "Total employees\t%s\n", formatCount(s.TotalEmployees))
	fmt.Fprintf(tw, "Attendance records\t%s\n", formatCount(s.TotalAttendanceRecords))
	fmt.Fprintf(tw, "Present today\t%s\n", formatCount(s.TodayPresent))
	fmt.Fprintf(tw, "Absent today\t%s\n", formatCount(s.TodayAbsent))
	tw.Flush()

	if top, ok := s.TopPerformer(); ok {
		fmt.Fprintf(w, "\nTop performer: %s (%s) %d%%\n", top.FullName, top.EmployeeID, top.AttendancePercentage)
	}

	if len(s.EmployeeStats) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "EMPLOYEE ID\tNAME\tDEPARTMENT\tPRESENT\tTOTAL\tATTENDANCE")
	for _, st := range s.EmployeeStats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d%% (%s)\n",
			st.EmployeeID, st.FullName, st.Department,
			formatCount(st.PresentDays), formatCount(st.TotalDays),
			st.AttendancePercentage, st.Class())
	}
	tw.Flush()
}
