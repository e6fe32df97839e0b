package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/console"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/storage"
)

var errUnknownEmployee = errors.New("no employee with that employee ID")

func (a *app) employees(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("employees: expected list, add or delete")
	}

	switch args[0] {
	case "list":
		if err := a.console.Store.RefreshEmployees(ctx); err != nil {
			return err
		}
		renderEmployees(a.out, a.console.Store.Snapshot().Employees)
		return nil

	case "add":
		fs := flag.NewFlagSet("employees add", flag.ContinueOnError)
		var draft console.EmployeeDraft
		fs.StringVar(&draft.EmployeeID, "id", "", "employee ID, at most 20 characters")
		fs.StringVar(&draft.FullName, "name", "", "full name")
		fs.StringVar(&draft.Email, "email", "", "email address")
		fs.StringVar(&draft.Department, "department", "", "one of "+departmentList())
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		emp, err := a.console.Mutations.CreateEmployee(ctx, &draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %s (%s) to %s\n", emp.FullName, emp.EmployeeID, emp.Department)
		return nil

	case "delete":
		fs := flag.NewFlagSet("employees delete", flag.ContinueOnError)
		yes := fs.Bool("yes", false, "skip the confirmation prompt")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return errors.New("employees delete: expected one employee ID")
		}
		return a.deleteEmployee(ctx, fs.Arg(0), *yes)

	default:
		return fmt.Errorf("employees: unknown subcommand %q", args[0])
	}
}

func (a *app) deleteEmployee(ctx context.Context, employeeID string, yes bool) error {
	if err := a.console.Store.RefreshEmployees(ctx); err != nil {
		return err
	}
	emp, ok := a.findEmployee(employeeID)
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownEmployee, employeeID)
	}

	deletes := a.console.Deletes
	if err := deletes.Request(console.DeleteTarget{ID: emp.ID, Name: emp.FullName}); err != nil {
		return err
	}

	if !yes && !a.confirm(deletes.Prompt()) {
		fmt.Fprintln(a.out, "Cancelled")
		return deletes.Cancel()
	}

	if err := deletes.Confirm(ctx); err != nil {
		_ = deletes.Cancel()
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s (%s)\n", emp.FullName, emp.EmployeeID)
	return nil
}

// confirm prints prompt and reads a y/N answer.
func (a *app) confirm(prompt string) bool {
	fmt.Fprintf(a.out, "%s [y/N] ", prompt)
	answer, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// findEmployee resolves a business key, or a handle, against the loaded employees.
func (a *app) findEmployee(key string) (employee.Employee, bool) {
	for _, e := range a.console.Store.Snapshot().Employees {
		if e.EmployeeID == key {
			return e, true
		}
	}
	return a.console.Store.EmployeeByHandle(key)
}

func filterFlags(fs *flag.FlagSet) *attendance.FilterCriteria {
	var criteria attendance.FilterCriteria
	fs.StringVar(&criteria.EmployeeID, "employee", "", "employee ID")
	fs.StringVar(&criteria.StartDate, "start", "", "first date, YYYY-MM-DD")
	fs.StringVar(&criteria.EndDate, "end", "", "last date, YYYY-MM-DD")
	return &criteria
}

func (a *app) attendance(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("attendance: expected list, mark or export")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("attendance list", flag.ContinueOnError)
		criteria := filterFlags(fs)
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.loadFiltered(ctx, *criteria); err != nil {
			return err
		}
		renderAttendance(a.out, a.console.Store.Snapshot().Attendance)
		return nil

	case "mark":
		draft := a.console.NewAttendanceDraft()
		fs := flag.NewFlagSet("attendance mark", flag.ContinueOnError)
		employeeID := fs.String("employee", "", "employee ID")
		fs.StringVar(&draft.Date, "date", draft.Date, "date, YYYY-MM-DD")
		status := fs.String("status", string(draft.Status), "Present or Absent")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		draft.Status = attendance.Status(*status)

		if err := a.console.Store.RefreshEmployees(ctx); err != nil {
			return err
		}
		if emp, ok := a.findEmployee(*employeeID); ok {
			draft.Employee = emp.ID
		} else {
			// let the server reject it
			draft.Employee = *employeeID
		}

		rec, err := a.console.Mutations.CreateAttendance(ctx, &draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Marked %s %s on %s\n", rec.EmployeeName, rec.Status, rec.Date)
		return nil

	case "export":
		fs := flag.NewFlagSet("attendance export", flag.ContinueOnError)
		criteria := filterFlags(fs)
		output := fs.String("o", "attendance.xlsx", "output file, relative to -dir")
		dir := fs.String("dir", ".", "export directory")
		withSummary := fs.Bool("summary", false, "add a summary sheet computed from the exported records")
		force := fs.Bool("force", false, "overwrite an existing file")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		files, err := storage.NewLocalStorage(*dir)
		if err != nil {
			return err
		}
		if err := a.loadFiltered(ctx, *criteria); err != nil {
			return err
		}
		return a.export(ctx, files, *output, *withSummary, *force)

	default:
		return fmt.Errorf("attendance: unknown subcommand %q", args[0])
	}
}

// loadFiltered loads both collections, then narrows attendance when criteria is set.
func (a *app) loadFiltered(ctx context.Context, criteria attendance.FilterCriteria) error {
	if err := a.console.Store.Load(ctx); err != nil {
		return err
	}
	if criteria.IsEmpty() {
		return nil
	}
	return a.console.Filters.Apply(ctx, criteria)
}

func (a *app) export(ctx context.Context, files storage.FileStorage, name string, withSummary, force bool) error {
	if !force {
		exists, err := files.Exists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s already exists, use -force to overwrite", name)
		}
	}

	snapshot := a.console.Store.Snapshot()
	var summary *dashboard.DashboardSummary
	if withSummary {
		s := a.console.LocalDashboard()
		summary = &s
	}

	var buf bytes.Buffer
	if err := export.WriteAttendance(&buf, snapshot.Attendance, summary); err != nil {
		return err
	}
	path, err := files.Save(ctx, &buf, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exported %s records to %s\n", formatCount(len(snapshot.Attendance)), path)
	return nil
}

func (a *app) dashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	local := fs.Bool("local", false, "aggregate the loaded records instead of asking the server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *local {
		if err := a.console.Store.Load(ctx); err != nil {
			return err
		}
		renderDashboard(a.out, a.console.LocalDashboard())
		return nil
	}

	summary, err := a.console.RefreshDashboard(ctx)
	if err != nil {
		return err
	}
	renderDashboard(a.out, summary)
	return nil
}

// watch reloads the data and prints the server dashboard on every tick until interrupted.
func (a *app) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	interval := fs.Duration("interval", 30*time.Second, "refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *interval <= 0 {
		return errors.New("watch: interval must be positive")
	}

	scheduler := cron.NewScheduler(ctx, a.logger)
	scheduler.AddJob("refresh_dashboard", *interval, func(ctx context.Context) error {
		if err := a.console.Store.Load(ctx); err != nil {
			return err
		}
		summary, err := a.console.RefreshDashboard(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "\n--- %s ---\n", time.Now().Format(time.TimeOnly))
		renderDashboard(a.out, summary)
		return nil
	})

	scheduler.Start()
	<-ctx.Done()
	scheduler.Stop()
	return nil
}

func departmentList() string {
	names := make([]string, len(employee.Departments))
	for i, d := range employee.Departments {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
