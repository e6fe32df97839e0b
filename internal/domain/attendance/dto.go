package attendance

import (
	"net/url"
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkAttendanceRequest is the body of POST /attendance/. Employee is the employee handle.
type MarkAttendanceRequest struct {
	Employee string `json:"employee"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// FILTER DTOs
// ========================================

// FilterCriteria narrows the attendance listing. Empty fields mean "no constraint".
type FilterCriteria struct {
	EmployeeID string `json:"employee_id,omitempty"`
	StartDate  string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f FilterCriteria) IsEmpty() bool {
	return f.EmployeeID == "" && f.StartDate == "" && f.EndDate == ""
}

// Query encodes the criteria as query parameters, omitting empty fields.
func (f FilterCriteria) Query() url.Values {
	q := url.Values{}
	if f.EmployeeID != "" {
		q.Set("employee_id", f.EmployeeID)
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q
}

// FilterFromQuery reads criteria from query parameters.
func FilterFromQuery(q url.Values) FilterCriteria {
	return FilterCriteria{
		EmployeeID: strings.TrimSpace(q.Get("employee_id")),
		StartDate:  strings.TrimSpace(q.Get("start_date")),
		EndDate:    strings.TrimSpace(q.Get("end_date")),
	}
}

// Bounds is a parsed FilterCriteria. Zero dates are open bounds.
type Bounds struct {
	EmployeeID string
	StartDate  dateonly.Date
	EndDate    dateonly.Date
}

// Bounds parses the date fields. Unparsable dates are ignored rather than rejected.
func (f FilterCriteria) Bounds() Bounds {
	b := Bounds{EmployeeID: f.EmployeeID}
	if d, err := dateonly.Parse(f.StartDate); err == nil {
		b.StartDate = d
	}
	if d, err := dateonly.Parse(f.EndDate); err == nil {
		b.EndDate = d
	}
	return b
}

// Match reports whether a record satisfies the bounds.
func (b Bounds) Match(a Attendance) bool {
	if b.EmployeeID != "" && a.EmployeeID != b.EmployeeID {
		return false
	}
	return a.Date.Within(b.StartDate, b.EndDate)
}
