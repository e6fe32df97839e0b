package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
)

// Attendance is one day's presence mark for an employee. EmployeeID and EmployeeName are a
// snapshot of the employee taken when the record was created.
type Attendance struct {
	ID           string        `json:"id"`
	Employee     string        `json:"employee"`
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Date         dateonly.Date `json:"date"`
	Status       Status        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}
