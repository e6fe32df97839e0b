package employee

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Employee is a registered member of staff. ID is the backend-assigned handle used by attendance
// records; EmployeeID is the human-assigned business key and is unique.
type Employee struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Department Department `json:"department"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Initial returns the upper-cased first letter of the full name, used as an avatar.
func (e Employee) Initial() string {
	for _, r := range strings.TrimSpace(e.FullName) {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

type Department string

const (
	DepartmentHR         Department = "HR"
	DepartmentIT         Department = "IT"
	DepartmentFinance    Department = "Finance"
	DepartmentMarketing  Department = "Marketing"
	DepartmentOperations Department = "Operations"
	DepartmentSales      Department = "Sales"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentHR,
	DepartmentIT,
	DepartmentFinance,
	DepartmentMarketing,
	DepartmentOperations,
	DepartmentSales,
}

// ParseDepartment returns the department named s or ErrInvalidDepartment.
func ParseDepartment(s string) (Department, error) {
	for _, d := range Departments {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDepartment, s)
}

func (d Department) Valid() bool {
	_, err := ParseDepartment(string(d))
	return err == nil
}

// Palette is the badge colouring of a department.
type Palette struct {
	Background string
	Text       string
}

var palettes = map[Department]Palette{
	DepartmentHR:         {Background: "#e3f2fd", Text: "#1565c0"},
	DepartmentIT:         {Background: "#f3e5f5", Text: "#7b1fa2"},
	DepartmentFinance:    {Background: "#e8f5e8", Text: "#2e7d32"},
	DepartmentMarketing:  {Background: "#fff3e0", Text: "#e65100"},
	DepartmentOperations: {Background: "#fce4ec", Text: "#c2185b"},
	DepartmentSales:      {Background: "#e0f2f1", Text: "#00695c"},
}

func init() {
	for _, d := range Departments {
		if _, ok := palettes[d]; !ok {
			panic(fmt.Sprintf("employee: department %q has no palette", d))
		}
	}
}

// Palette returns the colouring of d. Departments outside the closed set are rejected.
func (d Department) Palette() (Palette, error) {
	p, ok := palettes[d]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrInvalidDepartment, d)
	}
	return p, nil
}
