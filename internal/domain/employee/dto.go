package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
)

// EmployeeIDMaxLength bounds the business key.
const EmployeeIDMaxLength = 20

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Normalize trims surrounding whitespace from every field.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.MaxLength(r.EmployeeID, EmployeeIDMaxLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be at most 20 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if !validator.MaxLength(r.FullName, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must be at most 100 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Enter a valid email address.",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	} else if !Department(r.Department).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of HR, IT, Finance, Marketing, Operations, Sales",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
