package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDepartment(t *testing.T) {
	for _, d := range Departments {
		got, err := ParseDepartment(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	_, err := ParseDepartment("Legal")
	assert.ErrorIs(t, err, ErrInvalidDepartment)

	_, err = ParseDepartment("it")
	assert.ErrorIs(t, err, ErrInvalidDepartment, "department names are case-sensitive")
}

func TestDepartment_Palette(t *testing.T) {
	p, err := DepartmentIT.Palette()
	require.NoError(t, err)
	assert.Equal(t, Palette{Background: "#f3e5f5", Text: "#7b1fa2"}, p)

	for _, d := range Departments {
		_, err := d.Palette()
		assert.NoError(t, err, "department %s", d)
	}

	_, err = Department("Legal").Palette()
	assert.ErrorIs(t, err, ErrInvalidDepartment)
}

func TestEmployee_Initial(t *testing.T) {
	assert.Equal(t, "J", Employee{FullName: "jane Doe"}.Initial())
	assert.Equal(t, "É", Employee{FullName: " émile"}.Initial())
	assert.Equal(t, "?", Employee{}.Initial())
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		EmployeeID: "EMP100",
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Department: "IT",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		edit  func(r *CreateEmployeeRequest)
		field string
	}{
		{"missing employee id", func(r *CreateEmployeeRequest) { r.EmployeeID = " " }, "employee_id"},
		{"long employee id", func(r *CreateEmployeeRequest) { r.EmployeeID = "EMP-00000000000000001" }, "employee_id"},
		{"missing name", func(r *CreateEmployeeRequest) { r.FullName = "" }, "full_name"},
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "jane@" }, "email"},
		{"unknown department", func(r *CreateEmployeeRequest) { r.Department = "Legal" }, "department"},
		{"missing department", func(r *CreateEmployeeRequest) { r.Department = "" }, "department"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.edit(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.field)
		})
	}
}

func TestCreateEmployeeRequest_Normalize(t *testing.T) {
	req := CreateEmployeeRequest{EmployeeID: " EMP1 ", FullName: " Jane ", Email: " j@x.io ", Department: " HR "}
	req.Normalize()
	assert.Equal(t, CreateEmployeeRequest{EmployeeID: "EMP1", FullName: "Jane", Email: "j@x.io", Department: "HR"}, req)
}
