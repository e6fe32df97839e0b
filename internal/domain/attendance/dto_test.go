package attendance

import (
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequest_Validate(t *testing.T) {
	valid := MarkAttendanceRequest{Employee: "h1", Date: "2024-01-05", Status: "Present"}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   MarkAttendanceRequest
		field string
	}{
		{"missing employee", MarkAttendanceRequest{Date: "2024-01-05", Status: "Present"}, "employee"},
		{"missing date", MarkAttendanceRequest{Employee: "h1", Status: "Absent"}, "date"},
		{"bad date", MarkAttendanceRequest{Employee: "h1", Date: "05/01/2024", Status: "Absent"}, "date"},
		{"bad status", MarkAttendanceRequest{Employee: "h1", Date: "2024-01-05", Status: "Late"}, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.field)
		})
	}
}

func TestFilterCriteria_Query(t *testing.T) {
	assert.Empty(t, FilterCriteria{}.Query())
	assert.True(t, FilterCriteria{}.IsEmpty())

	q := FilterCriteria{EmployeeID: "EMP1", EndDate: "2024-01-31"}.Query()
	assert.Equal(t, "employee_id=EMP1&end_date=2024-01-31", q.Encode())

	round := FilterFromQuery(q)
	assert.Equal(t, FilterCriteria{EmployeeID: "EMP1", EndDate: "2024-01-31"}, round)
	assert.False(t, round.IsEmpty())
}

func TestFilterCriteria_BoundsIgnoresBadDates(t *testing.T) {
	b := FilterCriteria{StartDate: "not-a-date", EndDate: "2024-01-31"}.Bounds()
	assert.True(t, b.StartDate.IsZero())
	assert.Equal(t, "2024-01-31", b.EndDate.String())
}

func TestBounds_Match(t *testing.T) {
	rec := Attendance{EmployeeID: "EMP1", Date: dateonly.MustParse("2024-01-10")}

	assert.True(t, Bounds{}.Match(rec))
	assert.True(t, FilterCriteria{StartDate: "2024-01-10", EndDate: "2024-01-10"}.Bounds().Match(rec))
	assert.False(t, FilterCriteria{StartDate: "2024-01-11"}.Bounds().Match(rec))
	assert.False(t, FilterCriteria{EndDate: "2024-01-09"}.Bounds().Match(rec))
	assert.False(t, FilterCriteria{EmployeeID: "EMP2"}.Bounds().Match(rec))
}
