package schema

import (
	"encoding/json"
	"testing"
	"time"

	"hrms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateInsertValidate(t *testing.T) {
	in := CandidateInsert{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "1234567",
		Position:   "Engineer",
		Experience: "2 years",
	}

	candidate, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", candidate.FullName)
	assert.Equal(t, models.CandidateStatusActive, candidate.Status)
}

func TestCandidateInsertEnumeratesMissingFields(t *testing.T) {
	in := CandidateInsert{FullName: "Jane Doe"}

	_, err := in.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"email is required",
		"phone is required",
		"position is required",
		"experience is required",
	}, verr.Problems)
	assert.Contains(t, err.Error(), "email is required")
}

func TestEmployeeInsertParsesDate(t *testing.T) {
	in := EmployeeInsert{
		FullName:      "John Doe",
		Email:         "john@example.com",
		Phone:         "7654321",
		Position:      "Engineer",
		Department:    "R&D",
		DateOfJoining: "2025-01-15",
	}

	employee, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), employee.DateOfJoining)
	assert.Equal(t, models.EmployeeStatusPresent, employee.Status)

	in.DateOfJoining = "not-a-date"
	_, err = in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dateOfJoining must be a date")
}

func TestEmployeeInsertAcceptsRFC3339(t *testing.T) {
	in := EmployeeInsert{
		FullName:      "John Doe",
		Email:         "john@example.com",
		Phone:         "7654321",
		Position:      "Engineer",
		Department:    "R&D",
		DateOfJoining: "2025-01-15T09:30:00Z",
	}

	employee, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, 2025, employee.DateOfJoining.Year())
	assert.Equal(t, 9, employee.DateOfJoining.Hour())
}

func TestAttendanceInsertRequiresEmployee(t *testing.T) {
	in := AttendanceInsert{Date: "2025-03-10"}

	_, err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employeeId is required")
}

func TestLeaveInsertDefaultsEndDateToStartDate(t *testing.T) {
	in := LeaveInsert{
		EmployeeID: 7,
		StartDate:  "2025-03-10",
		Reason:     "vacation",
	}

	leave, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, leave.StartDate, leave.EndDate)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
}

func TestLeaveInsertKeepsExplicitEndDate(t *testing.T) {
	in := LeaveInsert{
		EmployeeID: 7,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-14",
		Reason:     "vacation",
	}

	leave, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), leave.EndDate)
}

func TestLeaveInsertRejectsBadDates(t *testing.T) {
	in := LeaveInsert{
		EmployeeID: 7,
		StartDate:  "soon",
		Reason:     "vacation",
	}

	_, err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startDate must be a date")
}

func TestUserInsertDefaultsRole(t *testing.T) {
	in := UserInsert{
		Username: "hruser",
		Password: "secret",
		FullName: "HR User",
	}

	user, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, models.RoleHR, user.Role)
}

func TestCandidatePatchChangesOnlySetFields(t *testing.T) {
	phone := "999"
	patch := CandidatePatch{Phone: &phone}

	changes, err := patch.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"phone": "999"}, changes)
}

func TestCandidatePatchIgnoresUnknownFields(t *testing.T) {
	var patch CandidatePatch
	raw := `{"phone":"999","id":12,"createdAt":"2020-01-01T00:00:00Z","mystery":true}`
	require.NoError(t, json.Unmarshal([]byte(raw), &patch))

	changes, err := patch.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"phone": "999"}, changes)
}

func TestLeavePatchParsesDates(t *testing.T) {
	start := "2025-03-10"
	patch := LeavePatch{StartDate: &start}

	changes, err := patch.Changes()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), changes["start_date"])

	bad := "whenever"
	patch = LeavePatch{EndDate: &bad}
	_, err = patch.Changes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endDate must be a date")
}

func TestAttendancePatchParsesDate(t *testing.T) {
	date := "2025-03-10"
	status := "absent"
	patch := AttendancePatch{Date: &date, Status: &status}

	changes, err := patch.Changes()
	require.NoError(t, err)
	assert.Len(t, changes, 2)
	assert.Equal(t, "absent", changes["status"])
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), changes["date"])
}

func TestEmptyPatchHasNoChanges(t *testing.T) {
	changes, err := (&EmployeePatch{}).Changes()
	require.NoError(t, err)
	assert.Empty(t, changes)
}
