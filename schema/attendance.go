package schema

import (
	"hrms/models"
)

type AttendanceInsert struct {
	EmployeeID uint    `json:"employeeId"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Task       *string `json:"task"`
}

func (in *AttendanceInsert) Validate() (*models.Attendance, error) {
	v := &validator{}
	v.requireID(in.EmployeeID, "employeeId")
	date := v.date(in.Date, "date")
	if err := v.err(); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.AttendanceStatusPresent
	}

	return &models.Attendance{
		EmployeeID: in.EmployeeID,
		Date:       date,
		Status:     status,
		Task:       in.Task,
	}, nil
}

type AttendancePatch struct {
	EmployeeID *uint   `json:"employeeId"`
	Date       *string `json:"date"`
	Status     *string `json:"status"`
	Task       *string `json:"task"`
}

func (p *AttendancePatch) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if p.EmployeeID != nil {
		changes["employee_id"] = *p.EmployeeID
	}
	if p.Date != nil {
		t, err := parseDate(*p.Date)
		if err != nil {
			return nil, &ValidationError{Problems: []string{"date must be a date"}}
		}
		changes["date"] = t
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.Task != nil {
		changes["task"] = *p.Task
	}
	return changes, nil
}
