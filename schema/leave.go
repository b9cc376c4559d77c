package schema

import (
	"hrms/models"
)

type LeaveInsert struct {
	EmployeeID   uint    `json:"employeeId"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	Designation  *string `json:"designation"`
	DocumentsURL *string `json:"documentsUrl"`
}

func (in *LeaveInsert) Validate() (*models.Leave, error) {
	v := &validator{}
	v.requireID(in.EmployeeID, "employeeId")
	startDate := v.date(in.StartDate, "startDate")
	v.require(in.Reason, "reason")

	// A leave without an explicit end date lasts a single day.
	endDate := startDate
	if in.EndDate != "" {
		endDate = v.date(in.EndDate, "endDate")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.LeaveStatusPending
	}

	return &models.Leave{
		EmployeeID:   in.EmployeeID,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       in.Reason,
		Status:       status,
		Designation:  in.Designation,
		DocumentsURL: in.DocumentsURL,
	}, nil
}

type LeavePatch struct {
	EmployeeID   *uint   `json:"employeeId"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Reason       *string `json:"reason"`
	Status       *string `json:"status"`
	Designation  *string `json:"designation"`
	DocumentsURL *string `json:"documentsUrl"`
}

func (p *LeavePatch) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if p.EmployeeID != nil {
		changes["employee_id"] = *p.EmployeeID
	}
	if p.StartDate != nil {
		t, err := parseDate(*p.StartDate)
		if err != nil {
			return nil, &ValidationError{Problems: []string{"startDate must be a date"}}
		}
		changes["start_date"] = t
	}
	if p.EndDate != nil {
		t, err := parseDate(*p.EndDate)
		if err != nil {
			return nil, &ValidationError{Problems: []string{"endDate must be a date"}}
		}
		changes["end_date"] = t
	}
	if p.Reason != nil {
		changes["reason"] = *p.Reason
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.Designation != nil {
		changes["designation"] = *p.Designation
	}
	if p.DocumentsURL != nil {
		changes["documents_url"] = *p.DocumentsURL
	}
	return changes, nil
}
