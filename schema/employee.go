package schema

import (
	"hrms/models"
)

type EmployeeInsert struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
	Status        string `json:"status"`
	CandidateID   *uint  `json:"candidateId"`
}

func (in *EmployeeInsert) Validate() (*models.Employee, error) {
	v := &validator{}
	v.require(in.FullName, "fullName")
	v.require(in.Email, "email")
	v.require(in.Phone, "phone")
	v.require(in.Position, "position")
	v.require(in.Department, "department")
	dateOfJoining := v.date(in.DateOfJoining, "dateOfJoining")
	if err := v.err(); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.EmployeeStatusPresent
	}

	return &models.Employee{
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Position:      in.Position,
		Department:    in.Department,
		DateOfJoining: dateOfJoining,
		Status:        status,
		CandidateID:   in.CandidateID,
	}, nil
}

type EmployeePatch struct {
	FullName      *string `json:"fullName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Position      *string `json:"position"`
	Department    *string `json:"department"`
	DateOfJoining *string `json:"dateOfJoining"`
	Status        *string `json:"status"`
	CandidateID   *uint   `json:"candidateId"`
}

func (p *EmployeePatch) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if p.FullName != nil {
		changes["full_name"] = *p.FullName
	}
	if p.Email != nil {
		changes["email"] = *p.Email
	}
	if p.Phone != nil {
		changes["phone"] = *p.Phone
	}
	if p.Position != nil {
		changes["position"] = *p.Position
	}
	if p.Department != nil {
		changes["department"] = *p.Department
	}
	if p.DateOfJoining != nil {
		t, err := parseDate(*p.DateOfJoining)
		if err != nil {
			return nil, &ValidationError{Problems: []string{"dateOfJoining must be a date"}}
		}
		changes["date_of_joining"] = t
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.CandidateID != nil {
		changes["candidate_id"] = *p.CandidateID
	}
	return changes, nil
}
