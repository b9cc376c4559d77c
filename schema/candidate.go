package schema

import (
	"hrms/models"
)

type CandidateInsert struct {
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Position   string  `json:"position"`
	Experience string  `json:"experience"`
	Status     string  `json:"status"`
	ResumeURL  *string `json:"resumeUrl"`
}

func (in *CandidateInsert) Validate() (*models.Candidate, error) {
	v := &validator{}
	v.require(in.FullName, "fullName")
	v.require(in.Email, "email")
	v.require(in.Phone, "phone")
	v.require(in.Position, "position")
	v.require(in.Experience, "experience")
	if err := v.err(); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.CandidateStatusActive
	}

	return &models.Candidate{
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		Position:   in.Position,
		Experience: in.Experience,
		Status:     status,
		ResumeURL:  in.ResumeURL,
	}, nil
}

type CandidatePatch struct {
	FullName   *string `json:"fullName"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	Experience *string `json:"experience"`
	Status     *string `json:"status"`
	ResumeURL  *string `json:"resumeUrl"`
}

func (p *CandidatePatch) Changes() (map[string]any, error) {
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
	if p.Experience != nil {
		changes["experience"] = *p.Experience
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.ResumeURL != nil {
		changes["resume_url"] = *p.ResumeURL
	}
	return changes, nil
}
