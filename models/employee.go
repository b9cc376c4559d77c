package models

import (
	"time"
)

const EmployeeStatusPresent = "present"

// Employee is created either directly or by promoting a candidate, in which
// case CandidateID points back at the originating candidate. The reference is
// logical only; nothing validates it against the candidates table.
type Employee struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FullName      string    `gorm:"not null;size:200" json:"fullName"`
	Email         string    `gorm:"uniqueIndex;not null;size:200" json:"email"`
	Phone         string    `gorm:"not null;size:50" json:"phone"`
	Position      string    `gorm:"not null;size:100" json:"position"`
	Department    string    `gorm:"not null;size:100" json:"department"`
	DateOfJoining time.Time `gorm:"not null" json:"dateOfJoining"`
	Status        string    `gorm:"not null;size:50;default:present" json:"status"`
	CandidateID   *uint     `gorm:"index" json:"candidateId"`
	CreatedAt     time.Time `json:"createdAt"`
}
