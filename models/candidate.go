package models

import (
	"time"
)

const CandidateStatusActive = "active"

type Candidate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"not null;size:200" json:"fullName"`
	Email      string    `gorm:"uniqueIndex;not null;size:200" json:"email"`
	Phone      string    `gorm:"not null;size:50" json:"phone"`
	Position   string    `gorm:"not null;size:100" json:"position"`
	Experience string    `gorm:"not null" json:"experience"`
	Status     string    `gorm:"not null;size:50;default:active" json:"status"`
	ResumeURL  *string   `json:"resumeUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}
