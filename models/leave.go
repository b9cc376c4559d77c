package models

import (
	"time"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
)

type Leave struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   uint      `gorm:"not null;index" json:"employeeId"`
	StartDate    time.Time `gorm:"not null" json:"startDate"`
	EndDate      time.Time `gorm:"not null" json:"endDate"`
	Reason       string    `gorm:"not null" json:"reason"`
	Status       string    `gorm:"not null;size:50;default:pending" json:"status"`
	Designation  *string   `json:"designation"`
	DocumentsURL *string   `json:"documentsUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (l *Leave) IsApproved() bool {
	return l.Status == LeaveStatusApproved
}
