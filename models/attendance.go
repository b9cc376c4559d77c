package models

import (
	"time"
)

const AttendanceStatusPresent = "present"

// Attendance records one day for one employee. EmployeeID is not validated
// against the employees table and no uniqueness holds on (employee, date);
// duplicate entries for the same day are allowed.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employeeId"`
	Date       time.Time `gorm:"not null" json:"date"`
	Status     string    `gorm:"not null;size:50;default:present" json:"status"`
	Task       *string   `json:"task"`
	CreatedAt  time.Time `json:"createdAt"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}
