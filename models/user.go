package models

import (
	"time"
)

const RoleHR = "hr"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	FullName  string    `gorm:"not null;size:200" json:"fullName"`
	Role      string    `gorm:"not null;size:20;default:hr" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
