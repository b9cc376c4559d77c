package schema

import (
	"hrms/models"
)

type UserInsert struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Validate returns the user record with the plaintext password still in
// place; the caller hashes it before the record is stored.
func (in *UserInsert) Validate() (*models.User, error) {
	v := &validator{}
	v.require(in.Username, "username")
	v.require(in.Password, "password")
	v.require(in.FullName, "fullName")
	if err := v.err(); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleHR
	}

	return &models.User{
		Username: in.Username,
		Password: in.Password,
		FullName: in.FullName,
		Role:     role,
	}, nil
}
