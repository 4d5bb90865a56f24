package models

import (
	"strings"

	"gorm.io/gorm"
)

// User owns all budgeting resources. Session handling is done by the
// authenticating proxy in front of the backend, the user ID is taken
// from the request.
type User struct {
	DefaultModel
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BeforeSave trims whitespace from all strings.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}
