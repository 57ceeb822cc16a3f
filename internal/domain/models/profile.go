// internal/domain/models/profile.go
package models

import "strings"

// Profile is the signed-in admin's editable account details.
type Profile struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
}

// PasswordChange is sent to the backend to rotate the admin's password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// DisplayName is the name shown in the dashboard header, falling back to
// the email when no name is set.
func (p Profile) DisplayName() string {
	if n := strings.TrimSpace(p.FirstName + " " + p.LastName); n != "" {
		return n
	}
	return p.Email
}
