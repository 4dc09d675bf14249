package models

import "time"

// StaffRole scopes what a staff account may do through the API.
type StaffRole string

const (
	RoleAdmin      StaffRole = "admin"
	RoleOfficer    StaffRole = "officer"
	RoleCounsellor StaffRole = "counsellor"
)

// StaffAccount is an administrative login for the dashboard. The password
// hash stays in the persisted record; controllers expose staff data only
// through DTOs that omit it.
type StaffAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         StaffRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks the required fields on a stored staff record.
func (a *StaffAccount) Validate() error {
	if a.ID == "" || a.Email == "" {
		return errMissingRequiredFields("staff", "id", "email")
	}
	return nil
}
