package models

import "time"

// Student is an applicant's identity and academic profile. Owned by
// registration; never deleted while referencing applications exist.
type Student struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name" binding:"required"`
	Email             string                 `json:"email" binding:"required,email"`
	Phone             string                 `json:"phone"`
	DateOfBirth       *time.Time             `json:"date_of_birth,omitempty"`
	Address           string                 `json:"address"`
	PreviousEducation map[string]interface{} `json:"previous_education,omitempty"`
	GPA               float64                `json:"gpa"`
	RegistrationDate  time.Time              `json:"registration_date"`
	AdmissionIDs      []string               `json:"admission_ids"`
	LoanIDs           []string               `json:"loan_ids"`
	Communications    []string               `json:"communications,omitempty"`
}

// Validate checks the required fields on a stored student record.
func (s *Student) Validate() error {
	if s.ID == "" || s.Name == "" || s.Email == "" {
		return errMissingRequiredFields("student", "id", "name", "email")
	}
	return nil
}
