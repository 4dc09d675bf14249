package dto

import "time"

// CreateStudentRequest represents a student registration request
type CreateStudentRequest struct {
	Name              string                 `json:"name" binding:"required"`
	Email             string                 `json:"email" binding:"required,email"`
	Phone             string                 `json:"phone"`
	DateOfBirth       *time.Time             `json:"date_of_birth,omitempty"`
	Address           string                 `json:"address"`
	PreviousEducation map[string]interface{} `json:"previous_education,omitempty"`
	GPA               float64                `json:"gpa" binding:"gte=0,lte=4"`
}

// UpdateStudentRequest represents a partial student profile update. Nil
// fields are left unchanged.
type UpdateStudentRequest struct {
	Name              *string                `json:"name,omitempty"`
	Email             *string                `json:"email,omitempty" binding:"omitempty,email"`
	Phone             *string                `json:"phone,omitempty"`
	DateOfBirth       *time.Time             `json:"date_of_birth,omitempty"`
	Address           *string                `json:"address,omitempty"`
	PreviousEducation map[string]interface{} `json:"previous_education,omitempty"`
	GPA               *float64               `json:"gpa,omitempty" binding:"omitempty,gte=0,lte=4"`
}

// WelcomeRequest asks the counsellor to send a welcome message
type WelcomeRequest struct {
	SentBy string `json:"sent_by"`
}
