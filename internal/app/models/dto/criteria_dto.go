package dto

// CreateCriteriaRequest represents new eligibility criteria for a program
type CreateCriteriaRequest struct {
	Program                string  `json:"program" binding:"required"`
	MinGPA                 float64 `json:"min_gpa" binding:"gte=0,lte=4"`
	RequiredSubjects       string  `json:"required_subjects"`
	AdditionalRequirements string  `json:"additional_requirements"`
	Capacity               int     `json:"capacity" binding:"gte=0"`
}

// UpdateCriteriaRequest represents a partial criteria update
type UpdateCriteriaRequest struct {
	MinGPA                 *float64 `json:"min_gpa,omitempty" binding:"omitempty,gte=0,lte=4"`
	RequiredSubjects       *string  `json:"required_subjects,omitempty"`
	AdditionalRequirements *string  `json:"additional_requirements,omitempty"`
	Capacity               *int     `json:"capacity,omitempty" binding:"omitempty,gte=0"`
}
