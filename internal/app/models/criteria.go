package models

// EligibilityCriteria describes a program's entry requirements and intake
// capacity. Capacity 0 means unspecified; the capacity check falls back to
// the configured default.
type EligibilityCriteria struct {
	ID                     string  `json:"id"`
	Program                string  `json:"program" binding:"required"`
	MinGPA                 float64 `json:"min_gpa"`
	RequiredSubjects       string  `json:"required_subjects"`
	AdditionalRequirements string  `json:"additional_requirements"`
	Capacity               int     `json:"capacity"`
}

// Validate checks the required fields on a stored criteria record.
func (c *EligibilityCriteria) Validate() error {
	if c.ID == "" || c.Program == "" {
		return errMissingRequiredFields("eligibility_criteria", "id", "program")
	}
	return nil
}
