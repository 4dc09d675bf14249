package dto

import "github.com/selimd/admitflow/internal/app/models"

// CreateAdmissionRequest represents a new program application
type CreateAdmissionRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Program   string `json:"program" binding:"required"`
}

// UpdateAdmissionRequest represents a partial admission update. Only the
// mutable fields are exposed; lifecycle fields move through the dedicated
// operations.
type UpdateAdmissionRequest struct {
	Program            *string  `json:"program,omitempty"`
	DocumentsSubmitted []string `json:"documents_submitted,omitempty"`
}

// ReviewRequest triggers the admission officer's review of an application
type ReviewRequest struct {
	Notes string `json:"notes,omitempty"`
}

// DecisionRequest triggers the final admission decision
type DecisionRequest struct {
	Notes string `json:"notes,omitempty"`
}

// ShortlistRequest represents a single-application shortlisting evaluation
type ShortlistRequest struct {
	Reevaluate bool `json:"reevaluate"`
}

// BatchShortlistRequest sweeps every shortlisted application, optionally
// narrowed to a single program
type BatchShortlistRequest struct {
	Program    string `json:"program,omitempty"`
	Reevaluate bool   `json:"reevaluate"`
}

// BatchShortlistItem is the per-application outcome of a batch evaluation.
// Failed items carry an error message and never abort the rest of the batch.
type BatchShortlistItem struct {
	AdmissionID  string                      `json:"admission_id"`
	Status       models.AdmissionStatus      `json:"status,omitempty"`
	Results      *models.ShortlistingResults `json:"results,omitempty"`
	ErrorMessage string                      `json:"error,omitempty"`
}

// BatchShortlistResponse summarizes a batch evaluation
type BatchShortlistResponse struct {
	Evaluated int                  `json:"evaluated"`
	Failed    int                  `json:"failed"`
	Items     []BatchShortlistItem `json:"items"`
}

// CapacityReport describes a program's intake headroom
type CapacityReport struct {
	Program        string `json:"program"`
	Capacity       int    `json:"capacity"`
	Accepted       int    `json:"accepted"`
	AvailableSlots int    `json:"available_slots"`
	Pending        int    `json:"pending"`
}

// MissingDocumentsResponse lists required document types the application has
// not yet submitted, in canonical order.
type MissingDocumentsResponse struct {
	AdmissionID      string   `json:"admission_id"`
	MissingDocuments []string `json:"missing_documents"`
	Complete         bool     `json:"complete"`
}

// RequestDocumentsRequest asks the counsellor to request documents from a
// student
type RequestDocumentsRequest struct {
	DocumentTypes []string `json:"document_types" binding:"required,min=1"`
	SentBy        string   `json:"sent_by"`
}

// SendLetterRequest triggers an admission or rejection letter
type SendLetterRequest struct {
	SentBy string `json:"sent_by"`
}
