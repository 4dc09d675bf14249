package models

import "time"

// CommunicationType labels counsellor messages sent to students.
type CommunicationType string

const (
	CommWelcomeMessage  CommunicationType = "welcome_message"
	CommDocumentRequest CommunicationType = "document_request"
	CommStatusUpdate    CommunicationType = "status_update"
	CommAdmissionLetter CommunicationType = "admission_letter"
	CommRejectionLetter CommunicationType = "rejection_letter"
)

// Communication is one counsellor message persisted for audit and replay in
// the student portal.
type Communication struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"student_id"`
	AdmissionID string            `json:"admission_id,omitempty"`
	Type        CommunicationType `json:"type"`
	Content     string            `json:"content"`
	Date        time.Time         `json:"date"`
	SentBy      string            `json:"sent_by"`
}
