package models

import "time"

// AdmissionStatus is the stage of an application in the admission pipeline.
type AdmissionStatus string

const (
	StatusPending              AdmissionStatus = "pending"
	StatusDocumentVerification AdmissionStatus = "document_verification"
	StatusShortlisted          AdmissionStatus = "shortlisted"
	StatusAccepted             AdmissionStatus = "accepted"
	StatusRejected             AdmissionStatus = "rejected"
	StatusEnrolled             AdmissionStatus = "enrolled"
	StatusWithdrawn            AdmissionStatus = "withdrawn"
)

// IsValid reports whether s is a known status.
func (s AdmissionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusDocumentVerification, StatusShortlisted,
		StatusAccepted, StatusRejected, StatusEnrolled, StatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the pipeline. Terminal statuses
// are never auto-reverted: only an explicit re-evaluate request may overwrite
// shortlisting results on accepted/rejected applications, and even that never
// resurrects a withdrawal.
func (s AdmissionStatus) IsTerminal() bool {
	switch s {
	case StatusEnrolled, StatusWithdrawn:
		return true
	}
	return false
}

// transitions encodes the admission state machine:
// pending -> document_verification -> shortlisted -> accepted|rejected -> enrolled.
// Withdrawal is open only while the application is still undecided; once a
// decision is recorded the outcome stands.
var transitions = map[AdmissionStatus][]AdmissionStatus{
	StatusPending:              {StatusDocumentVerification, StatusWithdrawn},
	StatusDocumentVerification: {StatusShortlisted, StatusWithdrawn},
	StatusShortlisted:          {StatusAccepted, StatusRejected, StatusWithdrawn},
	StatusAccepted:             {StatusEnrolled},
	StatusRejected:             {},
	StatusEnrolled:             {},
	StatusWithdrawn:            {},
}

// CanTransitionTo reports whether moving from s to next is a legal pipeline
// transition.
func (s AdmissionStatus) CanTransitionTo(next AdmissionStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// VerificationResult is the per-document-type outcome merged onto an
// application by the verification aggregator.
type VerificationResult struct {
	Status VerificationStatus `json:"status"`
	Notes  string             `json:"notes"`
	Date   time.Time          `json:"date"`
}

// ShortlistingResults holds the parsed scoring output of a shortlisting
// evaluation. Scores keeps raw string values for criteria that did not parse
// as numbers; OverallScore averages only the numeric ones.
type ShortlistingResults struct {
	Scores         map[string]interface{} `json:"scores"`
	OverallScore   float64                `json:"overall_score"`
	Recommendation string                 `json:"recommendation"`
	Evaluation     string                 `json:"evaluation"`
	Date           time.Time              `json:"date"`
}

// OfficerReview is the admission officer's narrative review of an application.
type OfficerReview struct {
	Result string    `json:"result"`
	Date   time.Time `json:"date"`
}

// Decision is the final admission decision narrative.
type Decision struct {
	Result string    `json:"result"`
	Date   time.Time `json:"date"`
}

// CommunicationEntry is one item of an application's communication history.
type CommunicationEntry struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
	Sender  string    `json:"sender"`
}

// Admission represents one student's bid for one program. Field names are the
// external contract consumed by the dashboard UI.
type Admission struct {
	ID                   string                        `json:"id"`
	StudentID            string                        `json:"student_id" binding:"required"`
	Program              string                        `json:"program" binding:"required"`
	ApplicationDate      time.Time                     `json:"application_date"`
	Status               AdmissionStatus               `json:"status"`
	DocumentsSubmitted   []string                      `json:"documents_submitted"`
	VerificationResults  map[string]VerificationResult `json:"verification_results,omitempty"`
	ShortlistingResults  *ShortlistingResults          `json:"shortlisting_results,omitempty"`
	OfficerReview        *OfficerReview                `json:"officer_review,omitempty"`
	Decision             *Decision                     `json:"decision,omitempty"`
	AdmissionLetterSent  bool                          `json:"admission_letter_sent"`
	FeeSlipSent          bool                          `json:"fee_slip_sent"`
	CommunicationHistory []CommunicationEntry          `json:"communication_history"`
}

// Validate checks the required fields on a stored admission record. Records
// missing them are rejected as malformed rather than partially processed.
func (a *Admission) Validate() error {
	if a.ID == "" || a.StudentID == "" || a.Program == "" {
		return errMissingRequiredFields("admission", "id", "student_id", "program")
	}
	if !a.Status.IsValid() {
		return errUnknownEnumValue("admission", "status", string(a.Status))
	}
	return nil
}
