package models

import "time"

// DocumentType classifies a submitted artifact.
type DocumentType string

const (
	DocTranscript           DocumentType = "transcript"
	DocIDProof              DocumentType = "id_proof"
	DocRecommendationLetter DocumentType = "recommendation_letter"
	DocStatementOfPurpose   DocumentType = "statement_of_purpose"
	DocResume               DocumentType = "resume"
	DocOther                DocumentType = "other"
)

// IsValid reports whether t is a known document type.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTranscript, DocIDProof, DocRecommendationLetter,
		DocStatementOfPurpose, DocResume, DocOther:
		return true
	}
	return false
}

// RequiredDocumentTypes is the fixed set an application must have verified
// before it is eligible for shortlisting. Order matters: the missing-document
// check preserves it.
func RequiredDocumentTypes() []DocumentType {
	return []DocumentType{DocTranscript, DocIDProof, DocRecommendationLetter}
}

// VerificationStatus is the verification outcome of a single document.
type VerificationStatus string

const (
	VerificationPending            VerificationStatus = "pending"
	VerificationVerified           VerificationStatus = "verified"
	VerificationRejected           VerificationStatus = "rejected"
	VerificationNeedsClarification VerificationStatus = "needs_clarification"
)

// Document is a single submitted artifact tied to one application and one
// document type. Verification mutates only the document itself; the
// application's verification_results map is merged in a separate write.
type Document struct {
	ID                 string             `json:"id"`
	StudentID          string             `json:"student_id" binding:"required"`
	AdmissionID        string             `json:"admission_id" binding:"required"`
	DocumentType       DocumentType       `json:"document_type" binding:"required"`
	FileName           string             `json:"file_name" binding:"required"`
	FilePath           string             `json:"file_path"`
	Content            string             `json:"content,omitempty"`
	UploadedDate       time.Time          `json:"uploaded_date"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	VerificationNotes  string             `json:"verification_notes,omitempty"`
	VerificationDate   *time.Time         `json:"verification_date,omitempty"`
}

// Validate checks the required fields on a stored document record.
func (d *Document) Validate() error {
	if d.ID == "" || d.StudentID == "" || d.AdmissionID == "" {
		return errMissingRequiredFields("document", "id", "student_id", "admission_id")
	}
	if !d.DocumentType.IsValid() {
		return errUnknownEnumValue("document", "document_type", string(d.DocumentType))
	}
	return nil
}
