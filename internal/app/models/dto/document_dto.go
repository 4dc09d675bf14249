package dto

import "github.com/selimd/admitflow/internal/app/models"

// CreateDocumentRequest represents a document submission. The file itself
// arrives as multipart form data; this carries the metadata fields.
type CreateDocumentRequest struct {
	StudentID    string              `json:"student_id" form:"student_id" binding:"required"`
	AdmissionID  string              `json:"admission_id" form:"admission_id" binding:"required"`
	DocumentType models.DocumentType `json:"document_type" form:"document_type" binding:"required"`
	Content      string              `json:"content" form:"content"`
}

// VerifyDocumentRequest triggers verification of a single document
type VerifyDocumentRequest struct {
	Notes string `json:"notes,omitempty"`
}
