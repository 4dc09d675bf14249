package services

import (
	"context"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/metrics"
	"github.com/selimd/admitflow/internal/pkg/oracle"
	"github.com/selimd/admitflow/internal/pkg/policy"
)

// VerificationService runs document verification and aggregates per-document
// outcomes onto the owning application. When every required document type is
// verified and the application sits in document_verification, it advances to
// shortlisted.
type VerificationService struct {
	documentRepo  *repositories.DocumentRepository
	admissionRepo *repositories.AdmissionRepository
	oracle        oracle.Oracle
	metrics       *metrics.Metrics
}

// NewVerificationService creates a new verification service instance
func NewVerificationService(
	documentRepo *repositories.DocumentRepository,
	admissionRepo *repositories.AdmissionRepository,
	decisionOracle oracle.Oracle,
	m *metrics.Metrics,
) *VerificationService {
	return &VerificationService{
		documentRepo:  documentRepo,
		admissionRepo: admissionRepo,
		oracle:        decisionOracle,
		metrics:       m,
	}
}

// VerifyDocument checks one document through the document checker oracle and
// merges the outcome onto the owning application. The oracle call precedes
// every write: an oracle failure leaves both the document and the application
// untouched. Re-verifying a document overwrites its previous outcome.
func (s *VerificationService) VerifyDocument(ctx context.Context, documentID string, req *dto.VerifyDocumentRequest) (*models.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	admission, version, err := s.admissionRepo.GetByID(ctx, document.AdmissionID)
	if err != nil {
		return nil, err
	}
	if admission.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError(
			"cannot verify documents for a " + string(admission.Status) + " application")
	}

	input := map[string]interface{}{
		"task":          "verify",
		"document_type": string(document.DocumentType),
		"file_name":     document.FileName,
		"student_id":    document.StudentID,
	}
	if document.Content != "" {
		input["content"] = document.Content
	}
	if req != nil && req.Notes != "" {
		input["notes"] = req.Notes
	}

	start := time.Now()
	narrative, err := s.oracle.Evaluate(ctx, oracle.RoleDocumentChecker, input)
	s.metrics.ObserveOracle(oracle.RoleDocumentChecker, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	status := policy.ClassifyVerification(narrative)
	now := time.Now().UTC()

	document.VerificationStatus = status
	document.VerificationNotes = narrative
	document.VerificationDate = &now
	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, err
	}

	if admission.VerificationResults == nil {
		admission.VerificationResults = map[string]models.VerificationResult{}
	}
	admission.VerificationResults[string(document.DocumentType)] = models.VerificationResult{
		Status: status,
		Notes:  narrative,
		Date:   now,
	}

	if s.readyForShortlisting(admission) {
		admission.Status = models.StatusShortlisted
	}

	if err := s.admissionRepo.UpdateVersioned(ctx, admission, version); err != nil {
		return nil, err
	}

	s.metrics.CountVerification(string(status))
	return document, nil
}

// readyForShortlisting reports whether every required document type is
// verified. The advance only fires out of document_verification: completing
// verification never resurrects a withdrawn or decided application.
func (s *VerificationService) readyForShortlisting(admission *models.Admission) bool {
	if admission.Status != models.StatusDocumentVerification {
		return false
	}
	for _, docType := range models.RequiredDocumentTypes() {
		result, ok := admission.VerificationResults[string(docType)]
		if !ok || result.Status != models.VerificationVerified {
			return false
		}
	}
	return true
}

// VerificationItem is the per-document outcome of a bulk verification.
type VerificationItem struct {
	DocumentID   string                    `json:"document_id"`
	DocumentType models.DocumentType       `json:"document_type"`
	Status       models.VerificationStatus `json:"status,omitempty"`
	ErrorMessage string                    `json:"error,omitempty"`
}

// VerifyAll verifies every document submitted for an application. A pending
// application enters document_verification first, so completing the checks
// can advance it. Failures on one document never abort the rest.
func (s *VerificationService) VerifyAll(ctx context.Context, admissionID string) ([]VerificationItem, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, admissionID)
	if err != nil {
		return nil, err
	}
	if admission.Status == models.StatusPending {
		admission.Status = models.StatusDocumentVerification
		if err := s.admissionRepo.UpdateVersioned(ctx, admission, version); err != nil {
			return nil, err
		}
	}

	documents, err := s.documentRepo.ListByAdmission(ctx, admissionID)
	if err != nil {
		return nil, err
	}

	items := make([]VerificationItem, 0, len(documents))
	for _, document := range documents {
		item := VerificationItem{
			DocumentID:   document.ID,
			DocumentType: document.DocumentType,
		}
		verified, err := s.VerifyDocument(ctx, document.ID, nil)
		if err != nil {
			item.ErrorMessage = err.Error()
		} else {
			item.Status = verified.VerificationStatus
		}
		items = append(items, item)
	}

	return items, nil
}

// MissingDocuments lists the required document types an application has not
// yet submitted, in canonical order.
func (s *VerificationService) MissingDocuments(ctx context.Context, admissionID string) (*dto.MissingDocumentsResponse, error) {
	if _, _, err := s.admissionRepo.GetByID(ctx, admissionID); err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.ListByAdmission(ctx, admissionID)
	if err != nil {
		return nil, err
	}

	submitted := map[models.DocumentType]bool{}
	for _, document := range documents {
		submitted[document.DocumentType] = true
	}

	missing := []string{}
	for _, docType := range models.RequiredDocumentTypes() {
		if !submitted[docType] {
			missing = append(missing, string(docType))
		}
	}

	return &dto.MissingDocumentsResponse{
		AdmissionID:      admissionID,
		MissingDocuments: missing,
		Complete:         len(missing) == 0,
	}, nil
}
