package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/filestorage"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// DocumentService handles document submission and management. Submissions
// either carry an uploaded file, stored on disk, or inline text content.
type DocumentService struct {
	documentRepo  *repositories.DocumentRepository
	admissionRepo *repositories.AdmissionRepository
	storage       filestorage.Storage
}

// NewDocumentService creates a new document service instance
func NewDocumentService(
	documentRepo *repositories.DocumentRepository,
	admissionRepo *repositories.AdmissionRepository,
	storage filestorage.Storage,
) *DocumentService {
	return &DocumentService{
		documentRepo:  documentRepo,
		admissionRepo: admissionRepo,
		storage:       storage,
	}
}

// Submit records a document for an application. The file header may be nil
// for inline submissions. The document is registered on the application's
// submitted list; the verification outcome arrives later through the
// verification service.
func (s *DocumentService) Submit(ctx context.Context, req *dto.CreateDocumentRequest, fileHeader *multipart.FileHeader) (*models.Document, error) {
	if !req.DocumentType.IsValid() {
		return nil, apperrors.NewValidationError("unknown document type " + string(req.DocumentType))
	}

	admission, version, err := s.admissionRepo.GetByID(ctx, req.AdmissionID)
	if err != nil {
		return nil, err
	}
	if admission.StudentID != req.StudentID {
		return nil, apperrors.NewValidationError("admission does not belong to student " + req.StudentID)
	}
	if admission.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError(
			"cannot submit documents to a " + string(admission.Status) + " application")
	}

	fileName := string(req.DocumentType) + ".txt"
	filePath := ""
	if fileHeader != nil {
		fileName = fileHeader.Filename
		filePath, err = s.storage.SaveFile(fileHeader, "documents/"+req.AdmissionID)
		if err != nil {
			return nil, err
		}
	}

	document := &models.Document{
		ID:                 helpers.GenerateID("DOC"),
		StudentID:          req.StudentID,
		AdmissionID:        req.AdmissionID,
		DocumentType:       req.DocumentType,
		FileName:           fileName,
		FilePath:           filePath,
		Content:            req.Content,
		UploadedDate:       time.Now().UTC(),
		VerificationStatus: models.VerificationPending,
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		if filePath != "" {
			_ = s.storage.DeleteFile(filePath)
		}
		return nil, err
	}

	admission.DocumentsSubmitted = appendUnique(admission.DocumentsSubmitted, document.ID)
	if err := s.admissionRepo.UpdateVersioned(ctx, admission, version); err != nil {
		return nil, err
	}

	return document, nil
}

// GetByID fetches a document.
func (s *DocumentService) GetByID(ctx context.Context, id string) (*models.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

// List returns documents matching the filters.
func (s *DocumentService) List(ctx context.Context, studentID, admissionID string, docType models.DocumentType, limit, offset int) ([]*models.Document, error) {
	return s.documentRepo.List(ctx, studentID, admissionID, docType, limit, offset)
}

// Delete removes a document, its stored file, and its registration on the
// application.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if document.FilePath != "" {
		_ = s.storage.DeleteFile(document.FilePath)
	}

	admission, version, err := s.admissionRepo.GetByID(ctx, document.AdmissionID)
	if err != nil {
		// Document removal stands on its own when the admission is gone.
		return nil
	}

	kept := admission.DocumentsSubmitted[:0]
	for _, docID := range admission.DocumentsSubmitted {
		if docID != id {
			kept = append(kept, docID)
		}
	}
	admission.DocumentsSubmitted = kept
	return s.admissionRepo.UpdateVersioned(ctx, admission, version)
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
