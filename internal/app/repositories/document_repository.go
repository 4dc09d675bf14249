package repositories

import (
	"context"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// DocumentRepository handles submitted document records in the document store.
type DocumentRepository struct {
	store docstore.Store
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func documentMetadata(document *models.Document) docstore.Metadata {
	return docstore.Metadata{
		"student_id":          document.StudentID,
		"admission_id":        document.AdmissionID,
		"document_type":       string(document.DocumentType),
		"verification_status": string(document.VerificationStatus),
	}
}

// Create stores a new document record.
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	err := r.store.Put(ctx, docstore.CollectionDocuments, document.ID, document, documentMetadata(document))
	return mapStoreError(err, apperrors.ErrDocumentNotFound, apperrors.ErrResourceAlreadyExists)
}

func decodeDocument(rec *docstore.Record) (*models.Document, error) {
	document := &models.Document{}
	if err := rec.Decode(document); err != nil {
		return nil, apperrors.NewValidationError("malformed document record: " + err.Error())
	}
	if err := document.Validate(); err != nil {
		return nil, err
	}
	return document, nil
}

// GetByID fetches a document by id.
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionDocuments, id)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrDocumentNotFound, apperrors.ErrResourceAlreadyExists)
	}
	return decodeDocument(rec)
}

// ListByAdmission returns all documents uploaded for an admission, ordered
// by id.
func (r *DocumentRepository) ListByAdmission(ctx context.Context, admissionID string) ([]*models.Document, error) {
	records, err := r.store.Query(ctx, docstore.CollectionDocuments, docstore.Filter{
		"admission_id": docstore.Eq(admissionID),
	}, 0, 0)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrDocumentNotFound, apperrors.ErrResourceAlreadyExists)
	}

	documents := []*models.Document{}
	for i := range records {
		document, err := decodeDocument(&records[i])
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	return documents, nil
}

// List returns documents matching the optional filters.
func (r *DocumentRepository) List(ctx context.Context, studentID, admissionID string, docType models.DocumentType, limit, offset int) ([]*models.Document, error) {
	filter := docstore.Filter{}
	if studentID != "" {
		filter["student_id"] = docstore.Eq(studentID)
	}
	if admissionID != "" {
		filter["admission_id"] = docstore.Eq(admissionID)
	}
	if docType != "" {
		filter["document_type"] = docstore.Eq(string(docType))
	}

	records, err := r.store.Query(ctx, docstore.CollectionDocuments, filter, limit, offset)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrDocumentNotFound, apperrors.ErrResourceAlreadyExists)
	}

	documents := []*models.Document{}
	for i := range records {
		document, err := decodeDocument(&records[i])
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	return documents, nil
}

// Update replaces a document record.
func (r *DocumentRepository) Update(ctx context.Context, document *models.Document) error {
	err := r.store.Update(ctx, docstore.CollectionDocuments, document.ID, document, documentMetadata(document))
	return mapStoreError(err, apperrors.ErrDocumentNotFound, apperrors.ErrResourceAlreadyExists)
}

// Delete removes a document record.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	existed, err := r.store.Delete(ctx, docstore.CollectionDocuments, id)
	if err != nil {
		return mapStoreError(err, apperrors.ErrDocumentNotFound, apperrors.ErrResourceAlreadyExists)
	}
	if !existed {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
