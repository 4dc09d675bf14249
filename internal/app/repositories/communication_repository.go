package repositories

import (
	"context"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// CommunicationRepository persists outbound communications (welcome
// messages, document requests, letters) for audit and history queries.
type CommunicationRepository struct {
	store docstore.Store
}

// NewCommunicationRepository creates a new CommunicationRepository.
func NewCommunicationRepository(store docstore.Store) *CommunicationRepository {
	return &CommunicationRepository{store: store}
}

func communicationMetadata(comm *models.Communication) docstore.Metadata {
	return docstore.Metadata{
		"student_id":   comm.StudentID,
		"admission_id": comm.AdmissionID,
		"type":         string(comm.Type),
	}
}

// Create stores a new communication record.
func (r *CommunicationRepository) Create(ctx context.Context, comm *models.Communication) error {
	err := r.store.Put(ctx, docstore.CollectionCommunications, comm.ID, comm, communicationMetadata(comm))
	return mapStoreError(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists)
}

func decodeCommunication(rec *docstore.Record) (*models.Communication, error) {
	comm := &models.Communication{}
	if err := rec.Decode(comm); err != nil {
		return nil, apperrors.NewValidationError("malformed communication record: " + err.Error())
	}
	return comm, nil
}

// GetByID fetches a communication record by id.
func (r *CommunicationRepository) GetByID(ctx context.Context, id string) (*models.Communication, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionCommunications, id)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists)
	}
	return decodeCommunication(rec)
}

// ListByStudent returns a student's communications.
func (r *CommunicationRepository) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*models.Communication, error) {
	return r.list(ctx, docstore.Filter{"student_id": docstore.Eq(studentID)}, limit, offset)
}

// ListByAdmission returns the communications tied to one admission.
func (r *CommunicationRepository) ListByAdmission(ctx context.Context, admissionID string, limit, offset int) ([]*models.Communication, error) {
	return r.list(ctx, docstore.Filter{"admission_id": docstore.Eq(admissionID)}, limit, offset)
}

func (r *CommunicationRepository) list(ctx context.Context, filter docstore.Filter, limit, offset int) ([]*models.Communication, error) {
	records, err := r.store.Query(ctx, docstore.CollectionCommunications, filter, limit, offset)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists)
	}

	comms := []*models.Communication{}
	for i := range records {
		c, err := decodeCommunication(&records[i])
		if err != nil {
			return nil, err
		}
		comms = append(comms, c)
	}

	return comms, nil
}
