package repositories

import (
	"context"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// AdmissionRepository handles admission application records in the document
// store.
type AdmissionRepository struct {
	store docstore.Store
}

// NewAdmissionRepository creates a new AdmissionRepository.
func NewAdmissionRepository(store docstore.Store) *AdmissionRepository {
	return &AdmissionRepository{store: store}
}

func admissionMetadata(admission *models.Admission) docstore.Metadata {
	return docstore.Metadata{
		"student_id":       admission.StudentID,
		"program":          admission.Program,
		"status":           string(admission.Status),
		"application_date": admission.ApplicationDate.Format(time.RFC3339),
	}
}

// Create stores a new admission record.
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	err := r.store.Put(ctx, docstore.CollectionAdmissions, admission.ID, admission, admissionMetadata(admission))
	return mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
}

func decodeAdmission(rec *docstore.Record) (*models.Admission, error) {
	admission := &models.Admission{}
	if err := rec.Decode(admission); err != nil {
		return nil, apperrors.NewValidationError("malformed admission record: " + err.Error())
	}
	if err := admission.Validate(); err != nil {
		return nil, err
	}
	return admission, nil
}

// GetByID fetches an admission by id along with its store version, used for
// optimistic-concurrency writes in the pipeline.
func (r *AdmissionRepository) GetByID(ctx context.Context, id string) (*models.Admission, int64, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionAdmissions, id)
	if err != nil {
		return nil, 0, mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
	}

	admission, err := decodeAdmission(rec)
	if err != nil {
		return nil, 0, err
	}

	return admission, rec.Version, nil
}

// AdmissionFilter narrows List results. Zero values are ignored.
type AdmissionFilter struct {
	StudentID string
	Program   string
	Status    models.AdmissionStatus
}

func (f AdmissionFilter) toStoreFilter() docstore.Filter {
	filter := docstore.Filter{}
	if f.StudentID != "" {
		filter["student_id"] = docstore.Eq(f.StudentID)
	}
	if f.Program != "" {
		filter["program"] = docstore.Eq(f.Program)
	}
	if f.Status != "" {
		filter["status"] = docstore.Eq(string(f.Status))
	}
	return filter
}

// List returns admissions matching the filter.
func (r *AdmissionRepository) List(ctx context.Context, filter AdmissionFilter, limit, offset int) ([]*models.Admission, error) {
	records, err := r.store.Query(ctx, docstore.CollectionAdmissions, filter.toStoreFilter(), limit, offset)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
	}

	admissions := []*models.Admission{}
	for i := range records {
		admission, err := decodeAdmission(&records[i])
		if err != nil {
			return nil, err
		}
		admissions = append(admissions, admission)
	}

	return admissions, nil
}

// CountByProgramAndStatus counts admissions for a program in a given status.
func (r *AdmissionRepository) CountByProgramAndStatus(ctx context.Context, program string, status models.AdmissionStatus) (int, error) {
	count, err := r.store.Count(ctx, docstore.CollectionAdmissions, docstore.Filter{
		"program": docstore.Eq(program),
		"status":  docstore.Eq(string(status)),
	})
	if err != nil {
		return 0, mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
	}
	return count, nil
}

// FindActiveByStudentAndProgram returns the student's non-withdrawn
// application for a program, or nil. Enforces the at-most-one invariant on
// create.
func (r *AdmissionRepository) FindActiveByStudentAndProgram(ctx context.Context, studentID, program string) (*models.Admission, error) {
	records, err := r.store.Query(ctx, docstore.CollectionAdmissions, docstore.Filter{
		"student_id": docstore.Eq(studentID),
		"program":    docstore.Eq(program),
	}, 0, 0)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
	}

	for i := range records {
		admission, err := decodeAdmission(&records[i])
		if err != nil {
			return nil, err
		}
		if admission.Status != models.StatusWithdrawn {
			return admission, nil
		}
	}

	return nil, nil
}

// Update replaces an admission record unconditionally (last write wins).
func (r *AdmissionRepository) Update(ctx context.Context, admission *models.Admission) error {
	err := r.store.Update(ctx, docstore.CollectionAdmissions, admission.ID, admission, admissionMetadata(admission))
	return mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
}

// UpdateVersioned replaces an admission record only when the store version
// matches; ErrVersionConflict otherwise.
func (r *AdmissionRepository) UpdateVersioned(ctx context.Context, admission *models.Admission, expectedVersion int64) error {
	err := r.store.UpdateVersioned(ctx, docstore.CollectionAdmissions, admission.ID, admission, admissionMetadata(admission), expectedVersion)
	return mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
}

// Delete removes an admission record.
func (r *AdmissionRepository) Delete(ctx context.Context, id string) error {
	existed, err := r.store.Delete(ctx, docstore.CollectionAdmissions, id)
	if err != nil {
		return mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
	}
	if !existed {
		return apperrors.ErrAdmissionNotFound
	}
	return nil
}

// CountByStudent counts all applications referencing a student, any status.
func (r *AdmissionRepository) CountByStudent(ctx context.Context, studentID string) (int, error) {
	count, err := r.store.Count(ctx, docstore.CollectionAdmissions, docstore.Filter{
		"student_id": docstore.Eq(studentID),
	})
	if err != nil {
		return 0, mapStoreError(err, apperrors.ErrAdmissionNotFound, apperrors.ErrAdmissionAlreadyExists)
	}
	return count, nil
}
