package repositories

import (
	"context"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// CriteriaRepository handles eligibility criteria records in the document
// store.
type CriteriaRepository struct {
	store docstore.Store
}

// NewCriteriaRepository creates a new CriteriaRepository.
func NewCriteriaRepository(store docstore.Store) *CriteriaRepository {
	return &CriteriaRepository{store: store}
}

func criteriaMetadata(criteria *models.EligibilityCriteria) docstore.Metadata {
	return docstore.Metadata{
		"program":  criteria.Program,
		"capacity": criteria.Capacity,
	}
}

// Create stores a new criteria record.
func (r *CriteriaRepository) Create(ctx context.Context, criteria *models.EligibilityCriteria) error {
	err := r.store.Put(ctx, docstore.CollectionCriteria, criteria.ID, criteria, criteriaMetadata(criteria))
	return mapStoreError(err, apperrors.ErrCriteriaNotFound, apperrors.ErrResourceAlreadyExists)
}

func decodeCriteria(rec *docstore.Record) (*models.EligibilityCriteria, error) {
	criteria := &models.EligibilityCriteria{}
	if err := rec.Decode(criteria); err != nil {
		return nil, apperrors.NewValidationError("malformed eligibility criteria record: " + err.Error())
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	return criteria, nil
}

// GetByID fetches a criteria record by id.
func (r *CriteriaRepository) GetByID(ctx context.Context, id string) (*models.EligibilityCriteria, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionCriteria, id)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrCriteriaNotFound, apperrors.ErrResourceAlreadyExists)
	}
	return decodeCriteria(rec)
}

// GetByProgram fetches the criteria record for a program.
// ErrCriteriaNotFound when the program has none.
func (r *CriteriaRepository) GetByProgram(ctx context.Context, program string) (*models.EligibilityCriteria, error) {
	records, err := r.store.Query(ctx, docstore.CollectionCriteria, docstore.Filter{
		"program": docstore.Eq(program),
	}, 1, 0)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrCriteriaNotFound, apperrors.ErrResourceAlreadyExists)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrCriteriaNotFound
	}
	return decodeCriteria(&records[0])
}

// List returns all criteria records.
func (r *CriteriaRepository) List(ctx context.Context, limit, offset int) ([]*models.EligibilityCriteria, error) {
	records, err := r.store.Query(ctx, docstore.CollectionCriteria, nil, limit, offset)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrCriteriaNotFound, apperrors.ErrResourceAlreadyExists)
	}

	criteria := []*models.EligibilityCriteria{}
	for i := range records {
		c, err := decodeCriteria(&records[i])
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, c)
	}

	return criteria, nil
}

// Count returns the number of criteria records.
func (r *CriteriaRepository) Count(ctx context.Context) (int, error) {
	count, err := r.store.Count(ctx, docstore.CollectionCriteria, nil)
	if err != nil {
		return 0, mapStoreError(err, apperrors.ErrCriteriaNotFound, apperrors.ErrResourceAlreadyExists)
	}
	return count, nil
}

// Update replaces a criteria record.
func (r *CriteriaRepository) Update(ctx context.Context, criteria *models.EligibilityCriteria) error {
	err := r.store.Update(ctx, docstore.CollectionCriteria, criteria.ID, criteria, criteriaMetadata(criteria))
	return mapStoreError(err, apperrors.ErrCriteriaNotFound, apperrors.ErrResourceAlreadyExists)
}

// Delete removes a criteria record.
func (r *CriteriaRepository) Delete(ctx context.Context, id string) error {
	existed, err := r.store.Delete(ctx, docstore.CollectionCriteria, id)
	if err != nil {
		return mapStoreError(err, apperrors.ErrCriteriaNotFound, apperrors.ErrResourceAlreadyExists)
	}
	if !existed {
		return apperrors.ErrCriteriaNotFound
	}
	return nil
}
