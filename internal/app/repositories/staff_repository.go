package repositories

import (
	"context"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// StaffRepository handles staff account records used for authentication.
type StaffRepository struct {
	store docstore.Store
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(store docstore.Store) *StaffRepository {
	return &StaffRepository{store: store}
}

func staffMetadata(account *models.StaffAccount) docstore.Metadata {
	return docstore.Metadata{
		"email": account.Email,
		"role":  string(account.Role),
	}
}

// Create stores a new staff account.
func (r *StaffRepository) Create(ctx context.Context, account *models.StaffAccount) error {
	err := r.store.Put(ctx, docstore.CollectionStaff, account.ID, account, staffMetadata(account))
	return mapStoreError(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists)
}

func decodeStaff(rec *docstore.Record) (*models.StaffAccount, error) {
	account := &models.StaffAccount{}
	if err := rec.Decode(account); err != nil {
		return nil, apperrors.NewValidationError("malformed staff account record: " + err.Error())
	}
	return account, nil
}

// GetByID fetches a staff account by id.
func (r *StaffRepository) GetByID(ctx context.Context, id string) (*models.StaffAccount, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionStaff, id)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists)
	}
	return decodeStaff(rec)
}

// GetByEmail looks up a staff account by email for login.
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	records, err := r.store.Query(ctx, docstore.CollectionStaff, docstore.Filter{
		"email": docstore.Eq(email),
	}, 1, 0)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrResourceNotFound
	}
	return decodeStaff(&records[0])
}

// CountByEmail reports whether an account already exists for the email.
func (r *StaffRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	count, err := r.store.Count(ctx, docstore.CollectionStaff, docstore.Filter{
		"email": docstore.Eq(email),
	})
	if err != nil {
		return 0, mapStoreError(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists)
	}
	return count, nil
}
