package repositories

import (
	"context"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// LoanRepository handles loan application records in the document store.
type LoanRepository struct {
	store docstore.Store
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(store docstore.Store) *LoanRepository {
	return &LoanRepository{store: store}
}

func loanMetadata(loan *models.LoanApplication) docstore.Metadata {
	return docstore.Metadata{
		"student_id":   loan.StudentID,
		"admission_id": loan.AdmissionID,
		"status":       string(loan.Status),
		"amount":       loan.Amount,
	}
}

// Create stores a new loan record.
func (r *LoanRepository) Create(ctx context.Context, loan *models.LoanApplication) error {
	err := r.store.Put(ctx, docstore.CollectionLoans, loan.ID, loan, loanMetadata(loan))
	return mapStoreError(err, apperrors.ErrLoanNotFound, apperrors.ErrResourceAlreadyExists)
}

func decodeLoan(rec *docstore.Record) (*models.LoanApplication, error) {
	loan := &models.LoanApplication{}
	if err := rec.Decode(loan); err != nil {
		return nil, apperrors.NewValidationError("malformed loan record: " + err.Error())
	}
	if err := loan.Validate(); err != nil {
		return nil, err
	}
	return loan, nil
}

// GetByID fetches a loan by id.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*models.LoanApplication, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionLoans, id)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrLoanNotFound, apperrors.ErrResourceAlreadyExists)
	}
	return decodeLoan(rec)
}

// LoanFilter narrows List results. Zero values are ignored. Amount bounds are
// applied as a single comparison each.
type LoanFilter struct {
	StudentID   string
	AdmissionID string
	Status      models.LoanStatus
	MinAmount   *float64
	MaxAmount   *float64
}

// List returns loans matching the filter.
func (r *LoanRepository) List(ctx context.Context, filter LoanFilter, limit, offset int) ([]*models.LoanApplication, error) {
	storeFilter := docstore.Filter{}
	if filter.StudentID != "" {
		storeFilter["student_id"] = docstore.Eq(filter.StudentID)
	}
	if filter.AdmissionID != "" {
		storeFilter["admission_id"] = docstore.Eq(filter.AdmissionID)
	}
	if filter.Status != "" {
		storeFilter["status"] = docstore.Eq(string(filter.Status))
	}
	if filter.MinAmount != nil {
		storeFilter["amount"] = docstore.Cmp(docstore.OpGte, *filter.MinAmount)
	} else if filter.MaxAmount != nil {
		storeFilter["amount"] = docstore.Cmp(docstore.OpLte, *filter.MaxAmount)
	}

	records, err := r.store.Query(ctx, docstore.CollectionLoans, storeFilter, limit, offset)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrLoanNotFound, apperrors.ErrResourceAlreadyExists)
	}

	loans := []*models.LoanApplication{}
	for i := range records {
		loan, err := decodeLoan(&records[i])
		if err != nil {
			return nil, err
		}
		// When both bounds are set only the lower went to the store
		if filter.MinAmount != nil && filter.MaxAmount != nil && loan.Amount > *filter.MaxAmount {
			continue
		}
		loans = append(loans, loan)
	}

	return loans, nil
}

// Update replaces a loan record.
func (r *LoanRepository) Update(ctx context.Context, loan *models.LoanApplication) error {
	err := r.store.Update(ctx, docstore.CollectionLoans, loan.ID, loan, loanMetadata(loan))
	return mapStoreError(err, apperrors.ErrLoanNotFound, apperrors.ErrResourceAlreadyExists)
}

// Delete removes a loan record.
func (r *LoanRepository) Delete(ctx context.Context, id string) error {
	existed, err := r.store.Delete(ctx, docstore.CollectionLoans, id)
	if err != nil {
		return mapStoreError(err, apperrors.ErrLoanNotFound, apperrors.ErrResourceAlreadyExists)
	}
	if !existed {
		return apperrors.ErrLoanNotFound
	}
	return nil
}
