package repositories

import (
	"errors"
	"fmt"

	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// Repositories bundles the typed per-collection repositories for dependency
// injection.
type Repositories struct {
	Students       *StudentRepository
	Admissions     *AdmissionRepository
	Documents      *DocumentRepository
	Loans          *LoanRepository
	Criteria       *CriteriaRepository
	Communications *CommunicationRepository
	Staff          *StaffRepository
}

// NewRepositories creates all repositories over a single store instance. The
// store is constructed once at process start and held for the process
// lifetime.
func NewRepositories(store docstore.Store) *Repositories {
	return &Repositories{
		Students:       NewStudentRepository(store),
		Admissions:     NewAdmissionRepository(store),
		Documents:      NewDocumentRepository(store),
		Loans:          NewLoanRepository(store),
		Criteria:       NewCriteriaRepository(store),
		Communications: NewCommunicationRepository(store),
		Staff:          NewStaffRepository(store),
	}
}

// mapStoreError translates docstore errors into the application taxonomy.
// notFound and exists are the entity-specific sentinels; unexpected store
// failures surface as retryable ErrStoreUnavailable.
func mapStoreError(err error, notFound, exists error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, docstore.ErrNotFound):
		return notFound
	case errors.Is(err, docstore.ErrAlreadyExists):
		return exists
	case errors.Is(err, docstore.ErrVersionConflict):
		return apperrors.ErrVersionConflict
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
}
