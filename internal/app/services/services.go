package services

import (
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/config"
	"github.com/selimd/admitflow/internal/pkg/auth"
	"github.com/selimd/admitflow/internal/pkg/filestorage"
	"github.com/selimd/admitflow/internal/pkg/metrics"
	"github.com/selimd/admitflow/internal/pkg/oracle"
)

// Services bundles the application services for dependency injection.
type Services struct {
	Auth         *AuthService
	Students     *StudentService
	Admissions   *AdmissionService
	Documents    *DocumentService
	Verification *VerificationService
	Shortlisting *ShortlistingService
	Loans        *LoanService
	Counsellor   *CounsellorService
	Criteria     *CriteriaService
}

// NewServices wires the service layer over the repositories, the decision
// oracle, and the supporting infrastructure.
func NewServices(
	repos *repositories.Repositories,
	decisionOracle oracle.Oracle,
	jwtService *auth.JWTService,
	storage filestorage.Storage,
	m *metrics.Metrics,
	cfg *config.Config,
) *Services {
	counsellor := NewCounsellorService(repos.Communications, repos.Students, repos.Admissions, decisionOracle, m)
	admissions := NewAdmissionService(repos.Admissions, repos.Students, decisionOracle, counsellor, m)

	return &Services{
		Auth:         NewAuthService(repos.Staff, jwtService),
		Students:     NewStudentService(repos.Students, repos.Admissions, counsellor),
		Admissions:   admissions,
		Documents:    NewDocumentService(repos.Documents, repos.Admissions, storage),
		Verification: NewVerificationService(repos.Documents, repos.Admissions, decisionOracle, m),
		Shortlisting: NewShortlistingService(repos.Admissions, repos.Students, repos.Criteria, cfg.Admissions.DefaultCapacity, decisionOracle, m),
		Loans:        NewLoanService(repos.Loans, repos.Admissions, repos.Students, m),
		Counsellor:   counsellor,
		Criteria:     NewCriteriaService(repos.Criteria),
	}
}
