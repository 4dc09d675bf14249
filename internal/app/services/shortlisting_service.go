package services

import (
	"context"
	"errors"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/metrics"
	"github.com/selimd/admitflow/internal/pkg/oracle"
	"github.com/selimd/admitflow/internal/pkg/policy"
)

// ShortlistingService scores shortlisted applications through the
// shortlisting oracle and reports program capacity.
type ShortlistingService struct {
	admissionRepo   *repositories.AdmissionRepository
	studentRepo     *repositories.StudentRepository
	criteriaRepo    *repositories.CriteriaRepository
	defaultCapacity int
	oracle          oracle.Oracle
	metrics         *metrics.Metrics
}

// NewShortlistingService creates a new shortlisting service instance
func NewShortlistingService(
	admissionRepo *repositories.AdmissionRepository,
	studentRepo *repositories.StudentRepository,
	criteriaRepo *repositories.CriteriaRepository,
	defaultCapacity int,
	decisionOracle oracle.Oracle,
	m *metrics.Metrics,
) *ShortlistingService {
	return &ShortlistingService{
		admissionRepo:   admissionRepo,
		studentRepo:     studentRepo,
		criteriaRepo:    criteriaRepo,
		defaultCapacity: defaultCapacity,
		oracle:          decisionOracle,
		metrics:         m,
	}
}

// Evaluate scores one application and records the decision: a recommendation
// from the oracle marks the application accepted, anything else rejects it.
// Re-entry is idempotent: existing results are returned without consulting
// the oracle unless reevaluate is set. Re-evaluation may overwrite results on
// decided applications but never changes their status, and never touches
// withdrawn or enrolled ones.
func (s *ShortlistingService) Evaluate(ctx context.Context, admissionID string, reevaluate bool) (*models.Admission, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, admissionID)
	if err != nil {
		return nil, err
	}

	if admission.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError(
			"cannot evaluate a " + string(admission.Status) + " application")
	}
	if admission.Status == models.StatusPending {
		return nil, apperrors.NewInvalidStateError(
			"application is not shortlisted yet, status is " + string(admission.Status))
	}

	if admission.ShortlistingResults != nil && !reevaluate {
		return admission, nil
	}

	student, err := s.studentRepo.GetByID(ctx, admission.StudentID)
	if err != nil {
		return nil, err
	}

	input := map[string]interface{}{
		"task":       "shortlist",
		"student_id": admission.StudentID,
		"gpa":        student.GPA,
		"program":    admission.Program,
	}
	criteria, err := s.criteriaRepo.GetByProgram(ctx, admission.Program)
	switch {
	case err == nil:
		input["min_gpa"] = criteria.MinGPA
		if criteria.RequiredSubjects != "" {
			input["required_subjects"] = criteria.RequiredSubjects
		}
	case errors.Is(err, apperrors.ErrCriteriaNotFound):
		// No criteria configured for the program; the oracle scores on the
		// applicant profile alone.
	default:
		return nil, err
	}

	start := time.Now()
	narrative, err := s.oracle.Evaluate(ctx, oracle.RoleShortlisting, input)
	s.metrics.ObserveOracle(oracle.RoleShortlisting, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	scores, recommendation := policy.ParseEvaluation(narrative)
	admission.ShortlistingResults = &models.ShortlistingResults{
		Scores:         scores,
		OverallScore:   policy.OverallScore(scores),
		Recommendation: recommendation,
		Evaluation:     narrative,
		Date:           time.Now().UTC(),
	}

	accepted := policy.RecommendationAccepts(recommendation)

	// The recommendation decides the application. Re-evaluations on already
	// decided applications refresh the results but keep the recorded status.
	if admission.Status == models.StatusShortlisted || admission.Status == models.StatusDocumentVerification {
		if accepted {
			admission.Status = models.StatusAccepted
		} else {
			admission.Status = models.StatusRejected
		}
	}

	if err := s.admissionRepo.UpdateVersioned(ctx, admission, version); err != nil {
		return nil, err
	}

	if accepted {
		s.metrics.CountShortlisting("recommended")
	} else {
		s.metrics.CountShortlisting("not_recommended")
	}

	return admission, nil
}

// BatchEvaluate scores every shortlisted application, optionally narrowed to
// one program. One application's failure never aborts the rest; failed items
// report their error in place.
func (s *ShortlistingService) BatchEvaluate(ctx context.Context, req *dto.BatchShortlistRequest) (*dto.BatchShortlistResponse, error) {
	candidates, err := s.admissionRepo.List(ctx, repositories.AdmissionFilter{
		Status:  models.StatusShortlisted,
		Program: req.Program,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	resp := &dto.BatchShortlistResponse{
		Items: make([]dto.BatchShortlistItem, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		item := dto.BatchShortlistItem{AdmissionID: candidate.ID}
		admission, err := s.Evaluate(ctx, candidate.ID, req.Reevaluate)
		if err != nil {
			item.ErrorMessage = err.Error()
			resp.Failed++
		} else {
			item.Status = admission.Status
			item.Results = admission.ShortlistingResults
			resp.Evaluated++
		}
		resp.Items = append(resp.Items, item)
	}

	return resp, nil
}

// Capacity reports a program's intake headroom: configured capacity, the
// count of accepted applications, the remaining slots, and how many
// shortlisted applications are waiting on a decision.
func (s *ShortlistingService) Capacity(ctx context.Context, program string) (*dto.CapacityReport, error) {
	capacity := s.defaultCapacity
	criteria, err := s.criteriaRepo.GetByProgram(ctx, program)
	switch {
	case err == nil:
		if criteria.Capacity > 0 {
			capacity = criteria.Capacity
		}
	case errors.Is(err, apperrors.ErrCriteriaNotFound):
		// Fall back to the configured default.
	default:
		return nil, err
	}

	accepted, err := s.admissionRepo.CountByProgramAndStatus(ctx, program, models.StatusAccepted)
	if err != nil {
		return nil, err
	}
	pending, err := s.admissionRepo.CountByProgramAndStatus(ctx, program, models.StatusShortlisted)
	if err != nil {
		return nil, err
	}

	available := capacity - accepted
	if available < 0 {
		available = 0
	}

	return &dto.CapacityReport{
		Program:        program,
		Capacity:       capacity,
		Accepted:       accepted,
		AvailableSlots: available,
		Pending:        pending,
	}, nil
}
