package services

import (
	"context"
	"errors"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/helpers"
	"github.com/selimd/admitflow/internal/pkg/metrics"
	"github.com/selimd/admitflow/internal/pkg/oracle"
	"github.com/selimd/admitflow/internal/pkg/policy"
)

// AdmissionService coordinates the application lifecycle: creation, the
// status state machine, officer review, and the final decision.
type AdmissionService struct {
	admissionRepo *repositories.AdmissionRepository
	studentRepo   *repositories.StudentRepository
	oracle        oracle.Oracle
	counsellor    *CounsellorService
	metrics       *metrics.Metrics
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(
	admissionRepo *repositories.AdmissionRepository,
	studentRepo *repositories.StudentRepository,
	decisionOracle oracle.Oracle,
	counsellor *CounsellorService,
	m *metrics.Metrics,
) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		studentRepo:   studentRepo,
		oracle:        decisionOracle,
		counsellor:    counsellor,
		metrics:       m,
	}
}

// Apply creates a new application for a student and program. A student may
// hold at most one non-withdrawn application per program; withdrawing frees
// the slot for a fresh application.
func (s *AdmissionService) Apply(ctx context.Context, req *dto.CreateAdmissionRequest) (*models.Admission, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.admissionRepo.FindActiveByStudentAndProgram(ctx, req.StudentID, req.Program)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAdmissionAlreadyExists
	}

	admission := &models.Admission{
		ID:                   helpers.GenerateID("ADM"),
		StudentID:            req.StudentID,
		Program:              req.Program,
		ApplicationDate:      time.Now().UTC(),
		Status:               models.StatusPending,
		DocumentsSubmitted:   []string{},
		CommunicationHistory: []models.CommunicationEntry{},
	}
	if err := s.admissionRepo.Create(ctx, admission); err != nil {
		return nil, err
	}

	student.AdmissionIDs = append(student.AdmissionIDs, admission.ID)
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return admission, nil
}

// GetByID fetches an application.
func (s *AdmissionService) GetByID(ctx context.Context, id string) (*models.Admission, error) {
	admission, _, err := s.admissionRepo.GetByID(ctx, id)
	return admission, err
}

// List returns applications matching the filter.
func (s *AdmissionService) List(ctx context.Context, filter repositories.AdmissionFilter, limit, offset int) ([]*models.Admission, error) {
	return s.admissionRepo.List(ctx, filter, limit, offset)
}

// Update applies a partial update to the mutable fields.
func (s *AdmissionService) Update(ctx context.Context, id string, req *dto.UpdateAdmissionRequest) (*models.Admission, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Program != nil && *req.Program != admission.Program {
		if admission.Status != models.StatusPending {
			return nil, apperrors.NewInvalidStateError("program can only change while the application is pending")
		}
		existing, err := s.admissionRepo.FindActiveByStudentAndProgram(ctx, admission.StudentID, *req.Program)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.ErrAdmissionAlreadyExists
		}
		admission.Program = *req.Program
	}
	if req.DocumentsSubmitted != nil {
		admission.DocumentsSubmitted = req.DocumentsSubmitted
	}

	if err := s.admissionRepo.UpdateVersioned(ctx, admission, version); err != nil {
		return nil, err
	}

	return admission, nil
}

// Delete removes an application and detaches it from the student profile.
func (s *AdmissionService) Delete(ctx context.Context, id string) error {
	admission, _, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.admissionRepo.Delete(ctx, id); err != nil {
		return err
	}

	student, err := s.studentRepo.GetByID(ctx, admission.StudentID)
	if err != nil {
		// The admission is already gone; a missing student leaves nothing
		// to detach.
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil
		}
		return err
	}

	kept := student.AdmissionIDs[:0]
	for _, admID := range student.AdmissionIDs {
		if admID != id {
			kept = append(kept, admID)
		}
	}
	student.AdmissionIDs = kept
	return s.studentRepo.Update(ctx, student)
}

// transition moves an application to the next status under optimistic
// concurrency. Illegal moves return ErrInvalidState with both statuses named.
func (s *AdmissionService) transition(ctx context.Context, admission *models.Admission, version int64, next models.AdmissionStatus) error {
	if !admission.Status.CanTransitionTo(next) {
		return apperrors.NewInvalidStateError(
			"cannot move application from " + string(admission.Status) + " to " + string(next))
	}
	admission.Status = next
	return s.admissionRepo.UpdateVersioned(ctx, admission, version)
}

// StartVerification moves a pending application into document verification.
func (s *AdmissionService) StartVerification(ctx context.Context, id string) (*models.Admission, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, admission, version, models.StatusDocumentVerification); err != nil {
		return nil, err
	}
	return admission, nil
}

// Withdraw retires an application. Legal only while the application is still
// undecided; withdrawn applications never re-enter the pipeline.
func (s *AdmissionService) Withdraw(ctx context.Context, id string) (*models.Admission, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, admission, version, models.StatusWithdrawn); err != nil {
		return nil, err
	}
	return admission, nil
}

// Enroll finalizes an accepted application.
func (s *AdmissionService) Enroll(ctx context.Context, id string) (*models.Admission, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, admission, version, models.StatusEnrolled); err != nil {
		return nil, err
	}
	return admission, nil
}

// Review records the admission officer's narrative review of an application.
// The review never changes the application's status.
func (s *AdmissionService) Review(ctx context.Context, id string, req *dto.ReviewRequest) (*models.Admission, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admission.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError("cannot review a " + string(admission.Status) + " application")
	}

	student, err := s.studentRepo.GetByID(ctx, admission.StudentID)
	if err != nil {
		return nil, err
	}

	input := map[string]interface{}{
		"task":       "review",
		"student_id": admission.StudentID,
		"gpa":        student.GPA,
		"program":    admission.Program,
		"status":     string(admission.Status),
	}
	if req.Notes != "" {
		input["notes"] = req.Notes
	}

	start := time.Now()
	narrative, err := s.oracle.Evaluate(ctx, oracle.RoleAdmissionOfficer, input)
	s.metrics.ObserveOracle(oracle.RoleAdmissionOfficer, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	admission.OfficerReview = &models.OfficerReview{
		Result: narrative,
		Date:   time.Now().UTC(),
	}
	if err := s.admissionRepo.UpdateVersioned(ctx, admission, version); err != nil {
		return nil, err
	}

	return admission, nil
}

// Decide makes the final admission decision on a shortlisted application.
// The officer oracle produces a narrative; a narrative containing "accepted"
// accepts, anything else rejects.
func (s *AdmissionService) Decide(ctx context.Context, id string, req *dto.DecisionRequest) (*models.Admission, error) {
	admission, version, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admission.Status != models.StatusShortlisted {
		return nil, apperrors.NewInvalidStateError(
			"decision requires a shortlisted application, got " + string(admission.Status))
	}

	input := map[string]interface{}{
		"task":       "decision",
		"student_id": admission.StudentID,
		"program":    admission.Program,
	}
	if admission.ShortlistingResults != nil {
		input["overall_score"] = admission.ShortlistingResults.OverallScore
		input["recommendation"] = admission.ShortlistingResults.Recommendation
	}
	if req.Notes != "" {
		input["notes"] = req.Notes
	}

	start := time.Now()
	narrative, err := s.oracle.Evaluate(ctx, oracle.RoleAdmissionOfficer, input)
	s.metrics.ObserveOracle(oracle.RoleAdmissionOfficer, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	next := models.StatusRejected
	if policy.DecisionAccepts(narrative) {
		next = models.StatusAccepted
	}

	admission.Decision = &models.Decision{
		Result: narrative,
		Date:   time.Now().UTC(),
	}
	if err := s.transition(ctx, admission, version, next); err != nil {
		return nil, err
	}

	return admission, nil
}

// RequestDocuments sends the student a document request for this application.
func (s *AdmissionService) RequestDocuments(ctx context.Context, id string, req *dto.RequestDocumentsRequest) (*models.Communication, error) {
	admission, _, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admission.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError(
			"cannot request documents for a " + string(admission.Status) + " application")
	}
	return s.counsellor.RequestDocuments(ctx, admission, req.DocumentTypes, req.SentBy)
}

// SendLetter sends the decision letter matching the application's status.
func (s *AdmissionService) SendLetter(ctx context.Context, id string, req *dto.SendLetterRequest) (*models.Communication, error) {
	admission, _, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.counsellor.SendDecisionLetter(ctx, admission, req.SentBy)
}

// NotifyStatus sends the student a status update for this application.
func (s *AdmissionService) NotifyStatus(ctx context.Context, id, sentBy string) (*models.Communication, error) {
	admission, _, err := s.admissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.counsellor.SendStatusUpdate(ctx, admission, sentBy)
}
