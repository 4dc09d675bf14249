package services

import (
	"context"
	"strings"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/helpers"
	"github.com/selimd/admitflow/internal/pkg/metrics"
	"github.com/selimd/admitflow/internal/pkg/oracle"
)

// CounsellorService generates and records student-facing communications:
// welcome messages, document requests, status updates, and decision letters.
// Every message is persisted to the communications collection; messages tied
// to an application are additionally appended to its communication history.
type CounsellorService struct {
	commRepo      *repositories.CommunicationRepository
	studentRepo   *repositories.StudentRepository
	admissionRepo *repositories.AdmissionRepository
	oracle        oracle.Oracle
	metrics       *metrics.Metrics
}

// NewCounsellorService creates a new counsellor service instance
func NewCounsellorService(
	commRepo *repositories.CommunicationRepository,
	studentRepo *repositories.StudentRepository,
	admissionRepo *repositories.AdmissionRepository,
	decisionOracle oracle.Oracle,
	m *metrics.Metrics,
) *CounsellorService {
	return &CounsellorService{
		commRepo:      commRepo,
		studentRepo:   studentRepo,
		admissionRepo: admissionRepo,
		oracle:        decisionOracle,
		metrics:       m,
	}
}

// narrate consults the counsellor oracle and reports latency. The oracle call
// happens before any write so a failure leaves no partial state.
func (s *CounsellorService) narrate(ctx context.Context, input map[string]interface{}) (string, error) {
	start := time.Now()
	narrative, err := s.oracle.Evaluate(ctx, oracle.RoleCounsellor, input)
	s.metrics.ObserveOracle(oracle.RoleCounsellor, time.Since(start), err)
	return narrative, err
}

// record persists the communication and, when admission is non-nil, appends
// it to the application's history.
func (s *CounsellorService) record(ctx context.Context, comm *models.Communication, admission *models.Admission) error {
	if err := s.commRepo.Create(ctx, comm); err != nil {
		return err
	}

	if admission != nil {
		admission.CommunicationHistory = append(admission.CommunicationHistory, models.CommunicationEntry{
			Date:    comm.Date,
			Message: comm.Content,
			Sender:  comm.SentBy,
		})
		if err := s.admissionRepo.Update(ctx, admission); err != nil {
			return err
		}
	}

	return nil
}

// SendWelcome greets a newly registered student.
func (s *CounsellorService) SendWelcome(ctx context.Context, student *models.Student, sentBy string) (*models.Communication, error) {
	narrative, err := s.narrate(ctx, map[string]interface{}{
		"task":         "welcome",
		"student_name": student.Name,
	})
	if err != nil {
		return nil, err
	}

	comm := &models.Communication{
		ID:        helpers.GenerateID("COMM"),
		StudentID: student.ID,
		Type:      models.CommWelcomeMessage,
		Content:   narrative,
		Date:      time.Now().UTC(),
		SentBy:    senderOrDefault(sentBy),
	}
	if err := s.record(ctx, comm, nil); err != nil {
		return nil, err
	}

	return comm, nil
}

// RequestDocuments asks a student to submit the named document types for an
// application.
func (s *CounsellorService) RequestDocuments(ctx context.Context, admission *models.Admission, docTypes []string, sentBy string) (*models.Communication, error) {
	narrative, err := s.narrate(ctx, map[string]interface{}{
		"task":           "document_request",
		"student_id":     admission.StudentID,
		"program":        admission.Program,
		"document_types": strings.Join(docTypes, ", "),
	})
	if err != nil {
		return nil, err
	}

	comm := &models.Communication{
		ID:          helpers.GenerateID("COMM"),
		StudentID:   admission.StudentID,
		AdmissionID: admission.ID,
		Type:        models.CommDocumentRequest,
		Content:     narrative,
		Date:        time.Now().UTC(),
		SentBy:      senderOrDefault(sentBy),
	}
	if err := s.record(ctx, comm, admission); err != nil {
		return nil, err
	}

	return comm, nil
}

// SendStatusUpdate notifies the student of the application's current stage.
func (s *CounsellorService) SendStatusUpdate(ctx context.Context, admission *models.Admission, sentBy string) (*models.Communication, error) {
	narrative, err := s.narrate(ctx, map[string]interface{}{
		"task":       "status_update",
		"student_id": admission.StudentID,
		"program":    admission.Program,
		"status":     string(admission.Status),
	})
	if err != nil {
		return nil, err
	}

	comm := &models.Communication{
		ID:          helpers.GenerateID("COMM"),
		StudentID:   admission.StudentID,
		AdmissionID: admission.ID,
		Type:        models.CommStatusUpdate,
		Content:     narrative,
		Date:        time.Now().UTC(),
		SentBy:      senderOrDefault(sentBy),
	}
	if err := s.record(ctx, comm, admission); err != nil {
		return nil, err
	}

	return comm, nil
}

// SendDecisionLetter sends the admission letter with fee slip for accepted
// applications and the rejection letter for rejected ones. Letter flags are
// idempotent: a second send on an accepted application is a no-op conflict.
func (s *CounsellorService) SendDecisionLetter(ctx context.Context, admission *models.Admission, sentBy string) (*models.Communication, error) {
	var commType models.CommunicationType
	switch admission.Status {
	case models.StatusAccepted, models.StatusEnrolled:
		if admission.AdmissionLetterSent {
			return nil, apperrors.NewConflictError("admission letter already sent")
		}
		commType = models.CommAdmissionLetter
	case models.StatusRejected:
		commType = models.CommRejectionLetter
	default:
		return nil, apperrors.NewInvalidStateError("no decision letter for status " + string(admission.Status))
	}

	narrative, err := s.narrate(ctx, map[string]interface{}{
		"task":       "decision_letter",
		"student_id": admission.StudentID,
		"program":    admission.Program,
		"status":     string(admission.Status),
	})
	if err != nil {
		return nil, err
	}

	if commType == models.CommAdmissionLetter {
		admission.AdmissionLetterSent = true
		admission.FeeSlipSent = true
	}

	comm := &models.Communication{
		ID:          helpers.GenerateID("COMM"),
		StudentID:   admission.StudentID,
		AdmissionID: admission.ID,
		Type:        commType,
		Content:     narrative,
		Date:        time.Now().UTC(),
		SentBy:      senderOrDefault(sentBy),
	}
	if err := s.record(ctx, comm, admission); err != nil {
		return nil, err
	}

	return comm, nil
}

// History returns a student's communication log.
func (s *CounsellorService) History(ctx context.Context, studentID string, limit, offset int) ([]*models.Communication, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.commRepo.ListByStudent(ctx, studentID, limit, offset)
}

func senderOrDefault(sentBy string) string {
	if sentBy == "" {
		return "student_counsellor"
	}
	return sentBy
}
