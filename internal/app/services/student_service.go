package services

import (
	"context"
	"regexp"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// StudentService handles student registration and profile management.
type StudentService struct {
	studentRepo   *repositories.StudentRepository
	admissionRepo *repositories.AdmissionRepository
	counsellor    *CounsellorService
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, admissionRepo *repositories.AdmissionRepository, counsellor *CounsellorService) *StudentService {
	return &StudentService{
		studentRepo:   studentRepo,
		admissionRepo: admissionRepo,
		counsellor:    counsellor,
	}
}

// Register creates a new student profile.
func (s *StudentService) Register(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !emailRegex.MatchString(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if req.GPA < 0 || req.GPA > 4.0 {
		return nil, apperrors.NewValidationError("gpa must be between 0.0 and 4.0")
	}

	student := &models.Student{
		ID:                helpers.GenerateID("STU"),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		DateOfBirth:       req.DateOfBirth,
		Address:           req.Address,
		PreviousEducation: req.PreviousEducation,
		GPA:               req.GPA,
		RegistrationDate:  time.Now().UTC(),
		AdmissionIDs:      []string{},
		LoanIDs:           []string{},
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByID fetches a student profile.
func (s *StudentService) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// List returns students optionally filtered by email and GPA bounds.
func (s *StudentService) List(ctx context.Context, email string, minGPA, maxGPA *float64, limit, offset int) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, email, minGPA, maxGPA, limit, offset)
}

// Update applies a partial profile update. Nil fields in the request leave
// the stored values untouched.
func (s *StudentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if !emailRegex.MatchString(*req.Email) {
			return nil, apperrors.ErrInvalidEmail
		}
		student.Email = *req.Email
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = req.DateOfBirth
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.PreviousEducation != nil {
		student.PreviousEducation = req.PreviousEducation
	}
	if req.GPA != nil {
		if *req.GPA < 0 || *req.GPA > 4.0 {
			return nil, apperrors.NewValidationError("gpa must be between 0.0 and 4.0")
		}
		student.GPA = *req.GPA
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student profile. Blocked while any admission application
// references the student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.admissionRepo.CountByStudent(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrStudentHasAdmissions
	}

	return s.studentRepo.Delete(ctx, id)
}

// SendWelcome asks the counsellor to greet a newly registered student.
func (s *StudentService) SendWelcome(ctx context.Context, id, sentBy string) (*models.Communication, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.counsellor.SendWelcome(ctx, student, sentBy)
}
