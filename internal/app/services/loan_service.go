package services

import (
	"context"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/helpers"
	"github.com/selimd/admitflow/internal/pkg/metrics"
)

// Programs whose graduates qualify for additional loan products.
var (
	highDemandPrograms  = []string{"Computer Science", "Nursing", "Engineering"}
	incomeSharePrograms = []string{"Computer Science", "Data Science", "Software Engineering"}
)

// LoanService handles financial aid applications and their deterministic
// eligibility evaluation. Loans live independently of the admission pipeline:
// evaluating a loan never touches the admission record.
type LoanService struct {
	loanRepo      *repositories.LoanRepository
	admissionRepo *repositories.AdmissionRepository
	studentRepo   *repositories.StudentRepository
	metrics       *metrics.Metrics
}

// NewLoanService creates a new loan service instance
func NewLoanService(
	loanRepo *repositories.LoanRepository,
	admissionRepo *repositories.AdmissionRepository,
	studentRepo *repositories.StudentRepository,
	m *metrics.Metrics,
) *LoanService {
	return &LoanService{
		loanRepo:      loanRepo,
		admissionRepo: admissionRepo,
		studentRepo:   studentRepo,
		metrics:       m,
	}
}

// Apply creates a new loan application tied to a student and an admission.
func (s *LoanService) Apply(ctx context.Context, req *dto.CreateLoanRequest) (*models.LoanApplication, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	admission, _, err := s.admissionRepo.GetByID(ctx, req.AdmissionID)
	if err != nil {
		return nil, err
	}

	program := req.Program
	if program == "" {
		program = admission.Program
	}

	loan := &models.LoanApplication{
		ID:                 helpers.GenerateID("LOAN"),
		StudentID:          req.StudentID,
		AdmissionID:        req.AdmissionID,
		Amount:             req.Amount,
		Purpose:            req.Purpose,
		Program:            program,
		CreditScore:        req.CreditScore,
		IncomeVerification: req.IncomeVerification,
		Cosigner:           req.Cosigner,
		RequestedDate:      time.Now().UTC(),
		Status:             models.LoanApplied,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	student.LoanIDs = append(student.LoanIDs, loan.ID)
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return loan, nil
}

// GetByID fetches a loan application.
func (s *LoanService) GetByID(ctx context.Context, id string) (*models.LoanApplication, error) {
	return s.loanRepo.GetByID(ctx, id)
}

// List returns loan applications matching the filter.
func (s *LoanService) List(ctx context.Context, filter repositories.LoanFilter, limit, offset int) ([]*models.LoanApplication, error) {
	return s.loanRepo.List(ctx, filter, limit, offset)
}

// Update applies a partial update to the credit signals and amount.
func (s *LoanService) Update(ctx context.Context, id string, req *dto.UpdateLoanRequest) (*models.LoanApplication, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		loan.Amount = *req.Amount
	}
	if req.Purpose != nil {
		loan.Purpose = *req.Purpose
	}
	if req.CreditScore != nil {
		loan.CreditScore = *req.CreditScore
	}
	if req.IncomeVerification != nil {
		loan.IncomeVerification = *req.IncomeVerification
	}
	if req.Cosigner != nil {
		loan.Cosigner = *req.Cosigner
	}

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}

// Delete removes a loan application.
func (s *LoanService) Delete(ctx context.Context, id string) error {
	return s.loanRepo.Delete(ctx, id)
}

// Evaluate scores a loan application and generates the matching loan
// products. The scoring is deterministic: the same signals always produce
// the same score, options, and feedback.
func (s *LoanService) Evaluate(ctx context.Context, id string) (*dto.LoanEvaluationResponse, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, loan.StudentID)
	if err != nil {
		return nil, err
	}

	score := helpers.BaseEligibilityScore(loan.CreditScore, loan.IncomeVerification, loan.Cosigner)
	switch {
	case student.GPA >= 3.7:
		score += 10
	case student.GPA >= 3.0:
		score += 5
	}
	if containsProgram(highDemandPrograms, loan.Program) {
		score += 5
	}
	score = helpers.Clamp(score, 0, 100)

	qualified := score >= 60
	now := time.Now().UTC()

	loan.EligibilityScore = score
	loan.Qualified = qualified
	loan.ReviewDate = &now
	loan.Feedback = feedbackFor(score)

	// Options are only generated for qualified applicants; an unqualified
	// application carries none, whatever its program.
	if qualified {
		loan.Status = models.LoanApproved
		loan.RejectionReason = ""
		loan.LoanOptions = s.buildOptions(loan, score)
	} else {
		loan.Status = models.LoanRejected
		loan.RejectionReason = loan.Feedback
		loan.LoanOptions = []models.LoanOption{}
	}

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	s.metrics.CountLoanEvaluation(qualified)

	return &dto.LoanEvaluationResponse{
		LoanID:           loan.ID,
		Status:           loan.Status,
		EligibilityScore: score,
		Qualified:        qualified,
		LoanOptions:      loan.LoanOptions,
		Feedback:         loan.Feedback,
	}, nil
}

// buildOptions generates the loan products the score qualifies for.
func (s *LoanService) buildOptions(loan *models.LoanApplication, score float64) []models.LoanOption {
	options := []models.LoanOption{}

	if score >= 60 {
		amount := minAmount(loan.Amount, 20000)
		options = append(options, models.LoanOption{
			Type:           models.LoanFederal,
			Amount:         amount,
			InterestRate:   4.99,
			TermYears:      10,
			MonthlyPayment: helpers.MonthlyPayment(amount, 4.99, 10),
			Details:        "Federal student loan with income-based repayment available",
		})
	}

	if score >= 70 {
		options = append(options, models.LoanOption{
			Type:           models.LoanPrivate,
			Amount:         loan.Amount,
			InterestRate:   6.5,
			TermYears:      15,
			MonthlyPayment: helpers.MonthlyPayment(loan.Amount, 6.5, 15),
			Details:        "Private loan covering the full requested amount",
		})
	}

	if score >= 85 {
		amount := minAmount(loan.Amount, 15000)
		options = append(options, models.LoanOption{
			Type:           models.LoanScholarshipBacked,
			Amount:         amount,
			InterestRate:   3.75,
			TermYears:      10,
			MonthlyPayment: helpers.MonthlyPayment(amount, 3.75, 10),
			Details:        "Reduced-rate loan backed by the scholarship fund",
		})
	}

	if containsProgram(incomeSharePrograms, loan.Program) {
		options = append(options, models.LoanOption{
			Type:             models.LoanIncomeShare,
			Amount:           loan.Amount,
			InterestRate:     0,
			TermYears:        5,
			IncomePercentage: 12,
			Details:          "Income share agreement, 12% of income for 5 years after graduation",
		})
	}

	return options
}

func feedbackFor(score float64) string {
	switch {
	case score >= 85:
		return "Excellent eligibility. You qualify for our best loan options."
	case score >= 70:
		return "Good eligibility. You qualify for most loan options."
	case score >= 60:
		return "Moderate eligibility. You qualify for standard loan options."
	default:
		return "We cannot offer a loan at this time. Consider adding a cosigner or improving your credit score."
	}
}

func containsProgram(programs []string, program string) bool {
	for _, p := range programs {
		if p == program {
			return true
		}
	}
	return false
}

func minAmount(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
