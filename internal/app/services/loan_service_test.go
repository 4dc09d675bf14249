package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

func (env *testEnv) applyForLoan(t *testing.T, gpa float64, program string, req dto.CreateLoanRequest) *models.LoanApplication {
	t.Helper()
	ctx := context.Background()

	student := env.registerStudent(t, gpa)
	admission := env.apply(t, student.ID, program)

	req.StudentID = student.ID
	req.AdmissionID = admission.ID
	loan, err := env.loans.Apply(ctx, &req)
	require.NoError(t, err)
	return loan
}

func TestLoanApplyInheritsProgramFromAdmission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	loan := env.applyForLoan(t, 3.2, "Nursing", dto.CreateLoanRequest{
		Amount:      18000,
		CreditScore: 700,
	})

	assert.Equal(t, "Nursing", loan.Program)
	assert.Equal(t, models.LoanApplied, loan.Status)

	student, err := env.students.GetByID(ctx, loan.StudentID)
	require.NoError(t, err)
	assert.Contains(t, student.LoanIDs, loan.ID)
}

func TestLoanApplyUnknownAdmission(t *testing.T) {
	env := newTestEnv(t)
	student := env.registerStudent(t, 3.2)

	_, err := env.loans.Apply(context.Background(), &dto.CreateLoanRequest{
		StudentID:   student.ID,
		AdmissionID: "ADMmissing",
		Amount:      10000,
	})
	assert.ErrorIs(t, err, apperrors.ErrAdmissionNotFound)
}

func TestLoanEvaluateTopTier(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Credit 760 (+25), income (+10), cosigner (+15), GPA 3.8 (+10),
	// high-demand program (+5): clamped to 100.
	loan := env.applyForLoan(t, 3.8, "Computer Science", dto.CreateLoanRequest{
		Amount:             25000,
		CreditScore:        760,
		IncomeVerification: true,
		Cosigner:           true,
	})

	result, err := env.loans.Evaluate(ctx, loan.ID)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.EligibilityScore)
	assert.True(t, result.Qualified)
	assert.Equal(t, models.LoanApproved, result.Status)
	assert.Equal(t, "Excellent eligibility. You qualify for our best loan options.", result.Feedback)

	types := map[models.LoanType]models.LoanOption{}
	for _, opt := range result.LoanOptions {
		types[opt.Type] = opt
	}
	require.Len(t, types, 4)

	federal := types[models.LoanFederal]
	assert.Equal(t, 20000.0, federal.Amount)
	assert.Equal(t, 4.99, federal.InterestRate)
	assert.InDelta(t, 212.03, federal.MonthlyPayment, 0.005)

	private := types[models.LoanPrivate]
	assert.Equal(t, 25000.0, private.Amount)
	assert.InDelta(t, 217.78, private.MonthlyPayment, 0.005)

	scholarship := types[models.LoanScholarshipBacked]
	assert.Equal(t, 15000.0, scholarship.Amount)
	assert.InDelta(t, 150.09, scholarship.MonthlyPayment, 0.005)

	incomeShare := types[models.LoanIncomeShare]
	assert.Equal(t, 0.0, incomeShare.InterestRate)
	assert.Equal(t, 5, incomeShare.TermYears)
	assert.Equal(t, 12.0, incomeShare.IncomePercentage)
}

func TestLoanEvaluateModerateTier(t *testing.T) {
	env := newTestEnv(t)

	// Credit 620 (+10), no other signals, GPA below bonus, History is neither
	// high-demand nor income-share: score 60.
	loan := env.applyForLoan(t, 2.5, "History", dto.CreateLoanRequest{
		Amount:      10000,
		CreditScore: 620,
	})

	result, err := env.loans.Evaluate(context.Background(), loan.ID)
	require.NoError(t, err)

	assert.Equal(t, 60.0, result.EligibilityScore)
	assert.True(t, result.Qualified)
	assert.Equal(t, "Moderate eligibility. You qualify for standard loan options.", result.Feedback)

	require.Len(t, result.LoanOptions, 1)
	assert.Equal(t, models.LoanFederal, result.LoanOptions[0].Type)
	assert.Equal(t, 10000.0, result.LoanOptions[0].Amount)
}

func TestLoanEvaluateRejection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Credit below every band and no bonuses: score stays at the base 50.
	loan := env.applyForLoan(t, 2.0, "History", dto.CreateLoanRequest{
		Amount:      10000,
		CreditScore: 500,
	})

	result, err := env.loans.Evaluate(ctx, loan.ID)
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.EligibilityScore)
	assert.False(t, result.Qualified)
	assert.Equal(t, models.LoanRejected, result.Status)
	assert.Equal(t, "We cannot offer a loan at this time. Consider adding a cosigner or improving your credit score.", result.Feedback)
	assert.Empty(t, result.LoanOptions)

	stored, err := env.loans.GetByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Feedback, stored.RejectionReason)
	assert.NotNil(t, stored.ReviewDate)
}

func TestLoanEvaluateIncomeShareProgram(t *testing.T) {
	env := newTestEnv(t)

	// Data Science adds the income share agreement on top of the tiered
	// options for qualified applicants.
	loan := env.applyForLoan(t, 2.0, "Data Science", dto.CreateLoanRequest{
		Amount:      10000,
		CreditScore: 620,
	})

	result, err := env.loans.Evaluate(context.Background(), loan.ID)
	require.NoError(t, err)

	assert.True(t, result.Qualified)
	types := map[models.LoanType]bool{}
	for _, opt := range result.LoanOptions {
		types[opt.Type] = true
	}
	assert.True(t, types[models.LoanFederal])
	assert.True(t, types[models.LoanIncomeShare])
}

func TestLoanEvaluateUnqualifiedGetsNoOptions(t *testing.T) {
	env := newTestEnv(t)

	// An unqualified applicant receives no options at all, even in an income
	// share program.
	loan := env.applyForLoan(t, 2.0, "Data Science", dto.CreateLoanRequest{
		Amount:      10000,
		CreditScore: 500,
	})

	result, err := env.loans.Evaluate(context.Background(), loan.ID)
	require.NoError(t, err)

	assert.False(t, result.Qualified)
	assert.Empty(t, result.LoanOptions)
}

func TestLoanEvaluateIsDeterministic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	loan := env.applyForLoan(t, 3.4, "Engineering", dto.CreateLoanRequest{
		Amount:             12000,
		CreditScore:        710,
		IncomeVerification: true,
	})

	first, err := env.loans.Evaluate(ctx, loan.ID)
	require.NoError(t, err)
	second, err := env.loans.Evaluate(ctx, loan.ID)
	require.NoError(t, err)

	assert.Equal(t, first.EligibilityScore, second.EligibilityScore)
	assert.Equal(t, first.Feedback, second.Feedback)
	assert.Equal(t, len(first.LoanOptions), len(second.LoanOptions))
}

func TestLoanUpdateChangesSignals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	loan := env.applyForLoan(t, 2.0, "History", dto.CreateLoanRequest{
		Amount:      10000,
		CreditScore: 500,
	})

	first, err := env.loans.Evaluate(ctx, loan.ID)
	require.NoError(t, err)
	assert.False(t, first.Qualified)

	// Adding a cosigner and a better credit score flips the outcome.
	credit := 700
	cosigner := true
	_, err = env.loans.Update(ctx, loan.ID, &dto.UpdateLoanRequest{
		CreditScore: &credit,
		Cosigner:    &cosigner,
	})
	require.NoError(t, err)

	second, err := env.loans.Evaluate(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, second.Qualified)
	assert.Equal(t, 85.0, second.EligibilityScore)
	assert.Equal(t, "Excellent eligibility. You qualify for our best loan options.", second.Feedback)
}
