package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/oracle"
)

func TestShortlistingEvaluateAcceptsOnRecommendation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.6)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusShortlisted)

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Academic Performance: 7\nExtracurriculars: 8.5\nEssay: strong\nRecommendation: We recommend this candidate",
	})

	evaluated, err := env.shortlisting.Evaluate(ctx, admission.ID, false)
	require.NoError(t, err)
	require.NotNil(t, evaluated.ShortlistingResults)

	results := evaluated.ShortlistingResults
	assert.InDelta(t, 7.75, results.OverallScore, 0.0001)
	assert.Equal(t, "We recommend this candidate", results.Recommendation)
	assert.Equal(t, 7.0, results.Scores["Academic Performance"])
	assert.Equal(t, "strong", results.Scores["Essay"])
	assert.Equal(t, models.StatusAccepted, evaluated.Status)

	stored, err := env.admissions.GetByID(ctx, admission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

func TestShortlistingEvaluateRejectsWithoutRecommendation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 2.4)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusShortlisted)

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Academic Performance: 3\nRecommendation: We do not recommend this candidate",
	})

	evaluated, err := env.shortlisting.Evaluate(ctx, admission.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, evaluated.Status)
}

func TestShortlistingEvaluateIdempotentReentry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.6)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusShortlisted)

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Fit: 8\nRecommendation: recommend",
	})

	first, err := env.shortlisting.Evaluate(ctx, admission.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, first.Status)
	callsAfterFirst := len(env.oracle.Calls)

	// Re-entry without reevaluate returns the stored results and never
	// consults the oracle again.
	second, err := env.shortlisting.Evaluate(ctx, admission.ID, false)
	require.NoError(t, err)
	assert.Equal(t, first.ShortlistingResults.OverallScore, second.ShortlistingResults.OverallScore)
	assert.Len(t, env.oracle.Calls, callsAfterFirst)

	// Reevaluate forces a fresh oracle call; the overwritten results never
	// revert the recorded decision.
	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Fit: 4\nRecommendation: do not recommend",
	})
	third, err := env.shortlisting.Evaluate(ctx, admission.ID, true)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, third.ShortlistingResults.OverallScore, 0.0001)
	assert.Equal(t, models.StatusAccepted, third.Status)
	assert.Len(t, env.oracle.Calls, callsAfterFirst+1)
}

func TestShortlistingEvaluateStateGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.6)
	admission := env.apply(t, student.ID, "Computer Science")

	// Pending applications are not evaluable.
	_, err := env.shortlisting.Evaluate(ctx, admission.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	// Terminal applications stay untouched even with reevaluate set.
	env.setStatus(t, admission.ID, models.StatusWithdrawn)
	_, err = env.shortlisting.Evaluate(ctx, admission.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestShortlistingEvaluateAcceptsFromDocumentVerification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.6)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusDocumentVerification)

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Fit: 8\nRecommendation: recommend",
	})

	evaluated, err := env.shortlisting.Evaluate(ctx, admission.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, evaluated.Status)
}

func TestShortlistingReevaluateOnDecidedKeepsStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.6)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusAccepted)

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Fit: 3\nRecommendation: do not recommend",
	})

	evaluated, err := env.shortlisting.Evaluate(ctx, admission.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, evaluated.Status)
	require.NotNil(t, evaluated.ShortlistingResults)
	assert.InDelta(t, 3.0, evaluated.ShortlistingResults.OverallScore, 0.0001)
}

func TestShortlistingEvaluateIncludesCriteria(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.6)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusShortlisted)

	_, err := env.criteria.Create(ctx, &dto.CreateCriteriaRequest{
		Program:          "Computer Science",
		MinGPA:           3.0,
		RequiredSubjects: "Mathematics, Physics",
		Capacity:         120,
	})
	require.NoError(t, err)

	_, err = env.shortlisting.Evaluate(ctx, admission.ID, false)
	require.NoError(t, err)

	require.NotEmpty(t, env.oracle.Calls)
	last := env.oracle.Calls[len(env.oracle.Calls)-1]
	assert.Equal(t, oracle.RoleShortlisting, last.Role)
	assert.Equal(t, 3.0, last.Input["min_gpa"])
	assert.Equal(t, "Mathematics, Physics", last.Input["required_subjects"])
	assert.Equal(t, 3.6, last.Input["gpa"])
}

func TestBatchEvaluateSweepsShortlistedApplications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.6)
	shortlisted := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, shortlisted.ID, models.StatusShortlisted)

	// A pending application in the same program is not ready and never enters
	// the sweep.
	env.apply(t, student.ID, "Nursing")

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Fit: 9\nRecommendation: recommend",
	})

	resp, err := env.shortlisting.BatchEvaluate(ctx, &dto.BatchShortlistRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Evaluated)
	assert.Equal(t, 0, resp.Failed)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, shortlisted.ID, resp.Items[0].AdmissionID)
	assert.Equal(t, models.StatusAccepted, resp.Items[0].Status)
	require.NotNil(t, resp.Items[0].Results)
}

func TestBatchEvaluateFiltersByProgram(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	csStudent := env.registerStudent(t, 3.6)
	cs := env.apply(t, csStudent.ID, "Computer Science")
	env.setStatus(t, cs.ID, models.StatusShortlisted)

	nursingStudent := env.registerStudent(t, 3.4)
	nursing := env.apply(t, nursingStudent.ID, "Nursing")
	env.setStatus(t, nursing.ID, models.StatusShortlisted)

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Fit: 9\nRecommendation: recommend",
	})

	resp, err := env.shortlisting.BatchEvaluate(ctx, &dto.BatchShortlistRequest{
		Program: "Computer Science",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Evaluated)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, cs.ID, resp.Items[0].AdmissionID)

	// The other program's application is untouched.
	stored, err := env.admissions.GetByID(ctx, nursing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, stored.Status)
}

func TestBatchEvaluateIsolatesFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	healthy := env.registerStudent(t, 3.6)
	good := env.apply(t, healthy.ID, "Computer Science")
	env.setStatus(t, good.ID, models.StatusShortlisted)

	// An application whose student record has gone missing fails its item
	// without aborting the sweep.
	orphaned := env.registerStudent(t, 3.2)
	bad := env.apply(t, orphaned.ID, "Computer Science")
	env.setStatus(t, bad.ID, models.StatusShortlisted)
	require.NoError(t, env.repos.Students.Delete(context.Background(), orphaned.ID))

	env.oracle.Script(oracle.RoleShortlisting, oracle.StubResponse{
		Narrative: "Fit: 9\nRecommendation: recommend",
	})

	resp, err := env.shortlisting.BatchEvaluate(ctx, &dto.BatchShortlistRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Evaluated)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Items, 2)

	for _, item := range resp.Items {
		switch item.AdmissionID {
		case good.ID:
			assert.Empty(t, item.ErrorMessage)
			assert.Equal(t, models.StatusAccepted, item.Status)
		case bad.ID:
			assert.NotEmpty(t, item.ErrorMessage)
		default:
			t.Fatalf("unexpected admission %s in batch", item.AdmissionID)
		}
	}
}

func TestCapacityReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.criteria.Create(ctx, &dto.CreateCriteriaRequest{
		Program:  "Computer Science",
		Capacity: 3,
	})
	require.NoError(t, err)

	for i, status := range []models.AdmissionStatus{
		models.StatusAccepted, models.StatusAccepted, models.StatusShortlisted,
	} {
		student, err := env.students.Register(ctx, &dto.CreateStudentRequest{
			Name:  "Student",
			Email: "student@example.edu",
			GPA:   3.0 + float64(i)*0.1,
		})
		require.NoError(t, err)
		admission := env.apply(t, student.ID, "Computer Science")
		env.setStatus(t, admission.ID, status)
	}

	report, err := env.shortlisting.Capacity(ctx, "Computer Science")
	require.NoError(t, err)
	assert.Equal(t, 3, report.Capacity)
	assert.Equal(t, 2, report.Accepted)
	assert.Equal(t, 1, report.AvailableSlots)
	assert.Equal(t, 1, report.Pending)
}

func TestCapacityNeverReportsNegativeSlots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.criteria.Create(ctx, &dto.CreateCriteriaRequest{
		Program:  "Nursing",
		Capacity: 2,
	})
	require.NoError(t, err)

	// Over-admitted program: more acceptances than configured capacity.
	for i := 0; i < 3; i++ {
		student := env.registerStudent(t, 3.0+float64(i)*0.1)
		admission := env.apply(t, student.ID, "Nursing")
		env.setStatus(t, admission.ID, models.StatusAccepted)
	}

	report, err := env.shortlisting.Capacity(ctx, "Nursing")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Capacity)
	assert.Equal(t, 3, report.Accepted)
	assert.Equal(t, 0, report.AvailableSlots)
}

func TestCapacityFallsBackToDefault(t *testing.T) {
	env := newTestEnv(t)

	report, err := env.shortlisting.Capacity(context.Background(), "History")
	require.NoError(t, err)
	assert.Equal(t, 100, report.Capacity)
	assert.Equal(t, 100, report.AvailableSlots)
	assert.Equal(t, 0, report.Accepted)
}
