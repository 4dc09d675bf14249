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

func TestAdmissionApply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.5)

	admission := env.apply(t, student.ID, "Computer Science")

	assert.Equal(t, models.StatusPending, admission.Status)
	assert.Equal(t, student.ID, admission.StudentID)
	assert.NotEmpty(t, admission.ID)

	updated, err := env.students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Contains(t, updated.AdmissionIDs, admission.ID)
}

func TestAdmissionApplyUnknownStudent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.admissions.Apply(context.Background(), &dto.CreateAdmissionRequest{
		StudentID: "STUmissing",
		Program:   "Computer Science",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestAdmissionApplyDuplicateProgram(t *testing.T) {
	env := newTestEnv(t)
	student := env.registerStudent(t, 3.5)
	env.apply(t, student.ID, "Computer Science")

	_, err := env.admissions.Apply(context.Background(), &dto.CreateAdmissionRequest{
		StudentID: student.ID,
		Program:   "Computer Science",
	})
	assert.ErrorIs(t, err, apperrors.ErrAdmissionAlreadyExists)

	// A second program is fine.
	_, err = env.admissions.Apply(context.Background(), &dto.CreateAdmissionRequest{
		StudentID: student.ID,
		Program:   "Nursing",
	})
	assert.NoError(t, err)
}

func TestAdmissionWithdrawFreesProgramSlot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.5)
	admission := env.apply(t, student.ID, "Computer Science")

	withdrawn, err := env.admissions.Withdraw(ctx, admission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWithdrawn, withdrawn.Status)

	// The withdrawn application no longer blocks a fresh one.
	fresh, err := env.admissions.Apply(ctx, &dto.CreateAdmissionRequest{
		StudentID: student.ID,
		Program:   "Computer Science",
	})
	require.NoError(t, err)
	assert.NotEqual(t, admission.ID, fresh.ID)
}

func TestAdmissionStartVerification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.5)
	admission := env.apply(t, student.ID, "Computer Science")

	updated, err := env.admissions.StartVerification(ctx, admission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDocumentVerification, updated.Status)

	// Pending is the only legal origin.
	_, err = env.admissions.StartVerification(ctx, admission.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestAdmissionIllegalTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.5)
	admission := env.apply(t, student.ID, "Computer Science")

	// Enrollment requires acceptance first.
	_, err := env.admissions.Enroll(ctx, admission.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	// A withdrawn application never re-enters the pipeline.
	_, err = env.admissions.Withdraw(ctx, admission.ID)
	require.NoError(t, err)
	_, err = env.admissions.StartVerification(ctx, admission.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	_, err = env.admissions.Withdraw(ctx, admission.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestAdmissionReviewRecordsNarrativeWithoutStatusChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.8)
	admission := env.apply(t, student.ID, "Computer Science")

	env.oracle.Script(oracle.RoleAdmissionOfficer, oracle.StubResponse{
		Narrative: "Strong academic profile, documents in order.",
	})

	reviewed, err := env.admissions.Review(ctx, admission.ID, &dto.ReviewRequest{Notes: "first pass"})
	require.NoError(t, err)
	require.NotNil(t, reviewed.OfficerReview)
	assert.Equal(t, "Strong academic profile, documents in order.", reviewed.OfficerReview.Result)
	assert.Equal(t, models.StatusPending, reviewed.Status)
}

func TestAdmissionReviewOracleFailureLeavesRecordUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.8)
	admission := env.apply(t, student.ID, "Computer Science")

	env.oracle.Script(oracle.RoleAdmissionOfficer, oracle.StubResponse{
		Err: apperrors.ErrOracleUnavailable,
	})

	_, err := env.admissions.Review(ctx, admission.ID, &dto.ReviewRequest{})
	assert.ErrorIs(t, err, apperrors.ErrOracleUnavailable)

	stored, err := env.admissions.GetByID(ctx, admission.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.OfficerReview)
}

func TestAdmissionDecideAccepts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.8)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusShortlisted)

	env.oracle.Script(oracle.RoleAdmissionOfficer, oracle.StubResponse{
		Narrative: "The applicant is accepted into the program.",
	})

	decided, err := env.admissions.Decide(ctx, admission.ID, &dto.DecisionRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, decided.Status)
	require.NotNil(t, decided.Decision)
	assert.Contains(t, decided.Decision.Result, "accepted")
}

func TestAdmissionDecideRejects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 2.1)
	admission := env.apply(t, student.ID, "Computer Science")
	env.setStatus(t, admission.ID, models.StatusShortlisted)

	env.oracle.Script(oracle.RoleAdmissionOfficer, oracle.StubResponse{
		Narrative: "The committee declines this application.",
	})

	decided, err := env.admissions.Decide(ctx, admission.ID, &dto.DecisionRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, decided.Status)
}

func TestAdmissionDecideRequiresShortlisted(t *testing.T) {
	env := newTestEnv(t)
	student := env.registerStudent(t, 3.8)
	admission := env.apply(t, student.ID, "Computer Science")

	_, err := env.admissions.Decide(context.Background(), admission.ID, &dto.DecisionRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestAdmissionUpdateProgramOnlyWhilePending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.5)
	admission := env.apply(t, student.ID, "Computer Science")

	program := "Nursing"
	updated, err := env.admissions.Update(ctx, admission.ID, &dto.UpdateAdmissionRequest{Program: &program})
	require.NoError(t, err)
	assert.Equal(t, "Nursing", updated.Program)

	_, err = env.admissions.StartVerification(ctx, admission.ID)
	require.NoError(t, err)

	other := "Engineering"
	_, err = env.admissions.Update(ctx, admission.ID, &dto.UpdateAdmissionRequest{Program: &other})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestAdmissionDeleteDetachesFromStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.5)
	admission := env.apply(t, student.ID, "Computer Science")

	require.NoError(t, env.admissions.Delete(ctx, admission.ID))

	_, err := env.admissions.GetByID(ctx, admission.ID)
	assert.ErrorIs(t, err, apperrors.ErrAdmissionNotFound)

	updated, err := env.students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.NotContains(t, updated.AdmissionIDs, admission.ID)
}
