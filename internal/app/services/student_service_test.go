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

func TestStudentRegister(t *testing.T) {
	env := newTestEnv(t)

	student, err := env.students.Register(context.Background(), &dto.CreateStudentRequest{
		Name:  "Ada Lovelace",
		Email: "ada@example.edu",
		Phone: "+9050000000",
		GPA:   3.9,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, student.ID)
	assert.Equal(t, "Ada Lovelace", student.Name)
	assert.NotNil(t, student.AdmissionIDs)
	assert.NotNil(t, student.LoanIDs)
	assert.Empty(t, student.AdmissionIDs)
}

func TestStudentRegisterInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	for _, email := range []string{"", "not-an-email", "missing@tld", "@example.edu"} {
		_, err := env.students.Register(context.Background(), &dto.CreateStudentRequest{
			Name:  "Ada",
			Email: email,
			GPA:   3.0,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidEmail, email)
	}
}

func TestStudentRegisterInvalidGPA(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.students.Register(context.Background(), &dto.CreateStudentRequest{
		Name:  "Ada",
		Email: "ada@example.edu",
		GPA:   4.5,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentUpdatePartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.2)

	phone := "+905551112233"
	gpa := 3.6
	updated, err := env.students.Update(ctx, student.ID, &dto.UpdateStudentRequest{
		Phone: &phone,
		GPA:   &gpa,
	})
	require.NoError(t, err)

	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, gpa, updated.GPA)
	// Untouched fields keep their stored values.
	assert.Equal(t, student.Name, updated.Name)
	assert.Equal(t, student.Email, updated.Email)
}

func TestStudentUpdateRejectsBadEmail(t *testing.T) {
	env := newTestEnv(t)
	student := env.registerStudent(t, 3.2)

	email := "broken"
	_, err := env.students.Update(context.Background(), student.ID, &dto.UpdateStudentRequest{Email: &email})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestStudentDeleteBlockedByAdmissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.2)
	admission := env.apply(t, student.ID, "Computer Science")

	err := env.students.Delete(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentHasAdmissions)

	// Even a withdrawn application keeps the profile referenced.
	_, err = env.admissions.Withdraw(ctx, admission.ID)
	require.NoError(t, err)
	err = env.students.Delete(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentHasAdmissions)

	require.NoError(t, env.admissions.Delete(ctx, admission.ID))
	require.NoError(t, env.students.Delete(ctx, student.ID))

	_, err = env.students.GetByID(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentSendWelcome(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerStudent(t, 3.2)

	env.oracle.Script(oracle.RoleCounsellor, oracle.StubResponse{
		Narrative: "Welcome to the university!",
	})

	comm, err := env.students.SendWelcome(ctx, student.ID, "")
	require.NoError(t, err)

	assert.Equal(t, models.CommWelcomeMessage, comm.Type)
	assert.Equal(t, "Welcome to the university!", comm.Content)
	assert.Equal(t, "student_counsellor", comm.SentBy)
	assert.Equal(t, student.ID, comm.StudentID)

	history, err := env.counsellor.History(ctx, student.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, comm.ID, history[0].ID)
}
