package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/oracle"
)

// fakeStorage records file operations without touching the filesystem.
type fakeStorage struct {
	saved   []string
	deleted []string
}

func (s *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	path := subPath + "/" + fileHeader.Filename
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeStorage) DeleteFile(filePath string) error {
	s.deleted = append(s.deleted, filePath)
	return nil
}

// testEnv wires every service over an in-memory store and a scripted oracle.
type testEnv struct {
	repos        *repositories.Repositories
	oracle       *oracle.Stub
	storage      *fakeStorage
	students     *StudentService
	admissions   *AdmissionService
	documents    *DocumentService
	verification *VerificationService
	shortlisting *ShortlistingService
	loans        *LoanService
	counsellor   *CounsellorService
	criteria     *CriteriaService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := repositories.NewRepositories(docstore.NewMemoryStore())
	stub := oracle.NewStub("The document appears authentic and complete.")
	storage := &fakeStorage{}

	counsellor := NewCounsellorService(repos.Communications, repos.Students, repos.Admissions, stub, nil)

	return &testEnv{
		repos:        repos,
		oracle:       stub,
		storage:      storage,
		students:     NewStudentService(repos.Students, repos.Admissions, counsellor),
		admissions:   NewAdmissionService(repos.Admissions, repos.Students, stub, counsellor, nil),
		documents:    NewDocumentService(repos.Documents, repos.Admissions, storage),
		verification: NewVerificationService(repos.Documents, repos.Admissions, stub, nil),
		shortlisting: NewShortlistingService(repos.Admissions, repos.Students, repos.Criteria, 100, stub, nil),
		loans:        NewLoanService(repos.Loans, repos.Admissions, repos.Students, nil),
		counsellor:   counsellor,
		criteria:     NewCriteriaService(repos.Criteria),
	}
}

// registerStudent seeds a student with a given GPA.
func (env *testEnv) registerStudent(t *testing.T, gpa float64) *models.Student {
	t.Helper()

	student, err := env.students.Register(context.Background(), &dto.CreateStudentRequest{
		Name:  "Test Student",
		Email: "student@example.edu",
		GPA:   gpa,
	})
	require.NoError(t, err)
	return student
}

// apply seeds an application for a student.
func (env *testEnv) apply(t *testing.T, studentID, program string) *models.Admission {
	t.Helper()

	admission, err := env.admissions.Apply(context.Background(), &dto.CreateAdmissionRequest{
		StudentID: studentID,
		Program:   program,
	})
	require.NoError(t, err)
	return admission
}

// setStatus force-moves an application to a status, bypassing the state
// machine, for tests that start mid-pipeline.
func (env *testEnv) setStatus(t *testing.T, admissionID string, status models.AdmissionStatus) {
	t.Helper()

	admission, version, err := env.repos.Admissions.GetByID(context.Background(), admissionID)
	require.NoError(t, err)
	admission.Status = status
	require.NoError(t, env.repos.Admissions.UpdateVersioned(context.Background(), admission, version))
}

// submitInline seeds an inline document for an application.
func (env *testEnv) submitInline(t *testing.T, studentID, admissionID string, docType models.DocumentType) *models.Document {
	t.Helper()

	document, err := env.documents.Submit(context.Background(), &dto.CreateDocumentRequest{
		StudentID:    studentID,
		AdmissionID:  admissionID,
		DocumentType: docType,
		Content:      "inline " + string(docType),
	}, nil)
	require.NoError(t, err)
	return document
}
