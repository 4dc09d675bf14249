package repositories

import (
	"context"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
)

// StudentRepository handles student records in the document store.
type StudentRepository struct {
	store docstore.Store
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(store docstore.Store) *StudentRepository {
	return &StudentRepository{store: store}
}

func studentMetadata(student *models.Student) docstore.Metadata {
	return docstore.Metadata{
		"name":  student.Name,
		"email": student.Email,
		"gpa":   student.GPA,
	}
}

// Create stores a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.store.Put(ctx, docstore.CollectionStudents, student.ID, student, studentMetadata(student))
	return mapStoreError(err, apperrors.ErrStudentNotFound, apperrors.ErrStudentAlreadyExists)
}

// GetByID fetches a student by id, rejecting malformed records.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionStudents, id)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrStudentNotFound, apperrors.ErrStudentAlreadyExists)
	}

	student := &models.Student{}
	if err := rec.Decode(student); err != nil {
		return nil, apperrors.NewValidationError("malformed student record: " + err.Error())
	}
	if err := student.Validate(); err != nil {
		return nil, err
	}

	return student, nil
}

// List returns students matching the optional filter fields.
func (r *StudentRepository) List(ctx context.Context, email string, minGPA, maxGPA *float64, limit, offset int) ([]*models.Student, error) {
	filter := docstore.Filter{}
	if email != "" {
		filter["email"] = docstore.Eq(email)
	}
	if minGPA != nil {
		filter["gpa"] = docstore.Cmp(docstore.OpGte, *minGPA)
	}
	if maxGPA != nil {
		// A field carries one condition; when both bounds are set the upper
		// bound is applied in memory below.
		if minGPA == nil {
			filter["gpa"] = docstore.Cmp(docstore.OpLte, *maxGPA)
		}
	}

	records, err := r.store.Query(ctx, docstore.CollectionStudents, filter, limit, offset)
	if err != nil {
		return nil, mapStoreError(err, apperrors.ErrStudentNotFound, apperrors.ErrStudentAlreadyExists)
	}

	students := []*models.Student{}
	for i := range records {
		student := &models.Student{}
		if err := records[i].Decode(student); err != nil {
			return nil, apperrors.NewValidationError("malformed student record: " + err.Error())
		}
		if minGPA != nil && maxGPA != nil && student.GPA > *maxGPA {
			continue
		}
		students = append(students, student)
	}

	return students, nil
}

// Update replaces a student record (last write wins).
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	err := r.store.Update(ctx, docstore.CollectionStudents, student.ID, student, studentMetadata(student))
	return mapStoreError(err, apperrors.ErrStudentNotFound, apperrors.ErrStudentAlreadyExists)
}

// Delete removes a student record.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	existed, err := r.store.Delete(ctx, docstore.CollectionStudents, id)
	if err != nil {
		return mapStoreError(err, apperrors.ErrStudentNotFound, apperrors.ErrStudentAlreadyExists)
	}
	if !existed {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
