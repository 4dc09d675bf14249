package services

import (
	"context"
	"errors"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// CriteriaService manages per-program eligibility criteria.
type CriteriaService struct {
	criteriaRepo *repositories.CriteriaRepository
}

// NewCriteriaService creates a new criteria service instance
func NewCriteriaService(criteriaRepo *repositories.CriteriaRepository) *CriteriaService {
	return &CriteriaService{criteriaRepo: criteriaRepo}
}

// Create stores criteria for a program. One criteria record per program.
func (s *CriteriaService) Create(ctx context.Context, req *dto.CreateCriteriaRequest) (*models.EligibilityCriteria, error) {
	_, err := s.criteriaRepo.GetByProgram(ctx, req.Program)
	switch {
	case err == nil:
		return nil, apperrors.NewConflictError("eligibility criteria already exist for program " + req.Program)
	case errors.Is(err, apperrors.ErrCriteriaNotFound):
	default:
		return nil, err
	}

	criteria := &models.EligibilityCriteria{
		ID:                     helpers.GenerateID("CRIT"),
		Program:                req.Program,
		MinGPA:                 req.MinGPA,
		RequiredSubjects:       req.RequiredSubjects,
		AdditionalRequirements: req.AdditionalRequirements,
		Capacity:               req.Capacity,
	}
	if err := s.criteriaRepo.Create(ctx, criteria); err != nil {
		return nil, err
	}

	return criteria, nil
}

// GetByID fetches a criteria record.
func (s *CriteriaService) GetByID(ctx context.Context, id string) (*models.EligibilityCriteria, error) {
	return s.criteriaRepo.GetByID(ctx, id)
}

// GetByProgram fetches the criteria record for a program.
func (s *CriteriaService) GetByProgram(ctx context.Context, program string) (*models.EligibilityCriteria, error) {
	return s.criteriaRepo.GetByProgram(ctx, program)
}

// List returns all criteria records.
func (s *CriteriaService) List(ctx context.Context, limit, offset int) ([]*models.EligibilityCriteria, error) {
	return s.criteriaRepo.List(ctx, limit, offset)
}

// Update applies a partial update to a criteria record.
func (s *CriteriaService) Update(ctx context.Context, id string, req *dto.UpdateCriteriaRequest) (*models.EligibilityCriteria, error) {
	criteria, err := s.criteriaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MinGPA != nil {
		criteria.MinGPA = *req.MinGPA
	}
	if req.RequiredSubjects != nil {
		criteria.RequiredSubjects = *req.RequiredSubjects
	}
	if req.AdditionalRequirements != nil {
		criteria.AdditionalRequirements = *req.AdditionalRequirements
	}
	if req.Capacity != nil {
		criteria.Capacity = *req.Capacity
	}

	if err := s.criteriaRepo.Update(ctx, criteria); err != nil {
		return nil, err
	}

	return criteria, nil
}

// Delete removes a criteria record.
func (s *CriteriaService) Delete(ctx context.Context, id string) error {
	return s.criteriaRepo.Delete(ctx, id)
}
