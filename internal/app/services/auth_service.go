package services

import (
	"context"
	"errors"
	"time"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/auth"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// AuthService handles staff authentication.
type AuthService struct {
	staffRepo  *repositories.StaffRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(staffRepo *repositories.StaffRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords return the same error so the endpoint does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		Staff: dto.NewStaffResponse(account),
	}, nil
}

// CreateStaffAccount registers a new staff login. Used by the seeder and the
// admin endpoint.
func (s *AuthService) CreateStaffAccount(ctx context.Context, email, password string, role models.StaffRole) (*models.StaffAccount, error) {
	count, err := s.staffRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.NewConflictError("staff account already exists for " + email)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.StaffAccount{
		ID:           helpers.GenerateID("STAFF"),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.staffRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
