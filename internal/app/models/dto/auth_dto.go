package dto

import (
	"time"

	"github.com/selimd/admitflow/internal/app/models"
)

// LoginRequest represents staff login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// StaffResponse represents staff account information without credentials
type StaffResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      models.StaffRole `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewStaffResponse strips credential material from a staff account
func NewStaffResponse(account *models.StaffAccount) StaffResponse {
	return StaffResponse{
		ID:        account.ID,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	Staff StaffResponse `json:"staff"`
}
