package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextStaffID = "staffID"
	ContextEmail   = "email"
	ContextRole    = "role"
)

// AuthMiddleware validates the bearer token and stores the staff identity on
// the request context.
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authorization header is required")))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authorization header must be a bearer token")))
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			HandleAPIError(ctx, err)
			return
		}

		ctx.Set(ContextStaffID, claims.StaffID)
		ctx.Set(ContextEmail, claims.Email)
		ctx.Set(ContextRole, claims.Role)
		ctx.Next()
	}
}

// RequireRole restricts an endpoint to the named roles. Admin passes every
// check.
func RequireRole(roles ...models.StaffRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(ContextRole)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
			return
		}

		roleStr, _ := value.(string)
		role := models.StaffRole(roleStr)
		if role == models.RoleAdmin {
			ctx.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Insufficient permissions for this operation")))
	}
}
