package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/pkg/auth"
)

// Context keys populated by JWTAuth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware handles authentication and role gating
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the caller's identity in the
// request context. Missing, malformed, or expired tokens abort with 401.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Not authenticated"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			detail := "Could not validate credentials"
			if errors.Is(err, auth.ErrExpiredToken) {
				detail = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired aborts with 403 unless the authenticated caller holds the
// required role. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Not authenticated"))
			return
		}

		if roleTyped, ok := role.(models.Role); !ok || roleTyped != required {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("Not enough permissions"))
			return
		}

		c.Next()
	}
}

// CallerIdentity reads the identity stored by JWTAuth back out of the context.
func CallerIdentity(c *gin.Context) (userID int64, role models.Role, ok bool) {
	idVal, exists := c.Get(ContextUserID)
	if !exists {
		return 0, "", false
	}
	roleVal, exists := c.Get(ContextRole)
	if !exists {
		return 0, "", false
	}

	userID, okID := idVal.(int64)
	role, okRole := roleVal.(models.Role)
	return userID, role, okID && okRole
}
