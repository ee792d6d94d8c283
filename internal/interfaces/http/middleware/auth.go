package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wordnest/internal/infrastructure/auth"
	"wordnest/internal/shared/constants"
	"wordnest/internal/shared/logger"
	"wordnest/internal/shared/utils"
)

type AuthMiddleware struct {
	sessions *auth.SessionTokenService
	logger   logger.Interface
}

func NewAuthMiddleware(sessions *auth.SessionTokenService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, logger: logger}
}

// RequireAuth verifies the session and aborts unauthenticated requests.
// The cookie is the primary carrier; a Bearer header works for API
// clients.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			m.logger.Debugw("session verification failed", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth fills the identity when a valid session is present and
// stays silent otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := m.sessions.Verify(token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token := utils.GetSessionTokenFromCookie(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func setIdentity(c *gin.Context, claims *auth.SessionClaims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyUserEmail, claims.Email)
	c.Set(constants.ContextKeyUserRole, claims.Role)
}

// UserID returns the authenticated user id, or 0.
func UserID(c *gin.Context) uint {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	id, ok := value.(uint)
	if !ok {
		return 0
	}
	return id
}

// UserRole returns the authenticated user's role, or "".
func UserRole(c *gin.Context) string {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return ""
	}
	role, _ := value.(string)
	return role
}
