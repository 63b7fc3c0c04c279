package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelog/clinic-api/internal/service/auth"
)

// Context keys set by the auth middleware.
const (
	ContextUserID    = "user_id"
	ContextSessionID = "session_id"
)

type AuthMiddleware struct {
	authService auth.AuthService
	cookieName  string
}

func NewAuthMiddleware(authService auth.AuthService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		cookieName:  cookieName,
	}
}

// RequireSession admits only requests carrying a valid session cookie.
// Anything else is sent back to the login page instead of leaking data.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(m.cookieName)
		if err != nil {
			m.redirectToLogin(c)
			return
		}

		userID, err := m.authService.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			m.redirectToLogin(c)
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

func (m *AuthMiddleware) redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
