package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated admin
const (
	ContextKeyAdminID  = "auth_admin_id"
	ContextKeyUsername = "auth_username"
)

// Middleware authenticates API requests from their session cookie.
type Middleware struct {
	service        *Service
	sessionManager *SessionManager
	publicPaths    map[string]bool
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, sessionManager *SessionManager) *Middleware {
	publicPaths := map[string]bool{
		"/health":            true,
		"/ping":              true,
		"/api/auth/login":    true,
		"/api/auth/register": true,
		"/api/auth/session":  true,
	}

	return &Middleware{
		service:        service,
		sessionManager: sessionManager,
		publicPaths:    publicPaths,
	}
}

// Handler returns a gin middleware that resolves the session for every
// request and rejects anonymous access to non-public paths.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		adminID := m.sessionManager.GetAdminID(c.Request)
		if adminID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		// The account may have been deleted since login
		admin, err := m.service.GetAdminByID(adminID)
		if err != nil {
			_ = m.sessionManager.DestroySession(c.Request)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		c.Set(ContextKeyAdminID, admin.ID)
		c.Set(ContextKeyUsername, admin.Username)
		c.Next()
	}
}

func (m *Middleware) isPublicPath(path string) bool {
	if m.publicPaths[path] {
		return true
	}
	return strings.HasPrefix(path, "/static/")
}

// GetAdminID retrieves the authenticated admin's ID from the context.
// Returns 0 when the request is anonymous.
func GetAdminID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyAdminID); exists {
		if adminID, ok := id.(uint); ok {
			return adminID
		}
	}
	return 0
}

// GetUsername retrieves the authenticated admin's username from the context.
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}
