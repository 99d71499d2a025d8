package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/config"
	"github.com/aqardash/aqardash/internal/database"
)

// AuthController handles the authentication endpoints.
type AuthController struct {
	service        *Service
	sessionManager *SessionManager
	rateLimiter    *RateLimiter
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, sessionManager *SessionManager, cfg config.Auth) *AuthController {
	rateLimiter := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     cfg.MaxLoginAttempts,
		WindowDuration:  cfg.RateLimitWindow,
		LockoutDuration: cfg.LockoutDuration,
	})

	return &AuthController{
		service:        service,
		sessionManager: sessionManager,
		rateLimiter:    rateLimiter,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/auth/register", ac.Register)
	router.POST("/api/auth/login", ac.Login)
	router.POST("/api/auth/logout", ac.Logout)
	router.GET("/api/auth/session", ac.Session)
}

// Stop cleans up the rate limiter's background goroutine.
func (ac *AuthController) Stop() {
	if ac.rateLimiter != nil {
		ac.rateLimiter.Stop()
	}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new admin account.
func (ac *AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	admin, err := ac.service.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
		case errors.Is(err, ErrUsernameInvalid),
			errors.Is(err, ErrPasswordTooShort),
			errors.Is(err, ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, database.ErrSchemaMissing):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database is not initialized"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	})
}

// Login verifies credentials and starts a session.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	clientIP := c.ClientIP()
	if allowed, retryAfter := ac.rateLimiter.Allow(clientIP, req.Username); !allowed {
		c.Header("Retry-After", retryAfter.String())
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	admin, err := ac.service.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			ac.rateLimiter.RecordFailure(clientIP, req.Username)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	ac.rateLimiter.RecordSuccess(clientIP, req.Username)

	if err := ac.sessionManager.CreateSession(c.Request, admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	})
}

// Logout destroys the session unconditionally.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessionManager.DestroySession(c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Session reports the current session state.
func (ac *AuthController) Session(c *gin.Context) {
	data := ac.sessionManager.GetSessionData(c.Request)
	if data == nil {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": false,
			"csrf_token":    GetCSRFToken(c),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"admin_id":      data.AdminID,
		"username":      data.Username,
		"login_at":      data.LoginAt,
		"csrf_token":    GetCSRFToken(c),
	})
}
