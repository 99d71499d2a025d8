package http

import (
	"github.com/aqardash/aqardash/internal/auth"
	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/tasks"
	"github.com/aqardash/aqardash/internal/validator"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database  *database.Database
	Validator *validator.Validator

	// Domain stores
	PropertyStore PropertyStore
	BuyerStore    BuyerStore
	MarketerStore MarketerStore
	LinkStore     LinkStore
	StatsStore    StatsStore

	// Authentication
	AuthService    *auth.Service
	AuthController *auth.AuthController
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	CSRFSecret     []byte
	SecureCookies  bool

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
