package auth

import (
	"database/sql"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/aqardash/aqardash/internal/config"
	"github.com/aqardash/aqardash/internal/entities"
)

// Session data keys
const (
	SessionKeyAdminID  = "admin_id"
	SessionKeyUsername = "username"
	SessionKeyLoginAt  = "login_at"
)

func init() {
	gob.Register(time.Time{})
}

// SessionManager wraps scs.SessionManager with application-specific methods.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates a configured session manager backed by the
// sessions table in the main SQLite database. Sessions expire exactly
// SessionLifetime after login; there is no idle renewal.
func NewSessionManager(sqlDB *sql.DB, cfg config.Auth) (*SessionManager, error) {
	// sqlite3store expects the table to already exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)

	sm.Lifetime = cfg.SessionLifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &SessionManager{SessionManager: sm}, nil
}

// CreateSession starts a fresh session for an admin after successful
// authentication. The token is renewed to prevent session fixation.
func (sm *SessionManager) CreateSession(r *http.Request, admin *entities.Admin) error {
	if err := sm.RenewToken(r.Context()); err != nil {
		return err
	}

	// Stored as int to match GetInt retrieval
	sm.Put(r.Context(), SessionKeyAdminID, int(admin.ID))
	sm.Put(r.Context(), SessionKeyUsername, admin.Username)
	sm.Put(r.Context(), SessionKeyLoginAt, time.Now())

	return nil
}

// DestroySession removes all session data and invalidates the session.
func (sm *SessionManager) DestroySession(r *http.Request) error {
	return sm.Destroy(r.Context())
}

// GetAdminID retrieves the admin ID from the session. Returns 0 when
// anonymous.
func (sm *SessionManager) GetAdminID(r *http.Request) uint {
	return uint(sm.GetInt(r.Context(), SessionKeyAdminID))
}

// GetUsername retrieves the username from the session.
func (sm *SessionManager) GetUsername(r *http.Request) string {
	return sm.GetString(r.Context(), SessionKeyUsername)
}

// IsAuthenticated returns true if the request carries a valid session.
func (sm *SessionManager) IsAuthenticated(r *http.Request) bool {
	return sm.GetAdminID(r) != 0
}

// SessionData holds the session information for a request.
type SessionData struct {
	AdminID  uint
	Username string
	LoginAt  time.Time
}

// GetSessionData retrieves all session data at once, or nil when anonymous.
func (sm *SessionManager) GetSessionData(r *http.Request) *SessionData {
	adminID := sm.GetAdminID(r)
	if adminID == 0 {
		return nil
	}

	loginAt, _ := sm.Get(r.Context(), SessionKeyLoginAt).(time.Time)

	return &SessionData{
		AdminID:  adminID,
		Username: sm.GetUsername(r),
		LoginAt:  loginAt,
	}
}
