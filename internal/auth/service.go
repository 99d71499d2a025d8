package auth

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/aqardash/aqardash/internal/config"
	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameInvalid  = errors.New("username must be 3-64 characters, alphanumeric and underscore/hyphen only")
)

// AdminStore is the slice of the admins repository the service needs.
type AdminStore interface {
	CreateAdmin(username, passwordHash string) (*entities.Admin, error)
	GetByUsername(username string) (*entities.Admin, error)
	GetByID(id uint) (*entities.Admin, error)
	UsernameExists(username string) (bool, error)
	CountAdmins() (int64, error)
}

// Service handles admin registration and credential verification.
type Service struct {
	admins AdminStore
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(admins AdminStore, cfg config.Auth) *Service {
	return &Service{
		admins: admins,
		config: cfg,
	}
}

// Register creates a new admin account. Registration deliberately checks
// before inserting; a race between two registrations of the same username
// still loses at the unique index and surfaces as ErrDuplicateUsername.
func (s *Service) Register(username, password string) (*entities.Admin, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrUsernameInvalid
	}

	exists, err := s.admins.UsernameExists(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, database.ErrDuplicateUsername
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.CreateAdmin(username, passwordHash)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Authenticate validates credentials and returns the matching admin. Unknown
// usernames and wrong passwords both map to ErrInvalidCredentials so the
// response never reveals which half was wrong.
func (s *Service) Authenticate(username, password string) (*entities.Admin, error) {
	admin, err := s.admins.GetByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, database.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := CheckPassword(password, admin.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, database.ErrInvalidCredentials
		}
		return nil, err
	}

	return admin, nil
}

// GetAdminByID retrieves an admin by ID, for session revalidation.
func (s *Service) GetAdminByID(id uint) (*entities.Admin, error) {
	return s.admins.GetByID(id)
}

// HasAdmins reports whether any admin account exists yet.
func (s *Service) HasAdmins() (bool, error) {
	count, err := s.admins.CountAdmins()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
