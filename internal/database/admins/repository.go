// Package admins provides database operations for admin accounts.
//
// Admins are the tenants of the system; every other repository scopes its
// queries by an admin ID issued here.
package admins

import (
	"gorm.io/gorm"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

// Repository handles all admin database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new admins repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAdmin inserts a new admin account. The password must already be
// hashed; this layer never sees plaintext.
func (r *Repository) CreateAdmin(username, passwordHash string) (*entities.Admin, error) {
	admin := &entities.Admin{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.Create(admin).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, database.ErrDuplicateUsername
		}
		return nil, database.Classify("admins.create", err)
	}
	return admin, nil
}

// GetByUsername retrieves an admin by exact username.
func (r *Repository) GetByUsername(username string) (*entities.Admin, error) {
	var admin entities.Admin
	err := r.db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, database.Classify("admins.get_by_username", err)
	}
	return &admin, nil
}

// GetByID retrieves an admin by ID.
func (r *Repository) GetByID(id uint) (*entities.Admin, error) {
	var admin entities.Admin
	err := r.db.First(&admin, id).Error
	if err != nil {
		return nil, database.Classify("admins.get_by_id", err)
	}
	return &admin, nil
}

// UsernameExists reports whether the username is already taken.
func (r *Repository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Admin{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, database.Classify("admins.username_exists", err)
	}
	return count > 0, nil
}

// CountAdmins returns the number of registered admin accounts.
func (r *Repository) CountAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Admin{}).Count(&count).Error
	if err != nil {
		return 0, database.Classify("admins.count", err)
	}
	return count, nil
}
