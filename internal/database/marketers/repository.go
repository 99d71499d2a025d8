// Package marketers provides database operations for marketer records.
package marketers

import (
	"gorm.io/gorm"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

// Filters narrows a marketer search. The search term matches name, phone,
// email, or marketer type as a substring.
type Filters struct {
	SearchTerm   string
	MarketerType entities.MarketerType
}

// Repository handles all marketer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new marketers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateMarketer inserts a new marketer for the admin.
func (r *Repository) CreateMarketer(marketer *entities.Marketer, adminID uint) (*entities.Marketer, error) {
	marketer.ID = 0
	marketer.AdminID = adminID
	if err := r.db.Create(marketer).Error; err != nil {
		return nil, database.Classify("marketers.create", err)
	}
	return marketer, nil
}

// GetMarketer retrieves a single marketer scoped to the admin.
func (r *Repository) GetMarketer(id, adminID uint) (*entities.Marketer, error) {
	var marketer entities.Marketer
	err := r.db.Where("id = ? AND admin_id = ?", id, adminID).First(&marketer).Error
	if err != nil {
		return nil, database.Classify("marketers.get", err)
	}
	return &marketer, nil
}

// Search returns the admin's marketers matching the filters, ordered by
// name. The column list is explicit so future schema additions never leak
// into results by accident.
func (r *Repository) Search(adminID uint, filters Filters) ([]entities.Marketer, error) {
	query := r.db.Model(&entities.Marketer{}).
		Select("id", "name", "phone", "email", "marketer_type", "admin_id").
		Where("admin_id = ?", adminID)

	if filters.SearchTerm != "" {
		pattern := "%" + filters.SearchTerm + "%"
		query = query.Where(
			"(name LIKE ? OR phone LIKE ? OR email LIKE ? OR marketer_type LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}
	if filters.MarketerType != "" {
		query = query.Where("marketer_type = ?", filters.MarketerType)
	}

	var results []entities.Marketer
	err := query.Order("name ASC").Find(&results).Error
	if err != nil {
		return nil, database.Classify("marketers.search", err)
	}
	return results, nil
}

// UpdateMarketer replaces every field of the marketer except its identifier
// and owner. Returns ErrNotFound when the (id, admin_id) pair matches no row.
func (r *Repository) UpdateMarketer(marketer *entities.Marketer, adminID uint) error {
	result := r.db.Model(&entities.Marketer{}).
		Where("id = ? AND admin_id = ?", marketer.ID, adminID).
		Select("name", "phone", "marketer_type", "email").
		Updates(marketer)
	if result.Error != nil {
		return database.Classify("marketers.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteMarketer removes the marketer and its property links in one
// transaction.
func (r *Repository) DeleteMarketer(id, adminID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("marketer_id = ? AND admin_id = ?", id, adminID).
			Delete(&entities.PropertyMarketerLink{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND admin_id = ?", id, adminID).
			Delete(&entities.Marketer{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return database.Classify("marketers.delete", err)
	}
	return nil
}
