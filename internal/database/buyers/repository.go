// Package buyers provides database operations for buyer records.
package buyers

import (
	"gorm.io/gorm"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

// Filters narrows a buyer search. The search term matches name, phone,
// email, or interests as a substring; the budget bounds are inclusive.
type Filters struct {
	SearchTerm string
	MinBudget  *float64
	MaxBudget  *float64
}

// Repository handles all buyer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new buyers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBuyer inserts a new buyer for the admin.
func (r *Repository) CreateBuyer(buyer *entities.Buyer, adminID uint) (*entities.Buyer, error) {
	buyer.ID = 0
	buyer.AdminID = adminID
	if err := r.db.Create(buyer).Error; err != nil {
		return nil, database.Classify("buyers.create", err)
	}
	return buyer, nil
}

// GetBuyer retrieves a single buyer scoped to the admin.
func (r *Repository) GetBuyer(id, adminID uint) (*entities.Buyer, error) {
	var buyer entities.Buyer
	err := r.db.Where("id = ? AND admin_id = ?", id, adminID).First(&buyer).Error
	if err != nil {
		return nil, database.Classify("buyers.get", err)
	}
	return &buyer, nil
}

// Search returns the admin's buyers matching the filters, ordered by name.
func (r *Repository) Search(adminID uint, filters Filters) ([]entities.Buyer, error) {
	query := r.db.Where("admin_id = ?", adminID)

	if filters.SearchTerm != "" {
		pattern := "%" + filters.SearchTerm + "%"
		query = query.Where(
			"(name LIKE ? OR phone LIKE ? OR email LIKE ? OR interests LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}
	if filters.MinBudget != nil {
		query = query.Where("budget >= ?", *filters.MinBudget)
	}
	if filters.MaxBudget != nil {
		query = query.Where("budget <= ?", *filters.MaxBudget)
	}

	var results []entities.Buyer
	err := query.Order("name ASC").Find(&results).Error
	if err != nil {
		return nil, database.Classify("buyers.search", err)
	}
	return results, nil
}

// UpdateBuyer replaces every field of the buyer except its identifier and
// owner. Returns ErrNotFound when the (id, admin_id) pair matches no row.
func (r *Repository) UpdateBuyer(buyer *entities.Buyer, adminID uint) error {
	result := r.db.Model(&entities.Buyer{}).
		Where("id = ? AND admin_id = ?", buyer.ID, adminID).
		Select("name", "phone", "email", "budget", "interests").
		Updates(buyer)
	if result.Error != nil {
		return database.Classify("buyers.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteBuyer removes the buyer and its property links in one transaction.
func (r *Repository) DeleteBuyer(id, adminID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("buyer_id = ? AND admin_id = ?", id, adminID).
			Delete(&entities.PropertyBuyerLink{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND admin_id = ?", id, adminID).
			Delete(&entities.Buyer{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return database.Classify("buyers.delete", err)
	}
	return nil
}
