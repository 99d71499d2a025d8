// Package properties provides database operations for property listings.
//
// This package implements the PropertyStore interface defined in
// internal/http/properties.go.
//
// # Interface Implementation
//
//	var _ http.PropertyStore = (*Repository)(nil)
//
// # Usage
//
//	repo := properties.NewRepository(db)
//	results, err := repo.Search(adminID, properties.Filters{City: "Riyadh"})
package properties

import (
	"time"

	"gorm.io/gorm"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

// Filters narrows a property search. The zero value matches everything.
// Supplied filters combine with AND; the search term matches title,
// description, or location details as a substring.
type Filters struct {
	SearchTerm   string
	PropertyType entities.PropertyType
	MinPrice     *float64
	MaxPrice     *float64
	MinArea      *float64
	MaxArea      *float64
	City         string
	District     string
}

// Repository handles all property database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new properties repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateProperty inserts a new property for the admin. AnnouncementDate
// defaults to the current time when unset.
func (r *Repository) CreateProperty(property *entities.Property, adminID uint) (*entities.Property, error) {
	property.ID = 0
	property.AdminID = adminID
	if property.AnnouncementDate.IsZero() {
		property.AnnouncementDate = time.Now()
	}
	if err := r.db.Create(property).Error; err != nil {
		return nil, database.Classify("properties.create", err)
	}
	return property, nil
}

// GetProperty retrieves a single property scoped to the admin.
func (r *Repository) GetProperty(id, adminID uint) (*entities.Property, error) {
	var property entities.Property
	err := r.db.Where("id = ? AND admin_id = ?", id, adminID).First(&property).Error
	if err != nil {
		return nil, database.Classify("properties.get", err)
	}
	return &property, nil
}

// Search returns the admin's properties matching the filters, most recently
// announced first.
func (r *Repository) Search(adminID uint, filters Filters) ([]entities.Property, error) {
	query := r.db.Where("admin_id = ?", adminID)

	if filters.SearchTerm != "" {
		pattern := "%" + filters.SearchTerm + "%"
		query = query.Where(
			"(title LIKE ? OR description LIKE ? OR location_details LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if filters.PropertyType != "" {
		query = query.Where("property_type = ?", filters.PropertyType)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.MinArea != nil {
		query = query.Where("area >= ?", *filters.MinArea)
	}
	if filters.MaxArea != nil {
		query = query.Where("area <= ?", *filters.MaxArea)
	}
	if filters.City != "" {
		query = query.Where("city = ?", filters.City)
	}
	if filters.District != "" {
		query = query.Where("district = ?", filters.District)
	}

	var results []entities.Property
	err := query.Order("announcement_date DESC").Find(&results).Error
	if err != nil {
		return nil, database.Classify("properties.search", err)
	}
	return results, nil
}

// ListSummaries returns the compact projection of the admin's properties for
// dropdowns and link pickers. Explicit column list, never SELECT *.
func (r *Repository) ListSummaries(adminID uint) ([]entities.PropertySummary, error) {
	var summaries []entities.PropertySummary
	err := r.db.Model(&entities.Property{}).
		Select("id", "title", "property_type", "region", "city", "district", "price").
		Where("admin_id = ?", adminID).
		Order("title ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, database.Classify("properties.list_summaries", err)
	}
	return summaries, nil
}

// UpdateProperty replaces every field of the property except its identifier,
// owner, and announcement date. Returns ErrNotFound when the (id, admin_id)
// pair does not match a row, so cross-tenant updates surface instead of
// silently doing nothing.
func (r *Repository) UpdateProperty(property *entities.Property, adminID uint) error {
	result := r.db.Model(&entities.Property{}).
		Where("id = ? AND admin_id = ?", property.ID, adminID).
		Select(
			"title", "property_type", "property_scale",
			"area", "category", "floors", "bedrooms", "bathrooms",
			"living_rooms", "price", "region", "district", "city",
			"location_link", "source_link", "location_details",
			"description", "status",
		).
		Updates(property)
	if result.Error != nil {
		return database.Classify("properties.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteProperty removes the property and both of its link-table rows in a
// single transaction, so a crash can never leave orphaned links behind.
func (r *Repository) DeleteProperty(id, adminID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ? AND admin_id = ?", id, adminID).
			Delete(&entities.PropertyMarketerLink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ? AND admin_id = ?", id, adminID).
			Delete(&entities.PropertyBuyerLink{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND admin_id = ?", id, adminID).
			Delete(&entities.Property{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return database.Classify("properties.delete", err)
	}
	return nil
}
