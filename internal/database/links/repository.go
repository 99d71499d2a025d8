// Package links provides database operations for the two association tables
// connecting properties to marketers and buyers.
//
// Uniqueness of a (marketer, property) or (buyer, property) pair is enforced
// by the database, not by application-level checks. Linking an existing pair
// surfaces as ErrDuplicateLink; unlinking a missing pair is an idempotent
// no-op.
package links

import (
	"gorm.io/gorm"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

// Repository handles all association database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new links repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LinkMarketer associates a marketer with a property. Both rows must belong
// to the admin.
func (r *Repository) LinkMarketer(marketerID, propertyID, adminID uint) error {
	if err := r.ownsMarketer(marketerID, adminID); err != nil {
		return err
	}
	if err := r.ownsProperty(propertyID, adminID); err != nil {
		return err
	}
	link := &entities.PropertyMarketerLink{
		MarketerID: marketerID,
		PropertyID: propertyID,
		AdminID:    adminID,
	}
	if err := r.db.Create(link).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return database.ErrDuplicateLink
		}
		return database.Classify("links.link_marketer", err)
	}
	return nil
}

// UnlinkMarketer removes the association if present.
func (r *Repository) UnlinkMarketer(marketerID, propertyID, adminID uint) error {
	err := r.db.
		Where("marketer_id = ? AND property_id = ? AND admin_id = ?", marketerID, propertyID, adminID).
		Delete(&entities.PropertyMarketerLink{}).Error
	return database.Classify("links.unlink_marketer", err)
}

// LinkBuyer associates a buyer with a property. Both rows must belong to
// the admin.
func (r *Repository) LinkBuyer(buyerID, propertyID, adminID uint) error {
	if err := r.ownsBuyer(buyerID, adminID); err != nil {
		return err
	}
	if err := r.ownsProperty(propertyID, adminID); err != nil {
		return err
	}
	link := &entities.PropertyBuyerLink{
		BuyerID:    buyerID,
		PropertyID: propertyID,
		AdminID:    adminID,
	}
	if err := r.db.Create(link).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return database.ErrDuplicateLink
		}
		return database.Classify("links.link_buyer", err)
	}
	return nil
}

// UnlinkBuyer removes the association if present.
func (r *Repository) UnlinkBuyer(buyerID, propertyID, adminID uint) error {
	err := r.db.
		Where("buyer_id = ? AND property_id = ? AND admin_id = ?", buyerID, propertyID, adminID).
		Delete(&entities.PropertyBuyerLink{}).Error
	return database.Classify("links.unlink_buyer", err)
}

// PropertiesForMarketer returns the marketer's linked properties, most
// recently announced first.
func (r *Repository) PropertiesForMarketer(marketerID, adminID uint) ([]entities.Property, error) {
	var results []entities.Property
	err := r.db.
		Joins("JOIN property_marketer_links pml ON pml.property_id = properties.id").
		Where("pml.marketer_id = ? AND pml.admin_id = ? AND properties.admin_id = ?", marketerID, adminID, adminID).
		Order("properties.announcement_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, database.Classify("links.properties_for_marketer", err)
	}
	return results, nil
}

// PropertiesForBuyer returns the buyer's linked properties, most recently
// announced first.
func (r *Repository) PropertiesForBuyer(buyerID, adminID uint) ([]entities.Property, error) {
	var results []entities.Property
	err := r.db.
		Joins("JOIN property_buyer_links pbl ON pbl.property_id = properties.id").
		Where("pbl.buyer_id = ? AND pbl.admin_id = ? AND properties.admin_id = ?", buyerID, adminID, adminID).
		Order("properties.announcement_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, database.Classify("links.properties_for_buyer", err)
	}
	return results, nil
}

// BuyersForMarketer returns the distinct buyers interested in any property
// the marketer advertises, ordered by name. Every hop of the join carries
// the admin scope.
func (r *Repository) BuyersForMarketer(marketerID, adminID uint) ([]entities.Buyer, error) {
	var results []entities.Buyer
	err := r.db.
		Distinct("buyers.*").
		Joins("JOIN property_buyer_links pbl ON pbl.buyer_id = buyers.id").
		Joins("JOIN property_marketer_links pml ON pml.property_id = pbl.property_id").
		Where("pml.marketer_id = ? AND pml.admin_id = ? AND pbl.admin_id = ? AND buyers.admin_id = ?",
			marketerID, adminID, adminID, adminID).
		Order("buyers.name ASC").
		Find(&results).Error
	if err != nil {
		return nil, database.Classify("links.buyers_for_marketer", err)
	}
	return results, nil
}

// DeleteOrphanLinks removes link rows whose property, marketer, or buyer no
// longer exists. The transactional cascades should make this a no-op; the
// periodic audit keeps the invariant honest anyway.
func (r *Repository) DeleteOrphanLinks() (int64, error) {
	var total int64

	result := r.db.Exec(`
		DELETE FROM property_marketer_links
		WHERE property_id NOT IN (SELECT id FROM properties)
		OR marketer_id NOT IN (SELECT id FROM marketers)
	`)
	if result.Error != nil {
		return 0, database.Classify("links.delete_orphans", result.Error)
	}
	total += result.RowsAffected

	result = r.db.Exec(`
		DELETE FROM property_buyer_links
		WHERE property_id NOT IN (SELECT id FROM properties)
		OR buyer_id NOT IN (SELECT id FROM buyers)
	`)
	if result.Error != nil {
		return 0, database.Classify("links.delete_orphans", result.Error)
	}
	total += result.RowsAffected

	return total, nil
}

// CountOrphanLinks reports how many link rows currently reference a missing
// property, marketer, or buyer, without deleting anything.
func (r *Repository) CountOrphanLinks() (int64, error) {
	var marketerOrphans, buyerOrphans int64

	err := r.db.Raw(`
		SELECT COUNT(*) FROM property_marketer_links
		WHERE property_id NOT IN (SELECT id FROM properties)
		OR marketer_id NOT IN (SELECT id FROM marketers)
	`).Scan(&marketerOrphans).Error
	if err != nil {
		return 0, database.Classify("links.count_orphans", err)
	}

	err = r.db.Raw(`
		SELECT COUNT(*) FROM property_buyer_links
		WHERE property_id NOT IN (SELECT id FROM properties)
		OR buyer_id NOT IN (SELECT id FROM buyers)
	`).Scan(&buyerOrphans).Error
	if err != nil {
		return 0, database.Classify("links.count_orphans", err)
	}

	return marketerOrphans + buyerOrphans, nil
}

func (r *Repository) ownsProperty(id, adminID uint) error {
	var count int64
	err := r.db.Model(&entities.Property{}).
		Where("id = ? AND admin_id = ?", id, adminID).Count(&count).Error
	if err != nil {
		return database.Classify("links.owns_property", err)
	}
	if count == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *Repository) ownsMarketer(id, adminID uint) error {
	var count int64
	err := r.db.Model(&entities.Marketer{}).
		Where("id = ? AND admin_id = ?", id, adminID).Count(&count).Error
	if err != nil {
		return database.Classify("links.owns_marketer", err)
	}
	if count == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *Repository) ownsBuyer(id, adminID uint) error {
	var count int64
	err := r.db.Model(&entities.Buyer{}).
		Where("id = ? AND admin_id = ?", id, adminID).Count(&count).Error
	if err != nil {
		return database.Classify("links.owns_buyer", err)
	}
	if count == 0 {
		return database.ErrNotFound
	}
	return nil
}
