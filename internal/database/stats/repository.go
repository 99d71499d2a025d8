// Package stats provides the dashboard aggregates: entity totals and the
// property, buyer, and marketer breakdowns.
package stats

import (
	"gorm.io/gorm"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

// CountBucket is one slice of a grouped breakdown.
type CountBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// TopBuyer is one row of the highest-budget buyer listing.
type TopBuyer struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

// Dashboard aggregates everything the overview endpoint renders.
type Dashboard struct {
	TotalProperties int64         `json:"total_properties"`
	TotalBuyers     int64         `json:"total_buyers"`
	TotalMarketers  int64         `json:"total_marketers"`
	ByStatus        []CountBucket `json:"properties_by_status"`
	ByCity          []CountBucket `json:"properties_by_city"`
	ByPriceRange    []CountBucket `json:"properties_by_price_range"`
	ByAreaRange     []CountBucket `json:"properties_by_area_range"`
	TopBuyers       []TopBuyer    `json:"top_buyers_by_budget"`
	MarketersByType []CountBucket `json:"marketers_by_type"`
}

// Repository computes dashboard aggregates.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new stats repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Bucket boundaries mirror the dashboard's fixed price and area ranges.
const priceRangeExpr = `CASE
	WHEN price < 100000 THEN '0-100K'
	WHEN price < 200000 THEN '100K-200K'
	WHEN price < 300000 THEN '200K-300K'
	WHEN price < 400000 THEN '300K-400K'
	ELSE '400K+'
END`

const areaRangeExpr = `CASE
	WHEN area < 100 THEN '0-100'
	WHEN area < 200 THEN '100-200'
	WHEN area < 300 THEN '200-300'
	WHEN area < 400 THEN '300-400'
	ELSE '400+'
END`

// GetDashboard assembles every aggregate for the admin in one call.
func (r *Repository) GetDashboard(adminID uint) (*Dashboard, error) {
	dashboard := &Dashboard{}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&entities.Property{}, &dashboard.TotalProperties},
		{&entities.Buyer{}, &dashboard.TotalBuyers},
		{&entities.Marketer{}, &dashboard.TotalMarketers},
	}
	for _, c := range counts {
		err := r.db.Model(c.model).Where("admin_id = ?", adminID).Count(c.dest).Error
		if err != nil {
			return nil, database.Classify("stats.totals", err)
		}
	}

	var err error
	dashboard.ByStatus, err = r.propertyBuckets(adminID, "status")
	if err != nil {
		return nil, err
	}
	dashboard.ByCity, err = r.propertyBuckets(adminID, "city")
	if err != nil {
		return nil, err
	}
	dashboard.ByPriceRange, err = r.propertyBuckets(adminID, priceRangeExpr)
	if err != nil {
		return nil, err
	}
	dashboard.ByAreaRange, err = r.propertyBuckets(adminID, areaRangeExpr)
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&entities.Buyer{}).
		Select("name", "budget").
		Where("admin_id = ?", adminID).
		Order("budget DESC").
		Limit(10).
		Scan(&dashboard.TopBuyers).Error
	if err != nil {
		return nil, database.Classify("stats.top_buyers", err)
	}

	err = r.db.Model(&entities.Marketer{}).
		Select("marketer_type AS label", "COUNT(*) AS count").
		Where("admin_id = ?", adminID).
		Group("marketer_type").
		Order("count DESC").
		Scan(&dashboard.MarketersByType).Error
	if err != nil {
		return nil, database.Classify("stats.marketers_by_type", err)
	}

	return dashboard, nil
}

func (r *Repository) propertyBuckets(adminID uint, labelExpr string) ([]CountBucket, error) {
	var buckets []CountBucket
	err := r.db.Model(&entities.Property{}).
		Select(labelExpr+" AS label", "COUNT(*) AS count").
		Where("admin_id = ?", adminID).
		Group("label").
		Order("count DESC").
		Scan(&buckets).Error
	if err != nil {
		return nil, database.Classify("stats.property_buckets", err)
	}
	return buckets, nil
}
