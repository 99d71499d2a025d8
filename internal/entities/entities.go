package entities

import (
	"time"
)

type PropertyType string

const (
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeIndustrial   PropertyType = "industrial"
	PropertyTypeAgricultural PropertyType = "agricultural"
	PropertyTypeResidential  PropertyType = "residential"
)

type PropertyScale string

const (
	PropertyScaleVilla     PropertyScale = "villa"
	PropertyScaleBuilding  PropertyScale = "building"
	PropertyScaleApartment PropertyScale = "apartment"
	PropertyScalePalace    PropertyScale = "palace"
)

type Category string

const (
	CategoryFamilies    Category = "families"
	CategoryIndividuals Category = "individuals"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusSold      PropertyStatus = "sold"
)

type MarketerType string

const (
	MarketerTypeBroker MarketerType = "broker"
	MarketerTypeSeller MarketerType = "seller"
)

// Admin is the tenant account. Every other row carries an AdminID and all
// queries are scoped by it.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Property struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"size:512" json:"title"`
	AnnouncementDate time.Time      `gorm:"not null" json:"announcement_date"`
	PropertyType     PropertyType   `gorm:"size:20;not null;check:property_type IN ('commercial','industrial','agricultural','residential')" json:"property_type"`
	PropertyScale    PropertyScale  `gorm:"size:20;not null;check:property_scale IN ('villa','building','apartment','palace')" json:"property_scale"`
	Area             float64        `gorm:"not null" json:"area"`
	Category         Category       `gorm:"size:20;not null;check:category IN ('families','individuals')" json:"category"`
	Floors           int            `json:"floors"`
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	LivingRooms      int            `json:"living_rooms"`
	Price            float64        `gorm:"not null" json:"price"`
	Region           string         `gorm:"size:100;not null" json:"region"`
	District         string         `gorm:"size:100;not null" json:"district"`
	City             string         `gorm:"size:100;not null" json:"city"`
	LocationLink     string         `gorm:"size:2048" json:"location_link,omitempty"`
	SourceLink       string         `gorm:"size:2048" json:"source_link,omitempty"`
	LocationDetails  string         `gorm:"type:text" json:"location_details,omitempty"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	Status           PropertyStatus `gorm:"size:20;not null;check:status IN ('available','reserved','sold')" json:"status"`
	AdminID          uint           `gorm:"index;not null" json:"admin_id"`
	Admin            Admin          `gorm:"foreignKey:AdminID" json:"-"`
}

// PropertySummary is the compact projection used for dropdowns and link
// pickers. Explicit column list so schema changes never leak to callers.
type PropertySummary struct {
	ID           uint         `json:"id"`
	Title        string       `json:"title"`
	PropertyType PropertyType `json:"property_type"`
	Region       string       `json:"region"`
	City         string       `json:"city"`
	District     string       `json:"district"`
	Price        float64      `json:"price"`
}

type Buyer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:256;not null" json:"name"`
	Phone     string  `gorm:"size:30;not null" json:"phone"`
	Email     string  `gorm:"size:255" json:"email,omitempty"`
	Budget    float64 `gorm:"not null" json:"budget"`
	Interests string  `gorm:"type:text" json:"interests,omitempty"`
	AdminID   uint    `gorm:"index;not null" json:"admin_id"`
	Admin     Admin   `gorm:"foreignKey:AdminID" json:"-"`
}

type Marketer struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:256;not null" json:"name"`
	Phone        string       `gorm:"size:30;not null" json:"phone"`
	MarketerType MarketerType `gorm:"size:20;not null;check:marketer_type IN ('broker','seller')" json:"marketer_type"`
	Email        string       `gorm:"size:255" json:"email,omitempty"`
	AdminID      uint         `gorm:"index;not null" json:"admin_id"`
	Admin        Admin        `gorm:"foreignKey:AdminID" json:"-"`
}

// PropertyMarketerLink associates a marketer with a property it advertises.
// The (marketer_id, property_id) pair is unique; the database enforces it.
type PropertyMarketerLink struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	MarketerID uint     `gorm:"not null;uniqueIndex:idx_marketer_property" json:"marketer_id"`
	PropertyID uint     `gorm:"not null;uniqueIndex:idx_marketer_property" json:"property_id"`
	AdminID    uint     `gorm:"index;not null" json:"admin_id"`
	Marketer   Marketer `gorm:"foreignKey:MarketerID" json:"-"`
	Property   Property `gorm:"foreignKey:PropertyID" json:"-"`
	Admin      Admin    `gorm:"foreignKey:AdminID" json:"-"`
}

// PropertyBuyerLink associates a buyer with a property of interest.
type PropertyBuyerLink struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	BuyerID    uint     `gorm:"not null;uniqueIndex:idx_buyer_property" json:"buyer_id"`
	PropertyID uint     `gorm:"not null;uniqueIndex:idx_buyer_property" json:"property_id"`
	AdminID    uint     `gorm:"index;not null" json:"admin_id"`
	Buyer      Buyer    `gorm:"foreignKey:BuyerID" json:"-"`
	Property   Property `gorm:"foreignKey:PropertyID" json:"-"`
	Admin      Admin    `gorm:"foreignKey:AdminID" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}

func (Property) TableName() string {
	return "properties"
}

func (Buyer) TableName() string {
	return "buyers"
}

func (Marketer) TableName() string {
	return "marketers"
}

func (PropertyMarketerLink) TableName() string {
	return "property_marketer_links"
}

func (PropertyBuyerLink) TableName() string {
	return "property_buyer_links"
}

// ValidPropertyType reports whether v is one of the fixed property types.
func ValidPropertyType(v PropertyType) bool {
	switch v {
	case PropertyTypeCommercial, PropertyTypeIndustrial, PropertyTypeAgricultural, PropertyTypeResidential:
		return true
	}
	return false
}

// ValidPropertyStatus reports whether v is one of the fixed statuses.
func ValidPropertyStatus(v PropertyStatus) bool {
	switch v {
	case PropertyStatusAvailable, PropertyStatusReserved, PropertyStatusSold:
		return true
	}
	return false
}

// ValidMarketerType reports whether v is one of the fixed marketer types.
func ValidMarketerType(v MarketerType) bool {
	switch v {
	case MarketerTypeBroker, MarketerTypeSeller:
		return true
	}
	return false
}
