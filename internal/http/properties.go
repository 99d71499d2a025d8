package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/database/properties"
	"github.com/aqardash/aqardash/internal/entities"
	"github.com/aqardash/aqardash/internal/validator"
)

// PropertyStore defines database operations for property management.
type PropertyStore interface {
	CreateProperty(property *entities.Property, adminID uint) (*entities.Property, error)
	GetProperty(id, adminID uint) (*entities.Property, error)
	Search(adminID uint, filters properties.Filters) ([]entities.Property, error)
	ListSummaries(adminID uint) ([]entities.PropertySummary, error)
	UpdateProperty(property *entities.Property, adminID uint) error
	DeleteProperty(id, adminID uint) error
}

// PropertiesController handles the property endpoints.
type PropertiesController struct {
	store    PropertyStore
	validate *validator.Validator
}

// NewPropertiesController creates a new PropertiesController.
func NewPropertiesController(store PropertyStore, validate *validator.Validator) *PropertiesController {
	return &PropertiesController{store: store, validate: validate}
}

// propertyRequest is the payload for creating or replacing a property.
type propertyRequest struct {
	Title            string     `json:"title" validate:"required,max=512"`
	AnnouncementDate *time.Time `json:"announcement_date"`
	PropertyType     string     `json:"property_type" validate:"required,oneof=commercial industrial agricultural residential"`
	PropertyScale    string     `json:"property_scale" validate:"required,oneof=villa building apartment palace"`
	Area             float64    `json:"area" validate:"required,gt=0"`
	Category         string     `json:"category" validate:"required,oneof=families individuals"`
	Floors           int        `json:"floors" validate:"gte=0"`
	Bedrooms         int        `json:"bedrooms" validate:"gte=0"`
	Bathrooms        int        `json:"bathrooms" validate:"gte=0"`
	LivingRooms      int        `json:"living_rooms" validate:"gte=0"`
	Price            float64    `json:"price" validate:"required,gt=0"`
	Region           string     `json:"region" validate:"required,max=100"`
	District         string     `json:"district" validate:"required,max=100"`
	City             string     `json:"city" validate:"required,max=100"`
	LocationLink     string     `json:"location_link" validate:"omitempty,url,max=2048"`
	SourceLink       string     `json:"source_link" validate:"omitempty,url,max=2048"`
	LocationDetails  string     `json:"location_details"`
	Description      string     `json:"description"`
	Status           string     `json:"status" validate:"required,oneof=available reserved sold"`
}

func (r *propertyRequest) toEntity() *entities.Property {
	property := &entities.Property{
		Title:           r.Title,
		PropertyType:    entities.PropertyType(r.PropertyType),
		PropertyScale:   entities.PropertyScale(r.PropertyScale),
		Area:            r.Area,
		Category:        entities.Category(r.Category),
		Floors:          r.Floors,
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		LivingRooms:     r.LivingRooms,
		Price:           r.Price,
		Region:          r.Region,
		District:        r.District,
		City:            r.City,
		LocationLink:    r.LocationLink,
		SourceLink:      r.SourceLink,
		LocationDetails: r.LocationDetails,
		Description:     r.Description,
		Status:          entities.PropertyStatus(r.Status),
	}
	if r.AnnouncementDate != nil {
		property.AnnouncementDate = *r.AnnouncementDate
	}
	return property
}

func (pc *PropertiesController) bindRequest(c *gin.Context) (*propertyRequest, bool) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return nil, false
	}
	if err := pc.validate.Validate(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(c, verrs)
			return nil, false
		}
		respondBadRequest(c, err.Error())
		return nil, false
	}
	return &req, true
}

// CreateProperty handles POST /api/properties.
func (pc *PropertiesController) CreateProperty(c *gin.Context) {
	req, ok := pc.bindRequest(c)
	if !ok {
		return
	}

	created, err := pc.store.CreateProperty(req.toEntity(), GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "property", "create property")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// SearchProperties handles GET /api/properties. All filters are optional
// and combine with AND.
func (pc *PropertiesController) SearchProperties(c *gin.Context) {
	filters := properties.Filters{
		SearchTerm:   c.Query("search_term"),
		PropertyType: entities.PropertyType(c.Query("property_type")),
		City:         c.Query("city"),
		District:     c.Query("district"),
	}
	if filters.PropertyType != "" && !entities.ValidPropertyType(filters.PropertyType) {
		respondBadRequest(c, "invalid property_type")
		return
	}

	var ok bool
	if filters.MinPrice, ok = parseFloatQuery(c, "min_price"); !ok {
		return
	}
	if filters.MaxPrice, ok = parseFloatQuery(c, "max_price"); !ok {
		return
	}
	if filters.MinArea, ok = parseFloatQuery(c, "min_area"); !ok {
		return
	}
	if filters.MaxArea, ok = parseFloatQuery(c, "max_area"); !ok {
		return
	}

	results, err := pc.store.Search(GetAdminID(c), filters)
	if err != nil {
		respondStorageError(c, err, "property", "search properties")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": results,
		"total":      len(results),
	})
}

// ListSummaries handles GET /api/properties/summaries, the compact listing
// used to populate link pickers.
func (pc *PropertiesController) ListSummaries(c *gin.Context) {
	summaries, err := pc.store.ListSummaries(GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "property", "list property summaries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": summaries})
}

// GetProperty handles GET /api/properties/:id.
func (pc *PropertiesController) GetProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	property, err := pc.store.GetProperty(id, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "property", "get property")
		return
	}

	c.JSON(http.StatusOK, property)
}

// UpdateProperty handles PUT /api/properties/:id as a full-row replace.
func (pc *PropertiesController) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req, ok := pc.bindRequest(c)
	if !ok {
		return
	}

	property := req.toEntity()
	property.ID = id

	if err := pc.store.UpdateProperty(property, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "property", "update property")
		return
	}

	updated, err := pc.store.GetProperty(id, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "property", "reload property")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProperty handles DELETE /api/properties/:id, cascading both link
// tables in the same transaction.
func (pc *PropertiesController) DeleteProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.store.DeleteProperty(id, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "property", "delete property")
		return
	}

	respondSuccess(c, "property deleted")
}
