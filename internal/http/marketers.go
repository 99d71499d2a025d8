package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/database/marketers"
	"github.com/aqardash/aqardash/internal/entities"
	"github.com/aqardash/aqardash/internal/validator"
)

// MarketerStore defines database operations for marketer management.
type MarketerStore interface {
	CreateMarketer(marketer *entities.Marketer, adminID uint) (*entities.Marketer, error)
	GetMarketer(id, adminID uint) (*entities.Marketer, error)
	Search(adminID uint, filters marketers.Filters) ([]entities.Marketer, error)
	UpdateMarketer(marketer *entities.Marketer, adminID uint) error
	DeleteMarketer(id, adminID uint) error
}

// MarketersController handles the marketer endpoints.
type MarketersController struct {
	store    MarketerStore
	validate *validator.Validator
}

// NewMarketersController creates a new MarketersController.
func NewMarketersController(store MarketerStore, validate *validator.Validator) *MarketersController {
	return &MarketersController{store: store, validate: validate}
}

type marketerRequest struct {
	Name         string `json:"name" validate:"required,max=256"`
	Phone        string `json:"phone" validate:"required,max=30"`
	MarketerType string `json:"marketer_type" validate:"required,oneof=broker seller"`
	Email        string `json:"email" validate:"omitempty,email,max=255"`
}

func (r *marketerRequest) toEntity() *entities.Marketer {
	return &entities.Marketer{
		Name:         r.Name,
		Phone:        r.Phone,
		MarketerType: entities.MarketerType(r.MarketerType),
		Email:        r.Email,
	}
}

func (mc *MarketersController) bindRequest(c *gin.Context) (*marketerRequest, bool) {
	var req marketerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return nil, false
	}
	if err := mc.validate.Validate(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(c, verrs)
			return nil, false
		}
		respondBadRequest(c, err.Error())
		return nil, false
	}
	return &req, true
}

// CreateMarketer handles POST /api/marketers.
func (mc *MarketersController) CreateMarketer(c *gin.Context) {
	req, ok := mc.bindRequest(c)
	if !ok {
		return
	}

	created, err := mc.store.CreateMarketer(req.toEntity(), GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "marketer", "create marketer")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// SearchMarketers handles GET /api/marketers.
func (mc *MarketersController) SearchMarketers(c *gin.Context) {
	filters := marketers.Filters{
		SearchTerm:   c.Query("search_term"),
		MarketerType: entities.MarketerType(c.Query("marketer_type")),
	}
	if filters.MarketerType != "" && !entities.ValidMarketerType(filters.MarketerType) {
		respondBadRequest(c, "invalid marketer_type")
		return
	}

	results, err := mc.store.Search(GetAdminID(c), filters)
	if err != nil {
		respondStorageError(c, err, "marketer", "search marketers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"marketers": results,
		"total":     len(results),
	})
}

// GetMarketer handles GET /api/marketers/:id.
func (mc *MarketersController) GetMarketer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	marketer, err := mc.store.GetMarketer(id, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "marketer", "get marketer")
		return
	}

	c.JSON(http.StatusOK, marketer)
}

// UpdateMarketer handles PUT /api/marketers/:id as a full-row replace.
func (mc *MarketersController) UpdateMarketer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req, ok := mc.bindRequest(c)
	if !ok {
		return
	}

	marketer := req.toEntity()
	marketer.ID = id

	if err := mc.store.UpdateMarketer(marketer, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "marketer", "update marketer")
		return
	}

	updated, err := mc.store.GetMarketer(id, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "marketer", "reload marketer")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMarketer handles DELETE /api/marketers/:id, cascading the marketer's
// property links.
func (mc *MarketersController) DeleteMarketer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := mc.store.DeleteMarketer(id, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "marketer", "delete marketer")
		return
	}

	respondSuccess(c, "marketer deleted")
}
