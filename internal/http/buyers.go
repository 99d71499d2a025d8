package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/database/buyers"
	"github.com/aqardash/aqardash/internal/entities"
	"github.com/aqardash/aqardash/internal/validator"
)

// BuyerStore defines database operations for buyer management.
type BuyerStore interface {
	CreateBuyer(buyer *entities.Buyer, adminID uint) (*entities.Buyer, error)
	GetBuyer(id, adminID uint) (*entities.Buyer, error)
	Search(adminID uint, filters buyers.Filters) ([]entities.Buyer, error)
	UpdateBuyer(buyer *entities.Buyer, adminID uint) error
	DeleteBuyer(id, adminID uint) error
}

// BuyersController handles the buyer endpoints.
type BuyersController struct {
	store    BuyerStore
	validate *validator.Validator
}

// NewBuyersController creates a new BuyersController.
func NewBuyersController(store BuyerStore, validate *validator.Validator) *BuyersController {
	return &BuyersController{store: store, validate: validate}
}

type buyerRequest struct {
	Name      string  `json:"name" validate:"required,max=256"`
	Phone     string  `json:"phone" validate:"required,max=30"`
	Email     string  `json:"email" validate:"omitempty,email,max=255"`
	Budget    float64 `json:"budget" validate:"required,gt=0"`
	Interests string  `json:"interests"`
}

func (r *buyerRequest) toEntity() *entities.Buyer {
	return &entities.Buyer{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Budget:    r.Budget,
		Interests: r.Interests,
	}
}

func (bc *BuyersController) bindRequest(c *gin.Context) (*buyerRequest, bool) {
	var req buyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return nil, false
	}
	if err := bc.validate.Validate(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(c, verrs)
			return nil, false
		}
		respondBadRequest(c, err.Error())
		return nil, false
	}
	return &req, true
}

// CreateBuyer handles POST /api/buyers.
func (bc *BuyersController) CreateBuyer(c *gin.Context) {
	req, ok := bc.bindRequest(c)
	if !ok {
		return
	}

	created, err := bc.store.CreateBuyer(req.toEntity(), GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "buyer", "create buyer")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// SearchBuyers handles GET /api/buyers.
func (bc *BuyersController) SearchBuyers(c *gin.Context) {
	filters := buyers.Filters{
		SearchTerm: c.Query("search_term"),
	}

	var ok bool
	if filters.MinBudget, ok = parseFloatQuery(c, "min_budget"); !ok {
		return
	}
	if filters.MaxBudget, ok = parseFloatQuery(c, "max_budget"); !ok {
		return
	}

	results, err := bc.store.Search(GetAdminID(c), filters)
	if err != nil {
		respondStorageError(c, err, "buyer", "search buyers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"buyers": results,
		"total":  len(results),
	})
}

// GetBuyer handles GET /api/buyers/:id.
func (bc *BuyersController) GetBuyer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	buyer, err := bc.store.GetBuyer(id, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "buyer", "get buyer")
		return
	}

	c.JSON(http.StatusOK, buyer)
}

// UpdateBuyer handles PUT /api/buyers/:id as a full-row replace.
func (bc *BuyersController) UpdateBuyer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req, ok := bc.bindRequest(c)
	if !ok {
		return
	}

	buyer := req.toEntity()
	buyer.ID = id

	if err := bc.store.UpdateBuyer(buyer, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "buyer", "update buyer")
		return
	}

	updated, err := bc.store.GetBuyer(id, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "buyer", "reload buyer")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBuyer handles DELETE /api/buyers/:id, cascading the buyer's property
// links.
func (bc *BuyersController) DeleteBuyer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBuyer(id, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "buyer", "delete buyer")
		return
	}

	respondSuccess(c, "buyer deleted")
}
