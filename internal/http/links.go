package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/entities"
)

// LinkStore defines database operations for the property associations.
type LinkStore interface {
	LinkMarketer(marketerID, propertyID, adminID uint) error
	UnlinkMarketer(marketerID, propertyID, adminID uint) error
	LinkBuyer(buyerID, propertyID, adminID uint) error
	UnlinkBuyer(buyerID, propertyID, adminID uint) error
	PropertiesForMarketer(marketerID, adminID uint) ([]entities.Property, error)
	PropertiesForBuyer(buyerID, adminID uint) ([]entities.Property, error)
	BuyersForMarketer(marketerID, adminID uint) ([]entities.Buyer, error)
	CountOrphanLinks() (int64, error)
}

// LinksController handles the association endpoints.
type LinksController struct {
	store LinkStore
}

// NewLinksController creates a new LinksController.
func NewLinksController(store LinkStore) *LinksController {
	return &LinksController{store: store}
}

// LinkMarketer handles POST /api/marketers/:id/properties/:propertyId.
func (lc *LinksController) LinkMarketer(c *gin.Context) {
	marketerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	if err := lc.store.LinkMarketer(marketerID, propertyID, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "marketer or property", "link marketer")
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Message: "marketer linked to property"})
}

// UnlinkMarketer handles DELETE /api/marketers/:id/properties/:propertyId.
// Removing a missing link succeeds, the operation is idempotent.
func (lc *LinksController) UnlinkMarketer(c *gin.Context) {
	marketerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	if err := lc.store.UnlinkMarketer(marketerID, propertyID, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "link", "unlink marketer")
		return
	}

	respondSuccess(c, "marketer unlinked from property")
}

// LinkBuyer handles POST /api/buyers/:id/properties/:propertyId.
func (lc *LinksController) LinkBuyer(c *gin.Context) {
	buyerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	if err := lc.store.LinkBuyer(buyerID, propertyID, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "buyer or property", "link buyer")
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Message: "buyer linked to property"})
}

// UnlinkBuyer handles DELETE /api/buyers/:id/properties/:propertyId.
func (lc *LinksController) UnlinkBuyer(c *gin.Context) {
	buyerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	if err := lc.store.UnlinkBuyer(buyerID, propertyID, GetAdminID(c)); err != nil {
		respondStorageError(c, err, "link", "unlink buyer")
		return
	}

	respondSuccess(c, "buyer unlinked from property")
}

// PropertiesForMarketer handles GET /api/marketers/:id/properties.
func (lc *LinksController) PropertiesForMarketer(c *gin.Context) {
	marketerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := lc.store.PropertiesForMarketer(marketerID, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "marketer", "list properties for marketer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": results, "total": len(results)})
}

// PropertiesForBuyer handles GET /api/buyers/:id/properties.
func (lc *LinksController) PropertiesForBuyer(c *gin.Context) {
	buyerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := lc.store.PropertiesForBuyer(buyerID, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "buyer", "list properties for buyer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": results, "total": len(results)})
}

// BuyersForMarketer handles GET /api/marketers/:id/buyers, the deduplicated
// list of buyers interested in any of the marketer's properties.
func (lc *LinksController) BuyersForMarketer(c *gin.Context) {
	marketerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := lc.store.BuyersForMarketer(marketerID, GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "marketer", "list buyers for marketer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"buyers": results, "total": len(results)})
}

// OrphanLinkCount handles GET /api/admin/links/orphans. Orphans only appear
// if a cascade was bypassed; the count should normally be zero.
func (lc *LinksController) OrphanLinkCount(c *gin.Context) {
	count, err := lc.store.CountOrphanLinks()
	if err != nil {
		respondStorageError(c, err, "links", "count orphan links")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orphan_links": count})
}
