package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/auth"
	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/validator"
)

// GetAdminID extracts the authenticated admin's ID from the Gin context.
func GetAdminID(c *gin.Context) uint {
	return auth.GetAdminID(c)
}

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// SuccessResponse is a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondValidationError sends a 400 with per-field details.
func respondValidationError(c *gin.Context, verrs validator.ValidationErrors) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Details: verrs,
	})
}

// respondInternalError logs the error and sends a 500 response. The actual
// error is logged but never exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondStorageError maps the database error taxonomy to HTTP statuses.
// resource names what was being operated on for 404 messages.
func respondStorageError(c *gin.Context, err error, resource, context string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, database.ErrDuplicateLink):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "link already exists"})
	case errors.Is(err, database.ErrSchemaMissing):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "database is not initialized"})
	default:
		respondInternalError(c, err, context)
	}
}

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseFloatQuery extracts an optional float query parameter. Responds with
// a 400 and returns false on a malformed value; an absent parameter yields
// a nil pointer.
func parseFloatQuery(c *gin.Context, paramName string) (*float64, bool) {
	raw := c.Query(paramName)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return nil, false
	}
	return &value, true
}
