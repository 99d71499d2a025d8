package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/auth"
	"github.com/aqardash/aqardash/internal/tasks"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	if cfg.AuthController != nil {
		cfg.AuthController.RegisterRoutes(router)
	}

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	propertiesController := NewPropertiesController(cfg.PropertyStore, cfg.Validator)
	buyersController := NewBuyersController(cfg.BuyerStore, cfg.Validator)
	marketersController := NewMarketersController(cfg.MarketerStore, cfg.Validator)
	linksController := NewLinksController(cfg.LinkStore)
	statsController := NewStatsController(cfg.StatsStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Property endpoints
	router.POST("/api/properties", propertiesController.CreateProperty)
	router.GET("/api/properties", propertiesController.SearchProperties)
	router.GET("/api/properties/summaries", propertiesController.ListSummaries)
	router.GET("/api/properties/:id", propertiesController.GetProperty)
	router.PUT("/api/properties/:id", propertiesController.UpdateProperty)
	router.DELETE("/api/properties/:id", propertiesController.DeleteProperty)

	// Buyer endpoints
	router.POST("/api/buyers", buyersController.CreateBuyer)
	router.GET("/api/buyers", buyersController.SearchBuyers)
	router.GET("/api/buyers/:id", buyersController.GetBuyer)
	router.PUT("/api/buyers/:id", buyersController.UpdateBuyer)
	router.DELETE("/api/buyers/:id", buyersController.DeleteBuyer)

	// Marketer endpoints
	router.POST("/api/marketers", marketersController.CreateMarketer)
	router.GET("/api/marketers", marketersController.SearchMarketers)
	router.GET("/api/marketers/:id", marketersController.GetMarketer)
	router.PUT("/api/marketers/:id", marketersController.UpdateMarketer)
	router.DELETE("/api/marketers/:id", marketersController.DeleteMarketer)

	// Association endpoints
	router.POST("/api/marketers/:id/properties/:propertyId", linksController.LinkMarketer)
	router.DELETE("/api/marketers/:id/properties/:propertyId", linksController.UnlinkMarketer)
	router.POST("/api/buyers/:id/properties/:propertyId", linksController.LinkBuyer)
	router.DELETE("/api/buyers/:id/properties/:propertyId", linksController.UnlinkBuyer)
	router.GET("/api/marketers/:id/properties", linksController.PropertiesForMarketer)
	router.GET("/api/buyers/:id/properties", linksController.PropertiesForBuyer)
	router.GET("/api/marketers/:id/buyers", linksController.BuyersForMarketer)

	// Dashboard endpoint
	router.GET("/api/dashboard", statsController.GetDashboard)

	// Maintenance endpoints
	router.GET("/api/admin/links/orphans", linksController.OrphanLinkCount)
	if cfg.TaskClient != nil {
		router.POST("/api/admin/links/audit", func(c *gin.Context) {
			ids, err := cfg.TaskClient.Add(tasks.AuditLinksTask{}).Save()
			if err != nil {
				respondInternalError(c, err, "enqueue link audit")
				return
			}
			c.JSON(http.StatusAccepted, gin.H{
				"message": "link audit queued",
				"task_id": ids[0],
			})
		})
		router.GET("/api/admin/links/audit/:taskId", func(c *gin.Context) {
			status, err := cfg.TaskClient.Status(c.Request.Context(), c.Param("taskId"))
			if err != nil {
				respondNotFound(c, "task")
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"task_id": c.Param("taskId"),
				"status":  status,
			})
		})
	}

	return router
}
