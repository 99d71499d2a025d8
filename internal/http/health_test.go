package http

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/database/buyers"
	"github.com/aqardash/aqardash/internal/database/links"
	"github.com/aqardash/aqardash/internal/database/marketers"
	"github.com/aqardash/aqardash/internal/database/properties"
	"github.com/aqardash/aqardash/internal/database/stats"
	"github.com/aqardash/aqardash/internal/validator"
)

func TestHealthController_Status(t *testing.T) {
	t.Run("reports healthy with a live database", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		dbPath := "./test_http_health_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
		db, err := database.NewDatabase(dbPath)
		require.NoError(t, err)
		defer func() {
			db.Close()
			os.Remove(dbPath)
		}()

		controller := NewHealthController(db, "test")
		router := gin.New()
		router.GET("/health", controller.Status)

		w := doRequest(router, "GET", "/health")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "ok", resp.Checks["database"])
		assert.Equal(t, "test", resp.Version)
	})

	t.Run("reports not configured without a database", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		controller := NewHealthController(nil, "")
		router := gin.New()
		router.GET("/health", controller.Status)

		w := doRequest(router, "GET", "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "not configured")
	})
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_router_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer func() {
		db.Close()
		os.Remove(dbPath)
	}()

	router := NewRouter(RouterConfig{
		Database:      db,
		Validator:     validator.New(),
		PropertyStore: properties.NewRepository(db.DB),
		BuyerStore:    buyers.NewRepository(db.DB),
		MarketerStore: marketers.NewRepository(db.DB),
		LinkStore:     links.NewRepository(db.DB),
		StatsStore:    stats.NewRepository(db.DB),
		Version:       "test",
	})

	t.Run("ping", func(t *testing.T) {
		w := doRequest(router, "GET", "/ping")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pong")
	})

	t.Run("health", func(t *testing.T) {
		w := doRequest(router, "GET", "/health")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("dashboard", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/dashboard")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "total_properties")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/nonexistent")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
