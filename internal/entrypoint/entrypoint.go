package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/auth"
	"github.com/aqardash/aqardash/internal/config"
	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/database/admins"
	"github.com/aqardash/aqardash/internal/database/buyers"
	"github.com/aqardash/aqardash/internal/database/links"
	"github.com/aqardash/aqardash/internal/database/marketers"
	"github.com/aqardash/aqardash/internal/database/properties"
	"github.com/aqardash/aqardash/internal/database/stats"
	http_controllers "github.com/aqardash/aqardash/internal/http"
	"github.com/aqardash/aqardash/internal/scheduler"
	"github.com/aqardash/aqardash/internal/tasks"
	"github.com/aqardash/aqardash/internal/validator"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains it within
// the configured shutdown timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background workers before refusing new requests
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the full application together and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting AqarDash v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Per-entity repositories sharing the one connection
	adminRepo := admins.NewRepository(db.DB)
	propertyRepo := properties.NewRepository(db.DB)
	buyerRepo := buyers.NewRepository(db.DB)
	marketerRepo := marketers.NewRepository(db.DB)
	linkRepo := links.NewRepository(db.DB)
	statsRepo := stats.NewRepository(db.DB)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var linkAuditScheduler *scheduler.LinkAuditScheduler
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewAuditLinksQueue(linkRepo),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		if cfg.LinkAudit.Enabled {
			linkAuditScheduler = scheduler.NewLinkAuditScheduler(taskClient, cfg.LinkAudit.Schedule)
			if err := linkAuditScheduler.Start(taskCtx); err != nil {
				log.Fatalf("Failed to start link audit scheduler: %v", err)
			}
		}
	}

	// Authentication is always on; every tenant's data hangs off their
	// admin account.
	authService := auth.NewService(adminRepo, cfg.Auth)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}

	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	authMiddleware := auth.NewMiddleware(authService, sessionManager)
	authController := auth.NewAuthController(authService, sessionManager, cfg.Auth)

	if hasAdmins, err := authService.HasAdmins(); err == nil && !hasAdmins {
		log.Printf("No admin accounts found. POST /api/auth/register to create one.")
	}

	var csrfSecret []byte
	if cfg.Auth.SessionSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Auth.SessionSecret)
		}
	} else {
		secret, err := auth.GenerateSessionSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Validator:      validator.New(),
		PropertyStore:  propertyRepo,
		BuyerStore:     buyerRepo,
		MarketerStore:  marketerRepo,
		LinkStore:      linkRepo,
		StatsStore:     statsRepo,
		AuthService:    authService,
		AuthController: authController,
		AuthMiddleware: authMiddleware,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		TaskClient:     taskClient,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		authController.Stop()
		if linkAuditScheduler != nil {
			linkAuditScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
