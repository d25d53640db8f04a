package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/config"
	"github.com/havenridge/leasing/internal/database"
	"github.com/havenridge/leasing/internal/middleware"
	"github.com/havenridge/leasing/internal/modules/contact"
	"github.com/havenridge/leasing/internal/modules/notify"
	"github.com/havenridge/leasing/internal/modules/storage/imagestore"
	"github.com/havenridge/leasing/internal/pkg/clock"
	"github.com/havenridge/leasing/internal/pkg/mail"
	pkgredis "github.com/havenridge/leasing/internal/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg      *config.AppConfig
	router   *gin.Engine
	db       *gorm.DB
	redis    *pkgredis.Client
	logger   *zap.Logger
	clock    clock.Clock
	notifier *notify.Notifier
	images   *imagestore.Pipeline
	contact  *contact.Handler
}

// New initializes the application: config → DB → Redis → mail → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := applyRuntimeSettings(cfg, logger); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	if rc == nil {
		logger.Info("redis_url is empty, response cache and rate limiting are off")
	}

	transport, err := mail.New(cfg.Mail)
	if err != nil {
		return nil, fmt.Errorf("mail: %w", err)
	}

	var uploader imagestore.Uploader
	if cfg.S3Enabled() {
		store, err := imagestore.NewS3Store(cfg.Storage.S3)
		if err != nil {
			return nil, fmt.Errorf("s3: %w", err)
		}
		uploader = store
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	return build(logger, cfg, db, rc, transport, uploader, clock.Real{}), nil
}

// build wires routes around already opened resources.
func build(logger *zap.Logger, cfg *config.AppConfig, db *gorm.DB, rc *pkgredis.Client,
	transport mail.Transport, uploader imagestore.Uploader, clk clock.Clock) *App {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	app := &App{
		cfg:      cfg,
		router:   router,
		db:       db,
		redis:    rc,
		logger:   logger,
		clock:    clk,
		notifier: notify.New(transport, cfg.Mail, logger.Named("mail")),
		images:   imagestore.NewPipeline(uploader),
	}
	app.registerRoutes()

	if !cfg.AdminConfigured() {
		logger.Warn("admin password is empty, admin login will fail until LEASING_ADMIN_PASSWORD is set")
	}
	return app
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.CacheStatusHeader},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		cc.AllowOriginFunc = func(origin string) bool {
			return originAllowed(patterns, origin)
		}
	} else {
		cc.AllowOriginFunc = func(string) bool { return true }
	}
	return cc
}

// Addr returns the listen address.
func (a *App) Addr() string { return a.cfg.Addr() }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown waits for pending contact notifications and releases Redis and
// the database pool.
func (a *App) Shutdown() {
	if a.contact != nil {
		a.contact.Wait()
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Warn("close redis", zap.Error(err))
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
