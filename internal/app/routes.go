package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/middleware"
	"github.com/havenridge/leasing/internal/modules/amenity"
	"github.com/havenridge/leasing/internal/modules/auth"
	"github.com/havenridge/leasing/internal/modules/contact"
	"github.com/havenridge/leasing/internal/modules/floorplan"
	"github.com/havenridge/leasing/internal/modules/gallery"
	"github.com/havenridge/leasing/internal/modules/homead"
	init_ "github.com/havenridge/leasing/internal/modules/init"
	"github.com/havenridge/leasing/internal/modules/system"
	"github.com/havenridge/leasing/internal/modules/user"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/session"
)

const (
	maxUploadBytes = 25 << 20
	maxFormBytes   = 64 << 10
)

// Rotated ads must be picked fresh on every request.
var cacheSkipPaths = []string{
	"/api/admin/*",
	"/api/ping",
	"/api/health",
	"/api/test-email",
	"/api/home-page-ads/active",
}

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	rdb := a.redis.Raw()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "leasing", "env": a.cfg.Env})
	})

	store := session.NewStore(db, a.clock, a.cfg.Admin.SessionTTL)
	authMW := middleware.Auth(store)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(store))
	api.Use(middleware.PurgeOnWrite(rdb, a.logger))
	api.Use(middleware.HTTPCache(rdb, middleware.HTTPCacheOptions{
		TTL:       30 * time.Second,
		SkipPaths: cacheSkipPaths,
	}))

	contactLimit := middleware.RateLimit(rdb, a.logger, middleware.RateLimitOptions{
		Scope: "contact", Max: 5, Window: time.Minute,
	})
	emailLimit := middleware.RateLimit(rdb, a.logger, middleware.RateLimitOptions{
		Scope: "test-email", Max: 2, Window: time.Minute,
	})
	loginLimit := middleware.RateLimit(rdb, a.logger, middleware.RateLimitOptions{
		Scope: "admin-login", Max: 10, Window: 5 * time.Minute,
	})

	uploadLimit := middleware.BodyLimit(maxUploadBytes)
	dedupe := middleware.Idempotence(rdb, a.logger)

	floorplan.NewHandler(floorplan.NewService(db, a.clock)).RegisterRoutes(api, authMW)
	amenity.NewHandler(amenity.NewService(db)).RegisterRoutes(api)
	gallery.NewHandler(gallery.NewService(db, a.images)).RegisterRoutes(api, authMW, gallery.RouteMiddleware{
		Upload: []gin.HandlerFunc{uploadLimit},
		Batch:  []gin.HandlerFunc{dedupe},
	})
	homead.NewHandler(homead.NewService(db, a.clock, a.images)).RegisterRoutes(api, authMW, uploadLimit)

	a.contact = contact.NewHandler(contact.NewService(db), a.notifier, a.logger.Named("contact"))
	a.contact.RegisterRoutes(api, authMW, contactLimit, middleware.BodyLimit(maxFormBytes), dedupe)

	auth.NewHandler(store, a.cfg.Admin.Password, a.logger.Named("admin")).RegisterRoutes(api, loginLimit)
	user.NewHandler(user.NewService(db)).RegisterRoutes(api)
	init_.NewHandler(db, a.clock, a.logger.Named("seed")).RegisterRoutes(api)
	system.NewHandler(db, a.notifier, a.clock, a.logger).RegisterRoutes(api, emailLimit)
}
