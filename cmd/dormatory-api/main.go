package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dormatory/dormatory-api/internal/config"
	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/handlers"
	authmw "github.com/dormatory/dormatory-api/internal/middleware"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/logger"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	typeService := services.NewTypeService(db)
	objectService := services.NewObjectService(db)
	linkService := services.NewLinkService(db)
	hierarchyService := services.NewHierarchyService(db)
	permissionService := services.NewPermissionService(db)
	versioningService := services.NewVersioningService(db)
	attributeService := services.NewAttributeService(db)

	typeHandler := handlers.NewTypeHandler(typeService)
	objectHandler := handlers.NewObjectHandler(objectService, linkService, hierarchyService)
	linkHandler := handlers.NewLinkHandler(linkService)
	permissionHandler := handlers.NewPermissionHandler(permissionService)
	versioningHandler := handlers.NewVersioningHandler(versioningService)
	attributeHandler := handlers.NewAttributeHandler(attributeService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(authmw.RequestLog(zlog))

	api := app.Group("/api/v1")

	if cfg.AuthEnabled() {
		tokenService := services.NewTokenService(cfg.AuthSecret, cfg.TokenExpiry)
		api.Use(authmw.Auth(tokenService))
		zlog.Info("bearer-token auth enabled")
	}

	api.Post("/types", typeHandler.Create)
	api.Post("/types/bulk", typeHandler.CreateBulk)
	api.Get("/types", typeHandler.List)
	api.Get("/types/:typeId", typeHandler.Get)
	api.Put("/types/:typeId", typeHandler.Update)
	api.Delete("/types/:typeId", typeHandler.Delete)
	api.Get("/types/:typeId/objects", typeHandler.GetObjects)

	api.Post("/objects", objectHandler.Create)
	api.Post("/objects/bulk", objectHandler.CreateBulk)
	api.Get("/objects", objectHandler.List)
	api.Get("/objects/:objectId", objectHandler.Get)
	api.Put("/objects/:objectId", objectHandler.Update)
	api.Delete("/objects/:objectId", objectHandler.Delete)
	api.Get("/objects/:objectId/children", objectHandler.GetChildren)
	api.Get("/objects/:objectId/parents", objectHandler.GetParents)
	api.Get("/objects/:objectId/hierarchy", objectHandler.GetHierarchy)

	api.Post("/links", linkHandler.Create)
	api.Post("/links/bulk", linkHandler.CreateBulk)
	api.Post("/links/hierarchy", linkHandler.CreateBulk)
	api.Get("/links", linkHandler.List)
	api.Get("/links/:linkId", linkHandler.Get)
	api.Put("/links/:linkId", linkHandler.Update)
	api.Delete("/links/:linkId", linkHandler.Delete)
	api.Get("/links/parent/:parentId/children", linkHandler.GetChildren)
	api.Get("/links/child/:childId/parents", linkHandler.GetParents)
	api.Get("/links/relationship/:rName", linkHandler.GetByRelationship)

	api.Post("/permissions", permissionHandler.Create)
	api.Post("/permissions/bulk", permissionHandler.CreateBulk)
	api.Get("/permissions", permissionHandler.List)
	api.Get("/permissions/:permissionId", permissionHandler.Get)
	api.Put("/permissions/:permissionId", permissionHandler.Update)
	api.Delete("/permissions/:permissionId", permissionHandler.Delete)
	api.Get("/permissions/object/:objectId", permissionHandler.GetByObject)
	api.Get("/permissions/user/:user", permissionHandler.GetByUser)
	api.Get("/permissions/check/:objectId/:user", permissionHandler.Check)

	api.Post("/versioning", versioningHandler.Create)
	api.Post("/versioning/bulk", versioningHandler.CreateBulk)
	api.Get("/versioning", versioningHandler.List)
	api.Get("/versioning/:versioningId", versioningHandler.Get)
	api.Put("/versioning/:versioningId", versioningHandler.Update)
	api.Delete("/versioning/:versioningId", versioningHandler.Delete)
	api.Get("/versioning/object/:objectId", versioningHandler.GetByObject)
	api.Get("/versioning/object/:objectId/latest", versioningHandler.GetLatest)
	api.Get("/versioning/object/:objectId/version/:version", versioningHandler.GetByVersion)
	api.Post("/versioning/object/:objectId/version", versioningHandler.CreateNext)

	api.Post("/attributes", attributeHandler.Set)
	api.Post("/attributes/bulk", attributeHandler.SetBulk)
	api.Get("/attributes", attributeHandler.List)
	api.Get("/attributes/:attributeId", attributeHandler.Get)
	api.Put("/attributes/:attributeId", attributeHandler.Update)
	api.Delete("/attributes/:attributeId", attributeHandler.Delete)
	api.Get("/attributes/object/:objectId", attributeHandler.GetByObject)
	api.Get("/attributes/object/:objectId/name/:name", attributeHandler.GetByName)
	api.Get("/attributes/object/:objectId/attributes", attributeHandler.GetMap)
	api.Post("/attributes/object/:objectId/attributes", attributeHandler.SetMap)

	// Health stays reachable without a token.
	app.Get("/api/v1/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	app.Get("/", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{
			"service": "dormatory-api",
			"docs":    "/api/v1",
		})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		zlog.Info("server starting", zap.String("addr", addr))
		if err := app.Run(addr); err != nil {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
}
