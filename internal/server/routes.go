package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seodash/internal/db"
	"seodash/internal/handlers"
	"seodash/internal/handlers/api"
	"seodash/internal/importer"
	"seodash/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Initialize handlers
	imp := importer.New(database)
	importHandler := api.NewImportHandler(imp)
	keywordHandler := api.NewKeywordHandler(database)
	pageHandler := api.NewPageHandler(database)
	compareHandler := api.NewCompareHandler(database)
	dashboardHandler := api.NewDashboardHandler(database)
	alertHandler := api.NewAlertHandler(database)
	probeHandler := handlers.NewProbeHandler(database)

	// Auth routes - OIDC is always required for API access
	if s.Cfg.OIDCIssuer == "" {
		return errors.New("OIDC_ISSUER is required, all API routes need authentication")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	// Import routes - one per source+entity combination
	s.App.Post("/api/import/gsc", authMiddleware.RequireAuth, importHandler.GSCQueries)
	s.App.Post("/api/import/gsc-pages", authMiddleware.RequireAuth, importHandler.GSCPages)
	s.App.Post("/api/import/semrush", authMiddleware.RequireAuth, importHandler.SEMrush)

	// Read routes
	s.App.Get("/api/keywords", authMiddleware.RequireAuth, keywordHandler.List)
	s.App.Get("/api/pages", authMiddleware.RequireAuth, pageHandler.List)
	s.App.Get("/api/compare", authMiddleware.RequireAuth, compareHandler.Compare)
	s.App.Get("/api/dashboard", authMiddleware.RequireAuth, dashboardHandler.Overview)
	s.App.Get("/api/alerts", authMiddleware.RequireAuth, alertHandler.List)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
