package server

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/kirana/app/controllers"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/app/routes"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/config"
	"github.com/shashiranjanraj/kirana/pkg/database"
	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/middleware"
	"github.com/shashiranjanraj/kirana/pkg/reqid"
	"github.com/shashiranjanraj/kirana/pkg/router"
)

// Start boots the catalogue service: config, store client, and the
// HTTP surface. Blocks until the listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, config.MongoURI())
	if err != nil {
		return err
	}
	defer database.Disconnect(client) //nolint:errcheck

	repo := repositories.NewProductRepository(client.Database(config.MongoDB()))
	catalog := services.NewCatalogService(repo, config.StorageS3URL())
	products := controllers.NewProductController(catalog)

	r := NewRouter(products)

	addr := ":" + config.AppPort()
	logger.Info("kirana catalogue listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}

// NewRouter assembles the middleware stack and routes around the
// controller. Shared with tests so they exercise the real surface.
func NewRouter(products *controllers.ProductController) *router.Router {
	r := router.New()
	r.Use(reqid.Middleware())
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r, products)
	return r
}
