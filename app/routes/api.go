package routes

import (
	"net/http"

	"github.com/shashiranjanraj/kirana/app/controllers"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/response"
	"github.com/shashiranjanraj/kirana/pkg/router"
)

// RegisterAPI mounts the catalogue surface. The fixed-name routes are
// registered before the {id} wildcard so /categories, /latest and
// /search are never swallowed by the identifier lookup.
func RegisterAPI(r *router.Router, products *controllers.ProductController) {
	r.Get("/categories", "products.categories", products.Categories)
	r.Get("/latest", "products.latest", products.Latest)
	r.Get("/search", "products.search", products.Search)
	r.Get("/", "products.index", products.Index)

	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	// Wildcard lookup by primary key or external identifier.
	// This MUST be the last registration.
	r.Get("/{id}", "products.show", products.Show)
}
