package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// ProductController serves the read endpoints of the catalogue API.
// Each handler is a stateless request→query→format→respond pass; all
// decision logic lives in the service.
type ProductController struct {
	service *services.CatalogService
}

func NewProductController(service *services.CatalogService) *ProductController {
	return &ProductController{service: service}
}

// Categories handles GET /categories: the distinct category values as
// a raw JSON array, unformatted and unpaginated.
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.Categories(r.Context())
	if err != nil {
		c.fail(w, r, "list categories", err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	response.JSON(w, http.StatusOK, categories)
}

// Latest handles GET /latest: the most recent products in list view,
// without a pagination envelope.
func (c *ProductController) Latest(w http.ResponseWriter, r *http.Request) {
	limit := services.ParseLimit(r.URL.Query().Get("limit"), services.DefaultLatestLimit)

	products, err := c.service.Latest(r.Context(), limit)
	if err != nil {
		c.fail(w, r, "latest products", err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// Search handles GET /search: paginated free-text results.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, r.URL.Query().Get("q"))
}

// Index handles GET /: the full catalogue, paginated. Identical to
// Search with the unrestricted filter.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, "")
}

func (c *ProductController) list(w http.ResponseWriter, r *http.Request, q string) {
	query := r.URL.Query()
	page := services.ParsePage(query.Get("page"))
	limit := services.ParseLimit(query.Get("limit"), services.DefaultListLimit)

	result, err := c.service.List(r.Context(), q, page, limit)
	if err != nil {
		c.fail(w, r, "list products", err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Show handles GET /{id}: a single product in detail view. The id is
// either a store primary key or an external identifier; the service
// tries both before giving up.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := c.service.Get(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		c.fail(w, r, "get product", err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

// fail logs the store failure with its request ID and answers with the
// opaque 500 body. No internal detail reaches the caller.
func (c *ProductController) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.WithCtx(r.Context()).Error("catalogue query failed", "op", op, "error", err)
	response.InternalError(w)
}
