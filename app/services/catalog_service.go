package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/storage"
)

// ProductStore is the read surface the catalogue needs from the
// product collection. *repositories.ProductRepository satisfies it;
// tests substitute an in-memory double.
type ProductStore interface {
	List(ctx context.Context, q string, skip, limit int64) ([]models.Product, error)
	Count(ctx context.Context, q string) (int64, error)
	Latest(ctx context.Context, limit int64) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	FindByKey(ctx context.Context, hex string) (*models.Product, error)
	FindByInternalID(ctx context.Context, id string) (*models.Product, error)
}

// objectIDPattern matches a 24-character hex string, the lexical shape
// of a MongoDB primary key.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// CatalogService turns request parameters into store queries and
// projects the results into response views. It holds no per-request
// state; one instance serves all requests.
type CatalogService struct {
	store        ProductStore
	imageBaseURL string
}

func NewCatalogService(store ProductStore, imageBaseURL string) *CatalogService {
	return &CatalogService{store: store, imageBaseURL: imageBaseURL}
}

// ListResult is a page of list items plus its pagination envelope.
type ListResult struct {
	Products   []models.ListItem `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// List returns one page of products matching the free-text query q,
// with the pagination envelope. An empty q matches everything.
// page and limit are assumed already normalized (ParsePage/ParseLimit).
func (s *CatalogService) List(ctx context.Context, q string, page, limit int) (ListResult, error) {
	skip := int64(page-1) * int64(limit)

	products, err := s.store.List(ctx, q, skip, int64(limit))
	if err != nil {
		return ListResult{}, err
	}
	total, err := s.store.Count(ctx, q)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Products:   models.NewListItems(products),
		Pagination: NewPagination(page, limit, total),
	}, nil
}

// Latest returns up to limit products ordered newest first. No paging,
// no filter; the sequence index is the recency proxy.
func (s *CatalogService) Latest(ctx context.Context, limit int) ([]models.ListItem, error) {
	products, err := s.store.Latest(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	return models.NewListItems(products), nil
}

// Categories returns the distinct category values.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

// Get resolves a path identifier to a product detail view.
//
// Lookup is two-phase and strictly sequential: an identifier shaped
// like a primary key is tried against the key first, and a miss falls
// back to the external identifier in either legacy slot. A key-shaped
// identifier that matches nothing is therefore still given the
// fallback before ErrNotFound is reported.
func (s *CatalogService) Get(ctx context.Context, id string) (models.Detail, error) {
	if objectIDPattern.MatchString(id) {
		p, err := s.store.FindByKey(ctx, id)
		if err == nil {
			return s.detail(*p), nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return models.Detail{}, err
		}
	}

	p, err := s.store.FindByInternalID(ctx, id)
	if err != nil {
		return models.Detail{}, err
	}
	return s.detail(*p), nil
}

func (s *CatalogService) detail(p models.Product) models.Detail {
	return models.NewDetail(p, storage.ProductImageURL(s.imageBaseURL, p.Image))
}
