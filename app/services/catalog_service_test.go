package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/kirana/app/models"
)

// memoryStore is an in-memory ProductStore that records the order of
// lookup calls, so tests can assert the two-phase sequence.
type memoryStore struct {
	products []models.Product
	calls    []string
	failWith error
}

func (m *memoryStore) matches(p models.Product, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, field := range []string{p.InternalID, p.LegacyInternalID, p.Name, p.Brand, p.Category} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (m *memoryStore) List(_ context.Context, q string, skip, limit int64) ([]models.Product, error) {
	m.calls = append(m.calls, "List")
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Product
	for _, p := range m.products {
		if m.matches(p, q) {
			out = append(out, p)
		}
	}
	if skip >= int64(len(out)) {
		return nil, nil
	}
	out = out[skip:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) Count(_ context.Context, q string) (int64, error) {
	m.calls = append(m.calls, "Count")
	if m.failWith != nil {
		return 0, m.failWith
	}
	var n int64
	for _, p := range m.products {
		if m.matches(p, q) {
			n++
		}
	}
	return n, nil
}

func (m *memoryStore) Latest(_ context.Context, limit int64) ([]models.Product, error) {
	m.calls = append(m.calls, "Latest")
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	sort.Slice(out, func(i, j int) bool { return out[i].Index > out[j].Index })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) Categories(_ context.Context) ([]string, error) {
	m.calls = append(m.calls, "Categories")
	if m.failWith != nil {
		return nil, m.failWith
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range m.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (m *memoryStore) FindByKey(_ context.Context, hex string) (*models.Product, error) {
	m.calls = append(m.calls, "FindByKey")
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, p := range m.products {
		if p.ID.Hex() == hex {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memoryStore) FindByInternalID(_ context.Context, id string) (*models.Product, error) {
	m.calls = append(m.calls, "FindByInternalID")
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, p := range m.products {
		if p.InternalID == id || p.LegacyInternalID == id {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

const imageBase = "https://shop-images.s3.us-east-1.amazonaws.com"

func newCatalog(store *memoryStore) *CatalogService {
	return NewCatalogService(store, imageBase)
}

func TestGetByPrimaryKey(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &memoryStore{products: []models.Product{
		{ID: oid, Index: 1001, Name: "Clock", InternalID: "uuid-1", Image: "1001.jpg"},
	}}

	detail, err := newCatalog(store).Get(context.Background(), oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1001, detail.Index)
	assert.Equal(t, imageBase+"/products/1001.jpg", detail.Image)
	assert.Equal(t, []string{"FindByKey"}, store.calls)
}

func TestGetFallsBackAfterKeyMiss(t *testing.T) {
	// A key-shaped identifier that matches no primary key must still be
	// tried against the external identifier before NotFound.
	store := &memoryStore{products: []models.Product{
		{ID: primitive.NewObjectID(), Index: 1001, InternalID: "uuid-1"},
	}}

	_, err := newCatalog(store).Get(context.Background(), "b1c2d3e4f5a6b7c8d9e0f1a2")
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, []string{"FindByKey", "FindByInternalID"}, store.calls)
}

func TestGetByExternalIdentifierSkipsKeyLookup(t *testing.T) {
	store := &memoryStore{products: []models.Product{
		{ID: primitive.NewObjectID(), Index: 1001, LegacyInternalID: "04cc19ed-772c-4cab-9758-057962c2a475"},
	}}

	detail, err := newCatalog(store).Get(context.Background(), "04cc19ed-772c-4cab-9758-057962c2a475")
	require.NoError(t, err)
	// The identifier is not 24-hex shaped, so only the fallback runs.
	assert.Equal(t, []string{"FindByInternalID"}, store.calls)
	// The legacy slot's value comes out under the canonical key.
	assert.Equal(t, "04cc19ed-772c-4cab-9758-057962c2a475", detail.InternalID)
}

func TestGetStoreFailureNotSwallowed(t *testing.T) {
	boom := errors.New("connection reset")
	store := &memoryStore{failWith: boom}

	_, err := newCatalog(store).Get(context.Background(), "b1c2d3e4f5a6b7c8d9e0f1a2")
	require.ErrorIs(t, err, boom)
	// A store failure on the key lookup must not trigger the fallback.
	assert.Equal(t, []string{"FindByKey"}, store.calls)
}

func TestLatestOrdersByIndexDescending(t *testing.T) {
	store := &memoryStore{products: []models.Product{
		{Index: 1001, Name: "Portable Clock Drone Charger Clean Ultra"},
		{Index: 1002, Name: "Smart Wireless Speaker Pro"},
	}}

	items, err := newCatalog(store).Latest(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1002, items[0].Index)
	assert.Equal(t, "Smart Wireless Speaker Pro", items[0].Name)
}

func TestSearchScenario(t *testing.T) {
	store := &memoryStore{products: []models.Product{
		{Index: 1001, Name: "Portable Clock", Category: "Accessories (Bags, Hats, Belts)"},
		{Index: 1002, Name: "Smart Wireless Speaker Pro", Category: "Electronics"},
	}}

	result, err := newCatalog(store).List(context.Background(), "electronics", 1, 1)
	require.NoError(t, err)

	assert.Len(t, result.Products, 1)
	assert.Equal(t, int64(1), result.Pagination.Total)
	assert.False(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)
	assert.Equal(t, int64(1), result.Pagination.TotalPages)
}

func TestListSkipsPages(t *testing.T) {
	store := &memoryStore{products: []models.Product{
		{Index: 1001}, {Index: 1002}, {Index: 1003},
	}}

	result, err := newCatalog(store).List(context.Background(), "", 2, 2)
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	assert.Equal(t, 1003, result.Products[0].Index)
	assert.True(t, result.Pagination.HasPrev)
	assert.False(t, result.Pagination.HasNext)
	assert.Equal(t, int64(2), result.Pagination.TotalPages)
}
