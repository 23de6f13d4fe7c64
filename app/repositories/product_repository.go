package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
)

// Collection is the MongoDB collection holding catalogue records.
const Collection = "products"

// ProductRepository reads products from MongoDB. It is constructed with
// an explicit database handle so tests and callers control the
// connection lifecycle.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(Collection)}
}

// searchFilter builds the free-text filter: a case-insensitive
// substring match over the identifier slots, name, brand and category.
// An empty query matches everything.
//
// Both legacy identifier spellings are queried here; this is the only
// place outside identifierFilter where the duplication is visible.
func searchFilter(q string) bson.M {
	if q == "" {
		return bson.M{}
	}
	regex := bson.M{"$regex": q, "$options": "i"}
	return bson.M{
		"$or": []bson.M{
			{"Internal_ID": regex},
			{"InternalID": regex},
			{"Name": regex},
			{"Brand": regex},
			{"Category": regex},
		},
	}
}

// identifierFilter matches a product by external identifier in either
// legacy slot.
func identifierFilter(id string) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"Internal_ID": id},
			{"InternalID": id},
		},
	}
}

// List returns a page of products matching the free-text query.
func (r *ProductRepository) List(ctx context.Context, q string, skip, limit int64) ([]models.Product, error) {
	defer metrics.ObserveStoreQuery("find", time.Now())

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.col.Find(ctx, searchFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("repositories: decode products: %w", err)
	}
	return products, nil
}

// Count returns the number of products matching the free-text query.
func (r *ProductRepository) Count(ctx context.Context, q string) (int64, error) {
	defer metrics.ObserveStoreQuery("count", time.Now())

	total, err := r.col.CountDocuments(ctx, searchFilter(q))
	if err != nil {
		return 0, fmt.Errorf("repositories: count products: %w", err)
	}
	return total, nil
}

// Latest returns the limit most recent products, newest first.
// The Index field is a monotonically growing sequence, so descending
// Index order is the recency order.
func (r *ProductRepository) Latest(ctx context.Context, limit int64) ([]models.Product, error) {
	defer metrics.ObserveStoreQuery("find", time.Now())

	opts := options.Find().
		SetSort(bson.D{{Key: "Index", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: latest products: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("repositories: decode products: %w", err)
	}
	return products, nil
}

// Categories returns the distinct category values, unformatted.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	defer metrics.ObserveStoreQuery("distinct", time.Now())

	raw, err := r.col.Distinct(ctx, "Category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("repositories: distinct categories: %w", err)
	}

	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// FindByKey looks a product up by its MongoDB primary key.
// Returns models.ErrNotFound when the hex is not a valid ObjectID or
// no document carries it.
func (r *ProductRepository) FindByKey(ctx context.Context, hex string) (*models.Product, error) {
	defer metrics.ObserveStoreQuery("find_one", time.Now())

	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var p models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find by key: %w", err)
	}
	return &p, nil
}

// FindByInternalID looks a product up by external identifier, checking
// both legacy field slots.
func (r *ProductRepository) FindByInternalID(ctx context.Context, id string) (*models.Product, error) {
	defer metrics.ObserveStoreQuery("find_one", time.Now())

	var p models.Product
	err := r.col.FindOne(ctx, identifierFilter(id)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find by internal id: %w", err)
	}
	return &p, nil
}
