package seeders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
)

func init() {
	Register("products", SeedProducts)
}

// sampleProducts mirrors the historical seed data. Note the identifier
// sits in the legacy InternalID slot, which is why reads must coalesce
// both spellings.
var sampleProducts = []models.Product{
	{
		Index:            1001,
		Name:             "Portable Clock Drone Charger Clean Ultra",
		Brand:            "Ruiz Group",
		Category:         "Accessories (Bags, Hats, Belts)",
		Price:            562,
		Currency:         "USD",
		Stock:            925,
		LegacyInternalID: "04cc19ed-772c-4cab-9758-057962c2a475",
	},
	{
		Index:            1002,
		Name:             "Smart Wireless Speaker Pro",
		Brand:            "AudioVibe",
		Category:         "Electronics",
		Price:            129,
		Currency:         "USD",
		Stock:            300,
		LegacyInternalID: "f82d91f0-7c64-4c9a-b9f7-456738a8d411",
	},
}

// SeedProducts clears the products collection and inserts the sample
// catalogue.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(repositories.Collection)

	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}

	docs := make([]interface{}, len(sampleProducts))
	for i, p := range sampleProducts {
		docs[i] = p
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}
