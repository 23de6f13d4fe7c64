package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when neither lookup strategy finds a product.
var ErrNotFound = errors.New("product not found")

// Product is a catalogue record as stored in MongoDB. Field names are
// capitalised in the collection because the documents were written by
// the original seed tooling.
//
// The external identifier lives in two legacy slots: Internal_ID (the
// full schema) and InternalID (the seed schema). Reads must treat them
// as the same attribute; InternalIDValue coalesces them.
type Product struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Index            int                `bson:"Index"`
	Name             string             `bson:"Name"`
	Description      string             `bson:"Description"`
	Brand            string             `bson:"Brand"`
	Category         string             `bson:"Category"`
	Price            float64            `bson:"Price"`
	Currency         string             `bson:"Currency"`
	Stock            int                `bson:"Stock"`
	EAN              string             `bson:"EAN"`
	Color            string             `bson:"Color"`
	Size             string             `bson:"Size"`
	Availability     string             `bson:"Availability"`
	ShortDescription string             `bson:"ShortDescription"`
	Image            string             `bson:"Image"`
	InternalID       string             `bson:"Internal_ID"`
	LegacyInternalID string             `bson:"InternalID"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt        time.Time          `bson:"updatedAt,omitempty"`
}

// InternalIDValue coalesces the two legacy identifier slots.
// The Internal_ID slot wins when both are populated.
func (p Product) InternalIDValue() string {
	if p.InternalID != "" {
		return p.InternalID
	}
	return p.LegacyInternalID
}

// ListItem is the compact projection used by the list, search and
// latest endpoints. List responses can carry up to 100 items, so the
// image and long-form text fields are deliberately left out.
//
// No field is ever omitted: consumers rely on a stable shape.
type ListItem struct {
	Index      int     `json:"Index"`
	Name       string  `json:"Name"`
	Brand      string  `json:"Brand"`
	Category   string  `json:"Category"`
	Price      float64 `json:"Price"`
	Currency   string  `json:"Currency"`
	Stock      int     `json:"Stock"`
	InternalID string  `json:"Internal ID"`
}

// Detail is the full projection returned by the single-item endpoint.
// Image carries the resolved public URL, not the stored reference.
type Detail struct {
	Index            int     `json:"Index"`
	Name             string  `json:"Name"`
	Description      string  `json:"Description"`
	Brand            string  `json:"Brand"`
	Category         string  `json:"Category"`
	Price            float64 `json:"Price"`
	Currency         string  `json:"Currency"`
	Stock            int     `json:"Stock"`
	EAN              string  `json:"EAN"`
	Color            string  `json:"Color"`
	Size             string  `json:"Size"`
	Availability     string  `json:"Availability"`
	ShortDescription string  `json:"ShortDescription"`
	Image            string  `json:"Image"`
	InternalID       string  `json:"Internal ID"`
}

// NewListItem projects a product into its list view.
func NewListItem(p Product) ListItem {
	return ListItem{
		Index:      p.Index,
		Name:       p.Name,
		Brand:      p.Brand,
		Category:   p.Category,
		Price:      p.Price,
		Currency:   p.Currency,
		Stock:      p.Stock,
		InternalID: p.InternalIDValue(),
	}
}

// NewListItems projects a batch of products into list views.
// The result is never nil so an empty page still encodes as [].
func NewListItems(products []Product) []ListItem {
	items := make([]ListItem, len(products))
	for i, p := range products {
		items[i] = NewListItem(p)
	}
	return items
}

// NewDetail projects a product into its detail view. imageURL is the
// already-resolved public image URL (see storage.ProductImageURL).
func NewDetail(p Product, imageURL string) Detail {
	return Detail{
		Index:            p.Index,
		Name:             p.Name,
		Description:      p.Description,
		Brand:            p.Brand,
		Category:         p.Category,
		Price:            p.Price,
		Currency:         p.Currency,
		Stock:            p.Stock,
		EAN:              p.EAN,
		Color:            p.Color,
		Size:             p.Size,
		Availability:     p.Availability,
		ShortDescription: p.ShortDescription,
		Image:            imageURL,
		InternalID:       p.InternalIDValue(),
	}
}
