package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product owned by the backend store.
// Images hold server-relative asset paths; absolute URLs are resolved
// against the configured base URL when the product is read.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	OldPrice    float64            `bson:"oldPrice,omitempty" json:"oldPrice,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Images      []string           `bson:"images" json:"images"`
}
