package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products; referenced from Product.Category by hex id.
type Category struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Images []string           `bson:"images" json:"images"`
}
