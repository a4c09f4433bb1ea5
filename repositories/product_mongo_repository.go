package repositories

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/models"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a repository over the products collection.
func NewMongoProductRepository(client *mongo.Client, database string) *MongoProductRepository {
	return &MongoProductRepository{
		collection: client.Database(database).Collection("products"),
	}
}

// Create inserts a new product document.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetAll returns every product in the collection.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// GetByCategory returns products belonging to a category.
func (r *MongoProductRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category": categoryID})
}

// GetFeatured returns products flagged as featured.
func (r *MongoProductRepository) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"isFeatured": true})
}

// GetByID returns a single product by its hex id.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// SearchByName matches product names by case-insensitive substring.
// The needle is regex-escaped, so metacharacters in queries are literal.
func (r *MongoProductRepository) SearchByName(ctx context.Context, name string) ([]models.Product, error) {
	filter := bson.M{"name": bson.M{
		"$regex":   regexp.QuoteMeta(name),
		"$options": "i",
	}}
	return r.find(ctx, filter)
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}
