package repositories

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product, assigning an id when missing.
func (r *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID.Hex()] = *product
	return nil
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.filter(func(models.Product) bool { return true }), nil
}

// GetByCategory returns products with a matching category id.
func (r *MockProductRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Category == categoryID }), nil
}

// GetFeatured returns products flagged as featured.
func (r *MockProductRepository) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.IsFeatured }), nil
}

// GetByID returns a product by its hex id.
func (r *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// SearchByName matches product names by case-insensitive substring.
func (r *MockProductRepository) SearchByName(ctx context.Context, name string) ([]models.Product, error) {
	needle := strings.ToLower(name)
	return r.filter(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}), nil
}

func (r *MockProductRepository) filter(keep func(models.Product) bool) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Product{}
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
