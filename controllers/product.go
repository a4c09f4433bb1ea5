package controllers

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"storefront/models"
	"storefront/repositories"
)

// ProductController handles product-related requests. Uploaded images
// land in AssetsDir and are stored as server-relative paths; absolute
// URLs are built from AssetsBaseURL when products are read.
type ProductController struct {
	Repo          repositories.ProductRepository
	AssetsDir     string
	AssetsBaseURL string
}

// NewProductController creates a new ProductController.
func NewProductController(repo repositories.ProductRepository, assetsDir, assetsBaseURL string) *ProductController {
	return &ProductController{
		Repo:          repo,
		AssetsDir:     assetsDir,
		AssetsBaseURL: assetsBaseURL,
	}
}

// CreateProduct handles the multipart product creation form. Field
// presence is not enforced, matching the observed client contract:
// partial submissions still create a document.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	product := models.Product{
		Name:        r.FormValue("name"),
		Price:       parseFloat(r.FormValue("price")),
		OldPrice:    parseFloat(r.FormValue("oldPrice")),
		Description: r.FormValue("description"),
		Quantity:    parseInt(r.FormValue("quantity")),
		InStock:     parseBool(r.FormValue("inStock")),
		IsFeatured:  parseBool(r.FormValue("isFeatured")),
		Category:    r.FormValue("category"),
		Images:      []string{},
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			name, err := pc.saveUpload(header, product.Name)
			if err != nil {
				log.Printf("Error saving uploaded image: %v", err)
				writeMessage(w, http.StatusInternalServerError, "Failed to create Product")
				return
			}
			product.Images = append(product.Images, name)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := pc.Repo.Create(ctx, &product); err != nil {
		log.Printf("Error creating product: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create Product")
		return
	}

	writeJSON(w, http.StatusOK, "Product created successfully at "+pc.AssetsBaseURL)
}

// GetAllProducts retrieves all products.
func (pc *ProductController) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	products, err := pc.Repo.GetAll(ctx)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Products not found")
		return
	}
	writeJSON(w, http.StatusOK, pc.resolveAll(products))
}

// GetProductsByCategory retrieves products for a category id.
func (pc *ProductController) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["CateID"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	products, err := pc.Repo.GetByCategory(ctx, categoryID)
	if err != nil {
		log.Printf("Error fetching products by category: %v", err)
		writeMessage(w, http.StatusInternalServerError, "ProductByCatID fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, pc.resolveAll(products))
}

// GetFeaturedProducts retrieves products flagged as featured.
func (pc *ProductController) GetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	products, err := pc.Repo.GetFeatured(ctx)
	if err != nil {
		log.Printf("Error fetching featured products: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Products not found")
		return
	}
	writeJSON(w, http.StatusOK, pc.resolveAll(products))
}

// GetProductByID retrieves a single product by ID.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	product, err := pc.Repo.GetByID(ctx, id)
	if err == repositories.ErrNotFound {
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching product %s: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "Product fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, pc.resolve(*product))
}

// SearchProducts matches product names by case-insensitive substring.
func (pc *ProductController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	products, err := pc.Repo.SearchByName(ctx, name)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Product search failed")
		return
	}
	writeJSON(w, http.StatusOK, pc.resolveAll(products))
}

// saveUpload writes one uploaded image under the assets directory and
// returns its server-relative path. The stored name keeps the product
// name as a prefix but a random suffix guarantees uniqueness.
func (pc *ProductController) saveUpload(header *multipart.FileHeader, productName string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uploadFileName(productName, header.Filename)
	if err := os.MkdirAll(pc.AssetsDir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(pc.AssetsDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "assets/" + name, nil
}

func uploadFileName(productName, original string) string {
	base := strings.ReplaceAll(strings.TrimSpace(productName), " ", "-")
	if base == "" {
		base = "image"
	}
	return base + "-" + uuid.NewString() + filepath.Ext(original)
}

// resolve returns a copy of the product with image paths expanded to
// absolute URLs.
func (pc *ProductController) resolve(product models.Product) models.Product {
	base := strings.TrimSuffix(pc.AssetsBaseURL, "/")
	images := make([]string, len(product.Images))
	for i, img := range product.Images {
		images[i] = base + "/" + strings.TrimPrefix(strings.TrimPrefix(img, "assets/"), "/")
	}
	product.Images = images
	return product
}

func (pc *ProductController) resolveAll(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = pc.resolve(p)
	}
	return out
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseBool(s string) bool {
	v, _ := strconv.ParseBool(s)
	return v
}
