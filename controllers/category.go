package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"storefront/models"
	"storefront/repositories"
)

// CategoryController handles category-related requests. Category
// images follow the same upload and URL-resolution rules as product
// images, so the controller shares the ProductController's asset
// settings.
type CategoryController struct {
	Repo   repositories.CategoryRepository
	Assets *ProductController
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(repo repositories.CategoryRepository, assets *ProductController) *CategoryController {
	return &CategoryController{
		Repo:   repo,
		Assets: assets,
	}
}

// CreateCategory handles the multipart category creation form.
func (cc *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	category := models.Category{
		Name:   r.FormValue("name"),
		Images: []string{},
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			name, err := cc.Assets.saveUpload(header, category.Name)
			if err != nil {
				log.Printf("Error saving uploaded image: %v", err)
				writeMessage(w, http.StatusInternalServerError, "Failed to create Category")
				return
			}
			category.Images = append(category.Images, name)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := cc.Repo.Create(ctx, &category); err != nil {
		log.Printf("Error creating category: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create Category")
		return
	}

	writeJSON(w, http.StatusOK, "Category created successfully at "+cc.Assets.AssetsBaseURL)
}

// GetAllCategories retrieves all categories.
func (cc *CategoryController) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categories, err := cc.Repo.GetAll(ctx)
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Categories not found")
		return
	}

	out := make([]models.Category, len(categories))
	for i, c := range categories {
		resolved := c
		resolved.Images = cc.Assets.resolve(models.Product{Images: c.Images}).Images
		out[i] = resolved
	}
	writeJSON(w, http.StatusOK, out)
}
