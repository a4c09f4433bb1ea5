package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"storefront/controllers"
	"storefront/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, categoryController *controllers.CategoryController) {
	// Product routes
	product := router.PathPrefix("/product").Subrouter()
	product.HandleFunc("/createProduct", productController.CreateProduct).Methods("POST")
	product.HandleFunc("/getProductByCatID/{CateID}", productController.GetProductsByCategory).Methods("GET")
	product.HandleFunc("/getProductByID/{id}", productController.GetProductByID).Methods("GET")
	product.HandleFunc("/getAllProducts", productController.GetAllProducts).Methods("GET")
	product.HandleFunc("/getAllProductsIsFeature", productController.GetFeaturedProducts).Methods("GET")
	product.HandleFunc("/searchProduct", productController.SearchProducts).Methods("GET")

	// Category routes
	category := router.PathPrefix("/category").Subrouter()
	category.HandleFunc("/createCategory", categoryController.CreateCategory).Methods("POST")
	category.HandleFunc("/getAllCategories", categoryController.GetAllCategories).Methods("GET")

	// Public user routes
	user := router.PathPrefix("/user").Subrouter()
	user.HandleFunc("/registerUser", userController.Register).Methods("POST")
	user.HandleFunc("/loginUser", userController.Login).Methods("POST")

	// Protected user routes
	protected := router.PathPrefix("/user").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/updateProfile", userController.UpdateProfile).Methods("PUT")

	// Uploaded images are served straight from the assets directory.
	router.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir(productController.AssetsDir))))
}
