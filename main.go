// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"

	"storefront/config"
	"storefront/controllers"
	"storefront/repositories"
	"storefront/routes"
	"storefront/utils"
)

func main() {
	// Load .env and defaults
	config.Load()

	// Set the JWT secret key
	secret := viper.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	utils.JwtKey = []byte(secret)

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	database := viper.GetString("MONGO_DB")
	if err := utils.EnsureUserIndexes(client, database); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	// Initialize EmailService (nil when unconfigured)
	emailService := utils.NewEmailService()

	// Initialize repositories
	productRepo := repositories.NewMongoProductRepository(client, database)
	userRepo := repositories.NewMongoUserRepository(client, database)
	categoryRepo := repositories.NewMongoCategoryRepository(client, database)

	// Initialize controllers
	productController := controllers.NewProductController(
		productRepo,
		viper.GetString("ASSETS_DIR"),
		viper.GetString("ASSETS_BASE_URL"),
	)
	userController := controllers.NewUserController(userRepo, emailService)
	categoryController := controllers.NewCategoryController(categoryRepo, productController)

	// Set up the router and register routes
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, categoryController)

	// Start the server
	port := viper.GetString("PORT")
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
