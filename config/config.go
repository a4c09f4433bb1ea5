package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the optional .env file and registers defaults for every
// knob the application uses. Values are read through viper, so plain
// environment variables always win over the defaults below.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	viper.SetDefault("PORT", "9000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "ecommerce")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ASSETS_DIR", "assets")
	viper.SetDefault("ASSETS_BASE_URL", "http://localhost:9000/assets")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("EMAIL_SENDER", "")
	viper.AutomaticEnv()
}
