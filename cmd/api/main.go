package main

import (
	"log"
	"os"

	"hostel-listing-portal/internal/config"
	"hostel-listing-portal/internal/database"
	"hostel-listing-portal/internal/handlers"
	"hostel-listing-portal/internal/imagehost"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set variables in the environment
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", configPath, err)
	}

	db, err := database.NewDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("Database connected and schema ready")

	images, err := imagehost.FromConfig(cfg.ImageHost)
	if err != nil {
		log.Fatalf("Failed to initialize image host %q: %v", cfg.ImageHost.Provider, err)
	}
	if images == nil {
		log.Println("Warning: no image host configured; upload endpoints will fail until one is set")
	} else {
		log.Printf("Image host: %s", cfg.ImageHost.Provider)
	}

	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handlers.NewRouter(handlers.RouterConfig{
		Server:    cfg.Server,
		Branches:  db,
		Gallery:   db,
		Enquiries: db,
		Images:    images,
	})

	log.Printf("Server starting on port %s (env: %s)", cfg.Server.Port, cfg.Server.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
