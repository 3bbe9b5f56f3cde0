package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/config"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	cfg := config.NewConfig()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&log.JSONFormatter{})
	}

	supabaseClient := config.NewSupabaseClient(cfg)

	router := gin.Default()
	routes.SetupRoutes(router, supabaseClient, cfg)

	log.Infof("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
