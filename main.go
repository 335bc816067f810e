package main

import (
	"log"

	"github.com/bnbcollege/feeportal/config"
	"github.com/bnbcollege/feeportal/controllers"
	"github.com/bnbcollege/feeportal/routes"
	"github.com/bnbcollege/feeportal/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database (one-time schema migration, idempotent)
	config.InitDB()

	// Seed the default department admin account
	if err := controllers.CreateDefaultDepartment(); err != nil {
		utils.LogError("Failed to create default department account: %v", err)
		log.Fatal("Failed to create default department account:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	port := cfg.Port
	if port == "" {
		port = utils.DefaultPort
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
