package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"zenyoga/backend/config"
	"zenyoga/backend/routes"
	"zenyoga/backend/store"
	"zenyoga/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Connect the remote store; nil when REMOTE_ENDPOINT / REMOTE_ACCESS_KEY
	// are not set, in which case the portal runs on the local fallback store.
	remote, err := store.NewRemote(cfg)
	if err != nil {
		log.Fatalf("Error connecting remote store: %v", err)
	}
	var fallback *store.Fallback
	if remote == nil {
		logger.Println("remote store not configured, running on local fallback store")
		fallback, err = store.OpenFallback(cfg.FallbackDBPath)
		if err != nil {
			log.Fatalf("Error opening fallback store: %v", err)
		}
		defer fallback.Close()
	}
	st := store.New(remote, fallback, cfg.AdminEmail, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(utils.RequestLogger(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
