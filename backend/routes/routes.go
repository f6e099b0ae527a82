package routes

import (
	"github.com/gofiber/fiber/v2"

	"zenyoga/backend/config"
	"zenyoga/backend/controllers"
	"zenyoga/backend/middleware"
	"zenyoga/backend/store"
)

func SetupRoutes(app *fiber.App, st *store.Store, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Catalog routes
	classesController := controllers.NewClassesController(st, cfg)
	app.Get("/api/classes", authMiddleware, classesController.GetClasses)

	// Progress routes
	progressController := controllers.NewProgressController(st, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Put("/api/progress/:classId", authMiddleware, progressController.SetCompletion)

	// Admin routes for the catalog
	adminClasses := app.Group("/api/admin/classes", adminMiddleware)
	adminClasses.Post("/", classesController.CreateClass)
	adminClasses.Delete("/:id", classesController.DeleteClass)

	// Admin routes for the allow-list
	studentsController := controllers.NewStudentsController(st, cfg)
	adminStudents := app.Group("/api/admin/students", adminMiddleware)
	adminStudents.Get("/", studentsController.GetStudents)
	adminStudents.Post("/", studentsController.AuthorizeStudent)
	adminStudents.Delete("/:email", studentsController.RevokeStudent)

	// Backup export
	exportController := controllers.NewExportController(st, cfg)
	app.Get("/api/admin/export", adminMiddleware, exportController.ExportBackup)
}
