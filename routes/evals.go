package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/controllers"
	"github.com/pet-paradise/backend/middleware"
	"github.com/pet-paradise/backend/models"
)

// SetupEvalsRoutes configures the quality dashboard routes
func SetupEvalsRoutes(app *fiber.App) {
	evals := app.Group("/evals", middleware.Protected(), middleware.RequireRole(models.RoleEvaluator))
	evals.Get("/", controllers.GetEvalsDashboard)
}
