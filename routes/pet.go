package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/controllers"
	"github.com/pet-paradise/backend/middleware"
	"github.com/pet-paradise/backend/models"
)

// SetupPetRoutes configures all pet profile related routes
func SetupPetRoutes(app *fiber.App) {
	pets := app.Group("/pets", middleware.Protected(), middleware.RequireRole(models.RoleOwner))
	pets.Get("/", controllers.GetMyPets)
	pets.Post("/", controllers.CreatePet)
	pets.Get("/:id", controllers.GetPet)
	pets.Patch("/:id", controllers.UpdatePet)
	pets.Delete("/:id", controllers.DeletePet)

	// Profile sub-resources
	pets.Post("/:id/health-records", controllers.AddHealthRecord)
	pets.Post("/:id/weight-log", controllers.AddWeightEntry)
	pets.Post("/:id/documents", controllers.UploadPetDocument)
}
