package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/controllers/owner"
	"github.com/pet-paradise/backend/middleware"
	"github.com/pet-paradise/backend/models"
)

// SetupOwnerRoutes configures AI assistant, community and store routes
func SetupOwnerRoutes(app *fiber.App) {
	// AI assistant, scoped to the caller's own pets
	ai := app.Group("/ai", middleware.Protected(), middleware.RequireRole(models.RoleOwner))
	ai.Get("/pets/:id/care-plan", owner.GetCarePlan)
	ai.Post("/pets/:id/triage", owner.TriageSymptoms)
	ai.Post("/resources", owner.SearchResources)

	// Community meetups
	meetups := app.Group("/meetups", middleware.Protected())
	meetups.Get("/", owner.ListMeetups)
	meetups.Post("/", owner.CreateMeetup)
	meetups.Delete("/:id", owner.DeleteMeetup)
	meetups.Post("/:id/interest", owner.ToggleMeetupInterest)

	// Pet store and tutorials are browsable by any logged-in user
	store := app.Group("/store", middleware.Protected())
	store.Get("/products", owner.ListProducts)
	store.Get("/products/:id", owner.GetProduct)
	store.Get("/tutorials", owner.ListTutorials)
}
