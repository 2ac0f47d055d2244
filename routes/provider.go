package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/controllers"
	providerctl "github.com/pet-paradise/backend/controllers/provider"
	"github.com/pet-paradise/backend/middleware"
	"github.com/pet-paradise/backend/models"
)

// SetupProviderRoutes configures the public provider directory and the
// provider dashboard routes
func SetupProviderRoutes(app *fiber.App) {
	// Public directory
	providers := app.Group("/providers")
	providers.Get("/", controllers.ListProviders)
	providers.Get("/:id", controllers.GetProvider)
	providers.Get("/:id/availability", controllers.GetProviderAvailability)
	providers.Post("/:id/reviews", middleware.Protected(), controllers.CreateReview)

	// Provider dashboard
	dashboard := app.Group("/provider", middleware.Protected(), middleware.RequireRole(models.RoleProvider))
	dashboard.Get("/profile", providerctl.GetProfile)
	dashboard.Post("/profile", providerctl.CreateProfile)
	dashboard.Patch("/profile", providerctl.UpdateProfile)
	dashboard.Get("/appointments/upcoming", providerctl.GetUpcomingAppointments)
	dashboard.Get("/appointments/history", providerctl.GetAppointmentHistory)
	dashboard.Patch("/appointments/:id/status", providerctl.UpdateAppointmentStatus)
	dashboard.Get("/clients", providerctl.GetClients)
	dashboard.Post("/clients", providerctl.AddClient)
}
