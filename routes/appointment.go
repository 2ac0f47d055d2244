package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/controllers"
	"github.com/pet-paradise/backend/controllers/owner"
	"github.com/pet-paradise/backend/middleware"
	"github.com/pet-paradise/backend/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/appointments", middleware.Protected())
	appointments.Get("/", middleware.RequireRole(models.RoleAdmin), controllers.GetAllAppointments)
	appointments.Get("/:id", controllers.GetAppointment)
	appointments.Patch("/:id/notes", controllers.UpdateAppointmentNotes)

	booking := app.Group("/owner/appointments", middleware.Protected(), middleware.RequireRole(models.RoleOwner))
	booking.Get("/", owner.GetMyAppointments)
	booking.Post("/", owner.CreateAppointment)
	booking.Patch("/:id/cancel", owner.CancelAppointment)
}
