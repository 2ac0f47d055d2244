package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
)

// GetAllAppointments returns every appointment; admin only
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Preload("Pet").Preload("Provider").Preload("Owner").
		Order("start_time DESC").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns a single appointment visible to its owner or provider
func GetAppointment(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var appointment models.Appointment
	if err := db.DB.Preload("Pet").Preload("Provider").Preload("Owner").
		First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if appointment.OwnerID != userID && !ownsProvider(userID, appointment.ProviderID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You are not a party to this appointment",
		})
	}
	return c.JSON(appointment)
}

// UpdateAppointmentNotes updates the caller's side of the appointment notes
func UpdateAppointmentNotes(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	switch {
	case appointment.OwnerID == userID:
		appointment.OwnerNotes = input.Notes
	case ownsProvider(userID, appointment.ProviderID):
		appointment.ProviderNotes = input.Notes
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You are not a party to this appointment",
		})
	}

	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update notes",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// ownsProvider reports whether the user owns the given provider profile.
func ownsProvider(userID, providerID uint) bool {
	var count int64
	db.DB.Model(&models.ServiceProvider{}).
		Where("id = ? AND user_id = ?", providerID, userID).
		Count(&count)
	return count > 0
}
