package owner

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/booking"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
)

// CreateAppointmentInput is the booking submission body. Slot-based providers
// send date+slot, daycare providers send start_date (+optional end_date).
type CreateAppointmentInput struct {
	ProviderID uint   `json:"provider_id"`
	PetID      uint   `json:"pet_id"`
	Service    string `json:"service"`
	Notes      string `json:"notes"`
	Date       string `json:"date"` // "YYYY-MM-DD"
	Slot       string `json:"slot"` // "HH:MM"
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// CreateAppointment books an appointment for the logged-in owner
func CreateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input CreateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var pet models.Pet
	if err := db.DB.First(&pet, input.PetID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
			Error:   err.Error(),
		})
	}
	if pet.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only book appointments for your own pets",
		})
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}

	req := booking.Request{
		OwnerID:    userID,
		PetID:      pet.ID,
		ProviderID: provider.ID,
		Service:    input.Service,
		OwnerNotes: input.Notes,
		Slot:       input.Slot,
	}
	var err error
	if req.Date, err = parseDate(input.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}
	if req.StartDate, err = parseDate(input.StartDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid start_date, expected YYYY-MM-DD",
		})
	}
	if req.EndDate, err = parseDate(input.EndDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid end_date, expected YYYY-MM-DD",
		})
	}

	appointment, err := booking.NewAppointment(req, &provider)
	if err != nil {
		return c.Status(utils.StatusForBookingError(err)).JSON(utils.ErrorResponse{
			Message: "Failed to book appointment",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	sendBookingEmails(&appointment, &pet, &provider)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetMyAppointments lists the owner's appointments, newest first
func GetMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Pet").Preload("Provider").
		Where("owner_id = ?", userID).
		Order("start_time DESC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// CancelAppointment sets the owner's appointment to Cancelled
func CancelAppointment(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if appointment.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only cancel your own appointments",
		})
	}

	appointment.Status = models.StatusCancelled
	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// sendBookingEmails notifies both parties. Mail failures are logged, not
// surfaced: the booking already exists.
func sendBookingEmails(appointment *models.Appointment, pet *models.Pet, provider *models.ServiceProvider) {
	var owner models.User
	if err := db.DB.First(&owner, appointment.OwnerID).Error; err != nil {
		log.Println("Failed to load owner for booking email:", err)
		return
	}

	emailBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been confirmed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Pet:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Thank you for choosing Pet Paradise!</p>
		<p>Best regards,</p>
		<p>The Pet Paradise Team</p>
	`, owner.Name, pet.Name, appointment.Service, provider.Name,
		appointment.StartTime.Format("2006-01-02 15:04:05"),
		appointment.EndTime.Format("2006-01-02 15:04:05"))
	if err := utils.SendEmail(owner.Email, "Appointment Confirmation", emailBody); err != nil {
		log.Println("Failed to send confirmation email to owner:", err)
	}

	if provider.Email == "" {
		return
	}
	emailBody = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new appointment scheduled.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Pet:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Client:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The Pet Paradise Team</p>
	`, provider.Name, pet.Name, appointment.Service, owner.Name,
		appointment.StartTime.Format("2006-01-02 15:04:05"),
		appointment.EndTime.Format("2006-01-02 15:04:05"))
	if err := utils.SendEmail(provider.Email, "New Appointment Scheduled", emailBody); err != nil {
		log.Println("Failed to send confirmation email to provider:", err)
	}
}
