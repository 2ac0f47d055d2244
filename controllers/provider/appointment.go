package provider

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
)

// GetUpcomingAppointments returns upcoming appointments for the logged-in provider
func GetUpcomingAppointments(c *fiber.Ctx) error {
	prov, fiberErr := providerForUser(c)
	if prov == nil {
		return fiberErr
	}

	limit := 10
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	now := time.Now()
	startDate := now
	endDate := now.AddDate(0, 1, 0)

	dateFilter := c.Query("filter", "month")
	switch dateFilter {
	case "today":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1)
		startDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 23, 59, 59, 0, now.Location())
	case "week":
		endDate = now.AddDate(0, 0, 7)
	case "month":
		endDate = now.AddDate(0, 1, 0)
	}

	var appointments []models.Appointment
	query := db.DB.
		Preload("Pet").
		Preload("Owner").
		Where("provider_id = ?", prov.ID).
		Where("start_time >= ?", startDate).
		Where("start_time <= ?", endDate).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Order("start_time asc").
		Limit(limit)

	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
		"filter":       dateFilter,
		"start_date":   startDate.Format("2006-01-02"),
		"end_date":     endDate.Format("2006-01-02"),
	})
}

// GetAppointmentHistory returns past appointments for the logged-in provider
func GetAppointmentHistory(c *fiber.Ctx) error {
	prov, fiberErr := providerForUser(c)
	if prov == nil {
		return fiberErr
	}

	page := 1
	limit := 10
	if c.Query("page") != "" {
		if parsedPage := c.QueryInt("page"); parsedPage > 0 {
			page = parsedPage
		}
	}
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	offset := (page - 1) * limit

	var statuses []models.AppointmentStatus
	status := c.Query("status")
	switch models.AppointmentStatus(status) {
	case models.StatusCompleted:
		statuses = []models.AppointmentStatus{models.StatusCompleted}
	case models.StatusCancelled:
		statuses = []models.AppointmentStatus{models.StatusCancelled}
	case models.StatusDeclined:
		statuses = []models.AppointmentStatus{models.StatusDeclined}
	default:
		statuses = []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled, models.StatusDeclined}
	}

	now := time.Now()
	startDate := now.AddDate(0, -1, 0)
	endDate := now

	dateRange := c.Query("range", "month")
	switch dateRange {
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	case "all":
		startDate = time.Time{}
	}

	countQuery := db.DB.Model(&models.Appointment{}).
		Where("provider_id = ?", prov.ID).
		Where("status IN ?", statuses)
	if dateRange != "all" {
		countQuery = countQuery.Where("end_time >= ? AND end_time <= ?", startDate, endDate)
	}
	var total int64
	countQuery.Count(&total)

	query := db.DB.
		Preload("Pet").
		Preload("Owner").
		Where("provider_id = ?", prov.ID).
		Where("status IN ?", statuses)
	if dateRange != "all" {
		query = query.Where("end_time >= ? AND end_time <= ?", startDate, endDate)
	}

	var appointments []models.Appointment
	if err := query.
		Order("end_time desc").
		Offset(offset).
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"total":        total,
		"page":         page,
		"limit":        limit,
		"pages":        (total + int64(limit) - 1) / int64(limit),
		"range":        dateRange,
		"status":       status,
	})
}

// UpdateAppointmentStatus changes an appointment's status (decline/complete/confirm)
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	prov, fiberErr := providerForUser(c)
	if prov == nil {
		return fiberErr
	}

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	newStatus := models.AppointmentStatus(updateData.Status)
	if !newStatus.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid status %q", updateData.Status),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Pet").First(&appointment, appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	role, _ := c.Locals("role").(string)
	if appointment.ProviderID != prov.ID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own appointments",
		})
	}

	appointment.Status = newStatus
	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update appointment status",
		})
	}

	notifyStatusChange(&appointment, prov)

	return c.JSON(fiber.Map{
		"message":     "Appointment status updated successfully",
		"appointment": appointment,
	})
}

// notifyStatusChange mails the owner about the new status. Failures are
// logged only.
func notifyStatusChange(appointment *models.Appointment, prov *models.ServiceProvider) {
	var owner models.User
	if err := db.DB.First(&owner, appointment.OwnerID).Error; err != nil {
		log.Println("Failed to load owner for status email:", err)
		return
	}

	emailBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The status of your appointment with %s has changed.</p>
		<ul>
			<li><strong>Pet:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>New Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The Pet Paradise Team</p>
	`, owner.Name, prov.Name, appointment.Pet.Name, appointment.Service,
		appointment.StartTime.Format("2006-01-02 15:04:05"), appointment.Status)
	if err := utils.SendEmail(owner.Email, "Appointment Status Update", emailBody); err != nil {
		log.Println("Failed to send status update email:", err)
	}
}

// providerForUser loads the provider profile owned by the logged-in user.
// On failure it returns nil and the already-written response.
func providerForUser(c *fiber.Ctx) (*models.ServiceProvider, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var prov models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&prov).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No provider profile found for this account",
		})
	}
	return &prov, nil
}
