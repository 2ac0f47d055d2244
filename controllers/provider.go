package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/booking"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
)

// ListProviders returns the public provider directory with optional
// type filter, text search and pagination.
func ListProviders(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := db.DB.Model(&models.ServiceProvider{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to count providers",
			Error:   err.Error(),
		})
	}

	var providers []models.ServiceProvider
	if err := query.Order("rating DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"providers": providers,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

// GetProvider returns a provider's full public profile
func GetProvider(c *fiber.Ctx) error {
	var provider models.ServiceProvider
	if err := db.DB.Preload("Reviews").Preload("Team").
		First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(provider)
}

// GetProviderAvailability returns the open time slots of a provider on a date
func GetProviderAvailability(c *fiber.Ctx) error {
	var provider models.ServiceProvider
	if err := db.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}
	if provider.RangeBased() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "This provider takes date-range bookings, not time slots",
		})
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'date' is required (YYYY-MM-DD)",
		})
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}

	dayStart := date
	dayEnd := dayStart.AddDate(0, 0, 1)
	var appointments []models.Appointment
	if err := db.DB.Where("provider_id = ? AND start_time >= ? AND start_time < ?",
		provider.ID, dayStart, dayEnd).Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	slots, err := booking.AvailableSlots(&provider, appointments, date)
	if err != nil {
		return c.Status(utils.StatusForBookingError(err)).JSON(utils.ErrorResponse{
			Message: "Failed to compute availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"date":  dateStr,
		"slots": slots,
	})
}

// CreateReview posts a review for a provider and recomputes its rating
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}

	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	review.ProviderID = provider.ID
	review.AuthorID = userID
	if review.Author == "" {
		var user models.User
		if err := db.DB.First(&user, userID).Error; err == nil {
			review.Author = user.Name
		}
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing reviews",
			Error:   err.Error(),
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this provider",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}

	if err := recomputeRating(provider.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider rating",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func recomputeRating(providerID uint) error {
	var avg float64
	err := db.DB.Model(&models.Review{}).
		Where("provider_id = ? AND deleted_at IS NULL", providerID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error
	if err != nil {
		return err
	}
	return db.DB.Model(&models.ServiceProvider{}).
		Where("id = ?", providerID).
		Update("rating", avg).Error
}
