package owner

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
	"gorm.io/gorm"
)

// ListMeetups returns all community meetups, soonest first
func ListMeetups(c *fiber.Ctx) error {
	var meetups []models.Meetup
	if err := db.DB.Order("date ASC, time ASC").Find(&meetups).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch meetups",
			Error:   err.Error(),
		})
	}
	return c.JSON(meetups)
}

// CreateMeetup publishes a new community meetup
func CreateMeetup(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var meetup models.Meetup
	if err := c.BodyParser(&meetup); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if meetup.Title == "" || meetup.Location == "" || meetup.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title, location and date are required",
		})
	}

	meetup.OrganizerID = userID
	meetup.InterestedCount = 0
	if meetup.OrganizerName == "" {
		var user models.User
		if err := db.DB.First(&user, userID).Error; err == nil {
			meetup.OrganizerName = user.Name
		}
	}

	if err := db.DB.Create(&meetup).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create meetup",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(meetup)
}

// DeleteMeetup removes a meetup; only its organizer may do so
func DeleteMeetup(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var meetup models.Meetup
	if err := db.DB.First(&meetup, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Meetup not found",
			Error:   err.Error(),
		})
	}
	if meetup.OrganizerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete your own meetups",
		})
	}

	if err := db.DB.Delete(&meetup).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete meetup",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleMeetupInterest adjusts the interest counter by +1 or -1
func ToggleMeetupInterest(c *fiber.Ctx) error {
	var input struct {
		Interested bool `json:"interested"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var meetup models.Meetup
	if err := db.DB.First(&meetup, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Meetup not found",
			Error:   err.Error(),
		})
	}

	delta := 1
	if !input.Interested {
		delta = -1
	}
	// The counter never goes negative.
	err := db.DB.Model(&meetup).
		Update("interested_count", gorm.Expr("GREATEST(interested_count + ?, 0)", delta)).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update interest",
			Error:   err.Error(),
		})
	}

	db.DB.First(&meetup, meetup.ID)
	return c.JSON(meetup)
}
