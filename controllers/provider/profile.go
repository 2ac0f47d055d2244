package provider

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
	"gorm.io/gorm"
)

// GetProfile returns the logged-in provider's business profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var prov models.ServiceProvider
	if err := db.DB.Preload("Reviews").Preload("Team").
		Where("user_id = ?", userID).First(&prov).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No provider profile found for this account",
		})
	}
	return c.JSON(prov)
}

// CreateProfile registers a business profile for the logged-in provider
func CreateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var existing models.ServiceProvider
	err := db.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A provider profile already exists for this account",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing profile",
			Error:   err.Error(),
		})
	}

	var prov models.ServiceProvider
	if err := c.BodyParser(&prov); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if prov.Name == "" || prov.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and type are required",
		})
	}

	prov.UserID = userID
	prov.Rating = 0
	if prov.WorkStart == "" {
		prov.WorkStart = "09:00"
	}
	if prov.WorkEnd == "" {
		prov.WorkEnd = "17:00"
	}
	if prov.SlotDuration == 0 {
		prov.SlotDuration = 30
	}

	if err := db.DB.Create(&prov).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create provider profile",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(prov)
}

// UpdateProfile updates the provider's business profile and team
func UpdateProfile(c *fiber.Ctx) error {
	prov, fiberErr := providerForUser(c)
	if prov == nil {
		return fiberErr
	}

	var updated models.ServiceProvider
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	updated.ID = prov.ID
	updated.UserID = prov.UserID
	// Rating is derived from reviews, never set directly.
	updated.Rating = prov.Rating

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(prov).Updates(updated).Error; err != nil {
			return err
		}
		if updated.Team != nil {
			if err := tx.Where("provider_id = ?", prov.ID).Delete(&models.TeamMember{}).Error; err != nil {
				return err
			}
			for i := range updated.Team {
				updated.Team[i].ID = 0
				updated.Team[i].ProviderID = prov.ID
			}
			if len(updated.Team) > 0 {
				if err := tx.Create(&updated.Team).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider profile",
			Error:   err.Error(),
		})
	}

	db.DB.Preload("Team").First(prov, prov.ID)
	return c.JSON(prov)
}
