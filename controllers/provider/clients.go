package provider

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
	"gorm.io/gorm"
)

// GetClients returns the provider's client roster: every owner who has
// booked with them, plus owners added to the roster by hand.
func GetClients(c *fiber.Ctx) error {
	prov, fiberErr := providerForUser(c)
	if prov == nil {
		return fiberErr
	}

	var ownerIDs []uint
	if err := db.DB.Model(&models.Appointment{}).
		Distinct("owner_id").
		Where("provider_id = ?", prov.ID).
		Pluck("owner_id", &ownerIDs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}

	var linkedIDs []uint
	if err := db.DB.Model(&models.ClientProviderLink{}).
		Where("provider_id = ?", prov.ID).
		Pluck("owner_id", &linkedIDs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch client links",
			Error:   err.Error(),
		})
	}

	seen := make(map[uint]bool, len(ownerIDs)+len(linkedIDs))
	all := make([]uint, 0, len(ownerIDs)+len(linkedIDs))
	for _, id := range append(ownerIDs, linkedIDs...) {
		if !seen[id] {
			seen[id] = true
			all = append(all, id)
		}
	}

	var clients []models.User
	if len(all) > 0 {
		if err := db.DB.Preload("Pets").Where("id IN ?", all).
			Order("name ASC").Find(&clients).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch client profiles",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"clients": clients,
		"count":   len(clients),
	})
}

// AddClient links an owner to the provider's roster by email
func AddClient(c *fiber.Ctx) error {
	prov, fiberErr := providerForUser(c)
	if prov == nil {
		return fiberErr
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email is required",
		})
	}

	var owner models.User
	if err := db.DB.Where("email = ?", input.Email).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No user found with that email",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to look up user",
			Error:   err.Error(),
		})
	}

	link := models.ClientProviderLink{
		ProviderID: prov.ID,
		OwnerID:    owner.ID,
	}
	// Re-adding an existing client is a no-op.
	var existing models.ClientProviderLink
	err := db.DB.Where("provider_id = ? AND owner_id = ?", prov.ID, owner.ID).
		First(&existing).Error
	if err == nil {
		return c.JSON(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check client roster",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Create(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add client",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}
