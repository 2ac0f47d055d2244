package owner

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/gemini"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
)

// GetCarePlan generates an AI care plan for one of the owner's pets
func GetCarePlan(c *fiber.Ctx) error {
	pet, fiberErr := aiPet(c)
	if pet == nil {
		return fiberErr
	}

	plan := gemini.CarePlan(c.Context(), pet)
	return c.JSON(fiber.Map{
		"pet_id": pet.ID,
		"plan":   plan,
	})
}

// TriageSymptoms runs an AI symptom triage for one of the owner's pets
func TriageSymptoms(c *fiber.Ctx) error {
	pet, fiberErr := aiPet(c)
	if pet == nil {
		return fiberErr
	}

	var input struct {
		Symptoms string `json:"symptoms"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Symptoms == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Symptoms description is required",
		})
	}

	advice := gemini.SymptomTriage(c.Context(), pet, input.Symptoms)
	return c.JSON(fiber.Map{
		"pet_id": pet.ID,
		"advice": advice,
	})
}

// SearchResources answers a pet-care question with grounded web sources
func SearchResources(c *fiber.Ctx) error {
	var input struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	return c.JSON(gemini.ResourceInfo(c.Context(), input.Query))
}

// aiPet loads the pet from the :id param and checks ownership.
func aiPet(c *fiber.Ctx) (*models.Pet, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var pet models.Pet
	if err := db.DB.Preload("HealthRecords").Preload("WeightLog").
		First(&pet, c.Params("id")).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pet not found",
		})
	}
	if pet.OwnerID != userID {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only use AI features for your own pets",
		})
	}
	return &pet, nil
}
