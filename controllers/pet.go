package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
	"gorm.io/gorm"
)

// GetMyPets returns all pets of the logged-in owner
func GetMyPets(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var pets []models.Pet
	if err := db.DB.Preload("HealthRecords").Preload("WeightLog").
		Where("owner_id = ?", userID).Find(&pets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch pets",
			Error:   err.Error(),
		})
	}
	return c.JSON(pets)
}

// GetPet returns a pet by ID with its full profile
func GetPet(c *fiber.Ctx) error {
	id := c.Params("id")
	var pet models.Pet
	if err := db.DB.Preload("HealthRecords").Preload("Documents").Preload("WeightLog").
		First(&pet, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(pet)
}

// CreatePet registers a new pet for the logged-in owner
func CreatePet(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var pet models.Pet
	if err := c.BodyParser(&pet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if pet.Name == "" || pet.Species == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and species are required",
		})
	}

	pet.OwnerID = userID
	// New pets start with empty records; the profile photo seeds the gallery.
	pet.HealthRecords = nil
	pet.Documents = nil
	pet.WeightLog = nil
	if pet.ProfilePhotoURL != "" {
		pet.GalleryPhotos = append(pet.GalleryPhotos, pet.ProfilePhotoURL)
	}

	if err := db.DB.Create(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create pet",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(pet)
}

// UpdatePet replaces the editable fields of a pet
func UpdatePet(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)

	var pet models.Pet
	if err := db.DB.First(&pet, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
			Error:   err.Error(),
		})
	}
	if pet.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own pets",
		})
	}

	var updated models.Pet
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	updated.ID = pet.ID
	updated.OwnerID = pet.OwnerID
	if err := db.DB.Model(&pet).Updates(updated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update pet",
			Error:   err.Error(),
		})
	}
	return c.JSON(pet)
}

// DeletePet removes a pet and cascade-deletes its appointments
func DeletePet(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)

	var pet models.Pet
	if err := db.DB.First(&pet, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
			Error:   err.Error(),
		})
	}
	if pet.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete your own pets",
		})
	}

	// Appointments for this pet go with it to keep the store consistent.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", pet.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pet).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete pet",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddHealthRecord appends a health record to a pet
func AddHealthRecord(c *fiber.Ctx) error {
	pet, fiberErr := ownedPet(c)
	if pet == nil {
		return fiberErr
	}

	var record models.HealthRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if record.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	record.PetID = pet.ID
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	if err := db.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add health record",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// AddWeightEntry appends an entry to a pet's weight log
func AddWeightEntry(c *fiber.Ctx) error {
	pet, fiberErr := ownedPet(c)
	if pet == nil {
		return fiberErr
	}

	var entry models.WeightEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if entry.Weight <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Weight must be positive",
		})
	}

	entry.PetID = pet.ID
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add weight entry",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UploadPetDocument stores an uploaded file in Cloudinary and attaches it to the pet
func UploadPetDocument(c *fiber.Ctx) error {
	pet, fiberErr := ownedPet(c)
	if pet == nil {
		return fiberErr
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to read uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("pet_%d_%s", pet.ID, uuid.NewString())
	url, err := utils.UploadToCloudinary(file, publicID, "pet-documents")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload document",
			Error:   err.Error(),
		})
	}

	doc := models.PetDocument{
		PetID:      pet.ID,
		Name:       c.FormValue("name", fileHeader.Filename),
		FileName:   fileHeader.Filename,
		MimeType:   fileHeader.Header.Get("Content-Type"),
		URL:        url,
		UploadDate: time.Now(),
	}
	if err := db.DB.Create(&doc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save document",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ownedPet loads the pet from the :id param and checks it belongs to the
// logged-in user. On failure it returns nil and the already-written response.
func ownedPet(c *fiber.Ctx) (*models.Pet, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var pet models.Pet
	if err := db.DB.First(&pet, c.Params("id")).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pet not found",
		})
	}
	if pet.OwnerID != userID {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only modify your own pets",
		})
	}
	return &pet, nil
}
