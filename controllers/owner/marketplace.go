package owner

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/models"
	"github.com/pet-paradise/backend/utils"
)

// ListProducts returns the pet store catalog with optional category filter
func ListProducts(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Product{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var products []models.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}
	return c.JSON(products)
}

// GetProduct returns a single product
func GetProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := db.DB.First(&product, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}

// ListTutorials returns pet-care tutorials, optionally by category
func ListTutorials(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Tutorial{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var tutorials []models.Tutorial
	if err := query.Find(&tutorials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tutorials",
			Error:   err.Error(),
		})
	}
	return c.JSON(tutorials)
}
