package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pet-paradise/backend/booking"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// StatusForBookingError maps engine errors to HTTP status codes.
func StatusForBookingError(err error) int {
	switch {
	case errors.Is(err, booking.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, booking.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, booking.ErrInvalidConfiguration):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
