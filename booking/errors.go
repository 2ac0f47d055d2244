package booking

import "errors"

var (
	// ErrValidation marks booking requests with missing or malformed fields.
	ErrValidation = errors.New("invalid booking request")

	// ErrInvalidConfiguration marks providers whose working hours or slot
	// duration cannot produce a schedule.
	ErrInvalidConfiguration = errors.New("invalid provider configuration")

	// ErrNotFound marks operations on appointments or providers that do not exist.
	ErrNotFound = errors.New("not found")
)
