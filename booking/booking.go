package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pet-paradise/backend/models"
)

// Daycare stays are anchored to fixed check-in and check-out times rather
// than the provider's slot grid.
const (
	daycareCheckInHour  = 9
	daycareCheckOutHour = 17
)

// Request carries the fields of a booking submission. Slot-based providers
// use Date and Slot; daycare providers use StartDate and EndDate.
type Request struct {
	OwnerID    uint
	PetID      uint
	ProviderID uint
	Service    string
	OwnerNotes string

	Date time.Time
	Slot string // "HH:MM"

	StartDate time.Time
	EndDate   time.Time
}

// NewAppointment validates a booking request against the provider and builds
// the appointment record. New appointments are created Confirmed; there is no
// provider-approval step. Availability is NOT re-checked here: the caller
// computed it from a snapshot, and two requests built from the same snapshot
// will both succeed (last-write-wins).
func NewAppointment(req Request, provider *models.ServiceProvider) (models.Appointment, error) {
	if provider == nil {
		return models.Appointment{}, fmt.Errorf("%w: provider", ErrNotFound)
	}
	if req.ProviderID == 0 {
		return models.Appointment{}, fmt.Errorf("%w: provider is required", ErrValidation)
	}
	if req.Service == "" {
		return models.Appointment{}, fmt.Errorf("%w: service is required", ErrValidation)
	}

	var start, end time.Time
	if provider.RangeBased() {
		if req.StartDate.IsZero() {
			return models.Appointment{}, fmt.Errorf("%w: start date is required", ErrValidation)
		}
		start, end = DaycareRange(req.StartDate, req.EndDate)
	} else {
		if req.Date.IsZero() || req.Slot == "" {
			return models.Appointment{}, fmt.Errorf("%w: date and time slot are required", ErrValidation)
		}
		var err error
		start, end, err = SlotRange(req.Date, req.Slot, provider.SlotDuration)
		if err != nil {
			return models.Appointment{}, err
		}
	}

	return models.Appointment{
		Reference:  uuid.NewString(),
		OwnerID:    req.OwnerID,
		PetID:      req.PetID,
		ProviderID: req.ProviderID,
		Service:    req.Service,
		Status:     models.StatusConfirmed,
		StartTime:  start,
		EndTime:    end,
		OwnerNotes: req.OwnerNotes,
	}, nil
}

// SlotRange combines a calendar day and a "HH:MM" slot into the appointment
// time range, ending slotDuration minutes after the start.
func SlotRange(date time.Time, slot string, slotDuration int) (time.Time, time.Time, error) {
	if slotDuration <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidConfiguration, slotDuration)
	}
	t, err := time.Parse(slotLayout, slot)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: time slot %q: %v", ErrValidation, slot, err)
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
	return start, start.Add(time.Duration(slotDuration) * time.Minute), nil
}

// DaycareRange builds the stay range for a daycare booking: check-in at
// 09:00 on the start date, check-out at 17:00 on the end date. A zero end
// date means a single-day stay. An end before the start is clamped to
// check-out on the start date.
func DaycareRange(startDate, endDate time.Time) (time.Time, time.Time) {
	if endDate.IsZero() {
		endDate = startDate
	}
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), daycareCheckInHour, 0, 0, 0, startDate.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), daycareCheckOutHour, 0, 0, 0, startDate.Location())
	if end.Before(start) {
		end = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), daycareCheckOutHour, 0, 0, 0, startDate.Location())
	}
	return start, end
}
