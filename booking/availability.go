package booking

import (
	"fmt"
	"time"

	"github.com/pet-paradise/backend/models"
)

const slotLayout = "15:04"

// AvailableSlots returns the open slot start times ("HH:MM", ascending) for
// a provider on the given calendar day. Appointments on other days and
// appointments that were cancelled or declined do not occupy slots. The walk
// starts at the provider's opening time and steps by the slot duration; a
// slot is emitted only if it starts strictly before closing time, so a
// trailing partial slot is dropped.
//
// The engine never touches the database: callers load the provider's
// appointments and pass them in.
func AvailableSlots(provider *models.ServiceProvider, appointments []models.Appointment, date time.Time) ([]string, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: provider", ErrNotFound)
	}
	if provider.SlotDuration <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidConfiguration, provider.SlotDuration)
	}
	if date.IsZero() {
		return []string{}, nil
	}

	start, err := time.Parse(slotLayout, provider.WorkStart)
	if err != nil {
		return nil, fmt.Errorf("%w: working hours start %q: %v", ErrInvalidConfiguration, provider.WorkStart, err)
	}
	end, err := time.Parse(slotLayout, provider.WorkEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: working hours end %q: %v", ErrInvalidConfiguration, provider.WorkEnd, err)
	}

	booked := occupiedSlots(appointments, date)

	cursor := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, date.Location())
	closing := time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), 0, 0, date.Location())

	slots := []string{}
	for cursor.Before(closing) {
		slot := cursor.Format(slotLayout)
		if _, taken := booked[slot]; !taken {
			slots = append(slots, slot)
		}
		cursor = cursor.Add(time.Duration(provider.SlotDuration) * time.Minute)
	}
	return slots, nil
}

// occupiedSlots collects the start times already claimed on the given day.
func occupiedSlots(appointments []models.Appointment, date time.Time) map[string]struct{} {
	occupied := make(map[string]struct{})
	for i := range appointments {
		a := &appointments[i]
		if !a.Occupies() {
			continue
		}
		if !sameDay(a.StartTime, date) {
			continue
		}
		occupied[a.StartTime.Format(slotLayout)] = struct{}{}
	}
	return occupied
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
