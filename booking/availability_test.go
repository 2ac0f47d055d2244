package booking

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/pet-paradise/backend/models"
)

func testProvider() *models.ServiceProvider {
	return &models.ServiceProvider{
		Name:         "Oakwood Animal Hospital",
		Type:         models.ServiceVet,
		WorkStart:    "09:00",
		WorkEnd:      "17:00",
		SlotDuration: 30,
	}
}

func day(t *testing.T, year int, month time.Month, d int) time.Time {
	t.Helper()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(t *testing.T, year int, month time.Month, d, hour, min int) time.Time {
	t.Helper()
	return time.Date(year, month, d, hour, min, 0, 0, time.UTC)
}

func TestAvailableSlots_FullDay(t *testing.T) {
	slots, err := AvailableSlots(testProvider(), nil, day(t, 2025, 6, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots for 09:00-17:00 at 30min, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Errorf("expected last slot 16:30, got %s", slots[len(slots)-1])
	}
	for _, s := range slots {
		if s == "17:00" {
			t.Error("closing time must not be emitted as a slot")
		}
	}
}

func TestAvailableSlots_ExcludesBookedSlot(t *testing.T) {
	target := day(t, 2025, 6, 2)
	appointments := []models.Appointment{
		{Status: models.StatusConfirmed, StartTime: at(t, 2025, 6, 2, 10, 0)},
	}

	slots, err := AvailableSlots(testProvider(), appointments, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 15 {
		t.Fatalf("expected 15 slots with one booked, got %d", len(slots))
	}
	for _, s := range slots {
		if s == "10:00" {
			t.Error("booked slot 10:00 must be excluded")
		}
	}
}

func TestAvailableSlots_CancelledAndDeclinedDoNotOccupy(t *testing.T) {
	target := day(t, 2025, 6, 2)

	for _, status := range []models.AppointmentStatus{models.StatusCancelled, models.StatusDeclined} {
		appointments := []models.Appointment{
			{Status: status, StartTime: at(t, 2025, 6, 2, 10, 0)},
		}
		slots, err := AvailableSlots(testProvider(), appointments, target)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found := false
		for _, s := range slots {
			if s == "10:00" {
				found = true
			}
		}
		if !found {
			t.Errorf("slot held by %s appointment should be available again", status)
		}
	}
}

func TestAvailableSlots_OtherDayDoesNotOccupy(t *testing.T) {
	target := day(t, 2025, 6, 2)
	appointments := []models.Appointment{
		{Status: models.StatusConfirmed, StartTime: at(t, 2025, 6, 3, 10, 0)},
	}

	slots, err := AvailableSlots(testProvider(), appointments, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("appointment on another day must not occupy slots, got %d slots", len(slots))
	}
}

func TestAvailableSlots_PendingOccupies(t *testing.T) {
	target := day(t, 2025, 6, 2)
	appointments := []models.Appointment{
		{Status: models.StatusPending, StartTime: at(t, 2025, 6, 2, 9, 30)},
	}

	slots, err := AvailableSlots(testProvider(), appointments, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if s == "09:30" {
			t.Error("pending appointment must occupy its slot")
		}
	}
}

func TestAvailableSlots_TrailingPartialSlotDropped(t *testing.T) {
	provider := testProvider()
	provider.WorkEnd = "17:15"

	slots, err := AvailableSlots(provider, nil, day(t, 2025, 6, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 17:00 starts before 17:15, so it is still emitted even though the
	// slot runs past closing; nothing after it is.
	if slots[len(slots)-1] != "17:00" {
		t.Errorf("expected last slot 17:00, got %s", slots[len(slots)-1])
	}
}

func TestAvailableSlots_DegenerateWorkingHours(t *testing.T) {
	provider := testProvider()
	provider.WorkStart = "09:00"
	provider.WorkEnd = "09:00"

	slots, err := AvailableSlots(provider, nil, day(t, 2025, 6, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("start == end must yield no slots, got %v", slots)
	}

	provider.WorkStart = "17:00"
	provider.WorkEnd = "09:00"
	slots, err = AvailableSlots(provider, nil, day(t, 2025, 6, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("start after end must yield no slots, got %v", slots)
	}
}

func TestAvailableSlots_NonPositiveSlotDuration(t *testing.T) {
	for _, d := range []int{0, -30} {
		provider := testProvider()
		provider.SlotDuration = d

		_, err := AvailableSlots(provider, nil, day(t, 2025, 6, 2))
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("slot duration %d: expected ErrInvalidConfiguration, got %v", d, err)
		}
	}
}

func TestAvailableSlots_MalformedWorkingHours(t *testing.T) {
	provider := testProvider()
	provider.WorkStart = "nine"

	_, err := AvailableSlots(provider, nil, day(t, 2025, 6, 2))
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestAvailableSlots_ZeroDate(t *testing.T) {
	slots, err := AvailableSlots(testProvider(), nil, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("missing date must yield no slots, got %v", slots)
	}
}

func TestAvailableSlots_NilProvider(t *testing.T) {
	_, err := AvailableSlots(nil, nil, day(t, 2025, 6, 2))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAvailableSlots_UnevenDuration(t *testing.T) {
	provider := testProvider()
	provider.WorkStart = "10:00"
	provider.WorkEnd = "16:00"
	provider.SlotDuration = 45

	slots, err := AvailableSlots(provider, nil, day(t, 2025, 6, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10:00", "10:45", "11:30", "12:15", "13:00", "13:45", "14:30", "15:15"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}
