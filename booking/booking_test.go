package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/pet-paradise/backend/models"
)

func daycareProvider() *models.ServiceProvider {
	return &models.ServiceProvider{
		Name:         "Happy Tails Dog Daycare",
		Type:         models.ServiceDaycare,
		WorkStart:    "07:00",
		WorkEnd:      "19:00",
		SlotDuration: 60,
	}
}

func TestNewAppointment_SlotBased(t *testing.T) {
	req := Request{
		OwnerID:    1,
		PetID:      2,
		ProviderID: 3,
		Service:    "Annual Checkup",
		Date:       day(t, 2025, 6, 2),
		Slot:       "10:00",
	}

	appt, err := NewAppointment(req, testProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appt.Status != models.StatusConfirmed {
		t.Errorf("new appointments must be Confirmed, got %s", appt.Status)
	}
	if !appt.StartTime.Equal(at(t, 2025, 6, 2, 10, 0)) {
		t.Errorf("expected start 10:00, got %v", appt.StartTime)
	}
	if !appt.EndTime.Equal(at(t, 2025, 6, 2, 10, 30)) {
		t.Errorf("expected end = start + slot duration, got %v", appt.EndTime)
	}
	if appt.Reference == "" {
		t.Error("expected a booking reference to be assigned")
	}
}

func TestNewAppointment_MissingFields(t *testing.T) {
	provider := testProvider()
	date := day(t, 2025, 6, 2)

	cases := []struct {
		name string
		req  Request
	}{
		{"missing provider", Request{Service: "Checkup", Date: date, Slot: "10:00"}},
		{"missing service", Request{ProviderID: 3, Date: date, Slot: "10:00"}},
		{"missing date", Request{ProviderID: 3, Service: "Checkup", Slot: "10:00"}},
		{"missing slot", Request{ProviderID: 3, Service: "Checkup", Date: date}},
		{"malformed slot", Request{ProviderID: 3, Service: "Checkup", Date: date, Slot: "ten"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAppointment(tc.req, provider)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewAppointment_DaycareSingleDay(t *testing.T) {
	req := Request{
		OwnerID:    1,
		PetID:      2,
		ProviderID: 3,
		Service:    "Full Day Care",
		StartDate:  day(t, 2025, 6, 2),
	}

	appt, err := NewAppointment(req, daycareProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !appt.StartTime.Equal(at(t, 2025, 6, 2, 9, 0)) {
		t.Errorf("expected check-in 09:00 on start date, got %v", appt.StartTime)
	}
	if !appt.EndTime.Equal(at(t, 2025, 6, 2, 17, 0)) {
		t.Errorf("expected check-out 17:00 on same date, got %v", appt.EndTime)
	}
}

func TestNewAppointment_DaycareMultiDay(t *testing.T) {
	req := Request{
		OwnerID:    1,
		PetID:      2,
		ProviderID: 3,
		Service:    "Overnight Boarding",
		StartDate:  day(t, 2025, 6, 2),
		EndDate:    day(t, 2025, 6, 5),
	}

	appt, err := NewAppointment(req, daycareProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !appt.StartTime.Equal(at(t, 2025, 6, 2, 9, 0)) {
		t.Errorf("expected check-in 09:00 on start date, got %v", appt.StartTime)
	}
	if !appt.EndTime.Equal(at(t, 2025, 6, 5, 17, 0)) {
		t.Errorf("expected check-out 17:00 on end date, got %v", appt.EndTime)
	}
}

func TestNewAppointment_DaycareMissingStartDate(t *testing.T) {
	req := Request{ProviderID: 3, Service: "Full Day Care"}
	_, err := NewAppointment(req, daycareProvider())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDaycareRange_EndBeforeStartClamped(t *testing.T) {
	start := day(t, 2025, 6, 10)
	end := day(t, 2025, 6, 3)

	s, e := DaycareRange(start, end)
	if !s.Equal(at(t, 2025, 6, 10, 9, 0)) {
		t.Errorf("expected check-in on start date, got %v", s)
	}
	if !e.Equal(at(t, 2025, 6, 10, 17, 0)) {
		t.Errorf("expected end clamped to check-out on start date, got %v", e)
	}
}

func TestSlotRange_NonPositiveDuration(t *testing.T) {
	_, _, err := SlotRange(day(t, 2025, 6, 2), "10:00", 0)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

// Two bookings built from the same availability snapshot both succeed. The
// engine does not re-check the slot at creation time, so the second writer
// wins a slot that the first already took. This characterizes the current
// behavior; adding a conflict check would be a deliberate behavior change.
func TestNewAppointment_StaleSnapshotDoubleBooking(t *testing.T) {
	provider := testProvider()
	target := day(t, 2025, 6, 2)

	snapshot := []models.Appointment{}
	slots, err := AvailableSlots(provider, snapshot, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots[2] != "10:00" {
		t.Fatalf("expected 10:00 open in snapshot, got %v", slots[:3])
	}

	req := Request{OwnerID: 1, PetID: 1, ProviderID: 3, Service: "Checkup", Date: target, Slot: "10:00"}

	first, err := NewAppointment(req, provider)
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	req.OwnerID = 2
	second, err := NewAppointment(req, provider)
	if err != nil {
		t.Fatalf("second booking from the stale snapshot must also succeed, got %v", err)
	}

	if !first.StartTime.Equal(second.StartTime) {
		t.Fatal("expected both bookings to land on the same slot")
	}
	if first.Status != models.StatusConfirmed || second.Status != models.StatusConfirmed {
		t.Fatal("expected both bookings Confirmed")
	}

	// Once both are appended, the slot is reported occupied exactly once.
	store := []models.Appointment{first, second}
	after, err := AvailableSlots(provider, store, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range after {
		if s == "10:00" {
			t.Error("double-booked slot must no longer be offered")
		}
	}
	if len(after) != 15 {
		t.Errorf("expected 15 remaining slots, got %d", len(after))
	}
}

func TestNewAppointment_ValidationProducesNoRecord(t *testing.T) {
	store := []models.Appointment{}

	_, err := NewAppointment(Request{Service: "Checkup", Date: day(t, 2025, 6, 2), Slot: "10:00"}, testProvider())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(store) != 0 {
		t.Fatal("failed validation must not mutate the store")
	}

	slots, err := AvailableSlots(testProvider(), store, day(t, 2025, 6, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("expected all 16 slots still open, got %d", len(slots))
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	c := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	if !sameDay(a, b) {
		t.Error("expected same calendar day")
	}
	if sameDay(a, c) {
		t.Error("expected different calendar days")
	}
}
