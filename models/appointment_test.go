package models

import "testing"

func TestAppointmentStatusValid(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{StatusDeclined, true},
		{AppointmentStatus(""), false},
		{AppointmentStatus("confirmed"), false},
		{AppointmentStatus("Rejected"), false},
	}
	for _, tc := range cases {
		if got := tc.status.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestAppointmentOccupies(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelled, false},
		{StatusDeclined, false},
	}
	for _, tc := range cases {
		a := Appointment{Status: tc.status}
		if got := a.Occupies(); got != tc.want {
			t.Errorf("Occupies() with status %q = %v, want %v", tc.status, got, tc.want)
		}
	}
}
