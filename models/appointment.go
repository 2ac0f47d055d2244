package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusDeclined  AppointmentStatus = "Declined"
)

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusDeclined:
		return true
	}
	return false
}

type Appointment struct {
	gorm.Model
	Reference     string            `json:"reference" gorm:"uniqueIndex"`
	OwnerID       uint              `json:"owner_id"`
	Owner         User              `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	PetID         uint              `json:"pet_id"`
	Pet           Pet               `json:"pet,omitempty" gorm:"foreignKey:PetID"`
	ProviderID    uint              `json:"provider_id"`
	Provider      ServiceProvider   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Service       string            `json:"service"`
	Status        AppointmentStatus `json:"status"`
	StartTime     time.Time         `json:"start_time"`
	EndTime       time.Time         `json:"end_time"`
	OwnerNotes    string            `json:"owner_notes,omitempty"`
	ProviderNotes string            `json:"provider_notes,omitempty"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusConfirmed
	}
	return nil
}

// Occupies reports whether this appointment claims its time slot.
// Cancelled and declined appointments free the slot up again.
func (a *Appointment) Occupies() bool {
	return a.Status != StatusCancelled && a.Status != StatusDeclined
}
