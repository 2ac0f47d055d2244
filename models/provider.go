package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceVet      ServiceType = "Vet"
	ServiceGrooming ServiceType = "Grooming"
	ServiceDaycare  ServiceType = "Daycare"
	ServiceTraining ServiceType = "Training"
	ServiceSpa      ServiceType = "Spa"
)

type ServiceLocation string

const (
	LocationInStore ServiceLocation = "In-Store Only"
	LocationAtHome  ServiceLocation = "At Home Only"
	LocationBoth    ServiceLocation = "In-Store & At Home"
)

type ServiceProvider struct {
	gorm.Model
	UserID           uint                        `json:"user_id"`
	User             User                        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name             string                      `json:"name"`
	Type             ServiceType                 `json:"type"`
	ServiceLocation  ServiceLocation             `json:"service_location,omitempty"`
	ServicesOffered  datatypes.JSONSlice[string] `json:"services_offered"`
	Location         string                      `json:"location"`
	Phone            string                      `json:"phone"`
	Email            string                      `json:"email"`
	Rating           float64                     `json:"rating"`
	Reviews          []Review                    `json:"reviews,omitempty" gorm:"foreignKey:ProviderID"`
	WorkStart        string                      `json:"work_start"` // "HH:MM" 24h
	WorkEnd          string                      `json:"work_end"`   // "HH:MM" 24h
	SlotDuration     int                         `json:"slot_duration"` // minutes
	About            string                      `json:"about"`
	Team             []TeamMember                `json:"team,omitempty" gorm:"foreignKey:ProviderID"`
	Gallery          datatypes.JSONSlice[string] `json:"gallery"`
	Amenities        datatypes.JSONSlice[string] `json:"amenities"`
	BusinessPolicies string                      `json:"business_policies"`
}

// RangeBased reports whether bookings for this provider span a date range
// rather than a single time slot.
func (p *ServiceProvider) RangeBased() bool {
	return p.Type == ServiceDaycare
}

type TeamMember struct {
	gorm.Model
	ProviderID uint   `json:"provider_id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	PhotoURL   string `json:"photo_url"`
}

type Review struct {
	gorm.Model
	ProviderID uint    `json:"provider_id"`
	AuthorID   uint    `json:"author_id"`
	Author     string  `json:"author"`
	Rating     float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment    string  `json:"comment"`
}

// BeforeCreate clamps the rating into the 1.0-5.0 range.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}

// HasExistingReview checks whether the author already reviewed this provider.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("author_id = ? AND provider_id = ? AND deleted_at IS NULL", r.AuthorID, r.ProviderID).
		Count(&count).Error
	return count > 0, err
}
