package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PetSpecies string

const (
	SpeciesDog     PetSpecies = "Dog"
	SpeciesCat     PetSpecies = "Cat"
	SpeciesRabbit  PetSpecies = "Rabbit"
	SpeciesBird    PetSpecies = "Bird"
	SpeciesFish    PetSpecies = "Fish"
	SpeciesHamster PetSpecies = "Hamster"
	SpeciesOther   PetSpecies = "Other"
)

type Pet struct {
	gorm.Model
	OwnerID         uint                            `json:"owner_id"`
	Owner           User                            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name            string                          `json:"name"`
	Species         PetSpecies                      `json:"species"`
	Breed           string                          `json:"breed"`
	BirthDate       time.Time                       `json:"birth_date"`
	Gender          string                          `json:"gender"`
	ProfilePhotoURL string                          `json:"profile_photo_url"`
	GalleryPhotos   datatypes.JSONSlice[string]     `json:"gallery_photos"`
	MicrochipID     string                          `json:"microchip_id,omitempty"`
	Height          float64                         `json:"height,omitempty"` // in cm
	Likes           string                          `json:"likes,omitempty"`
	Dislikes        string                          `json:"dislikes,omitempty"`
	FavoriteFood    string                          `json:"favorite_food,omitempty"`
	DietaryNotes    string                          `json:"dietary_notes,omitempty"`
	HealthRecords   []HealthRecord                  `json:"health_records,omitempty" gorm:"foreignKey:PetID"`
	Documents       []PetDocument                   `json:"documents,omitempty" gorm:"foreignKey:PetID"`
	WeightLog       []WeightEntry                   `json:"weight_log,omitempty" gorm:"foreignKey:PetID"`
}

// Age returns the pet's age in whole years.
func (p *Pet) Age() int {
	now := time.Now()
	age := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

type HealthRecordType string

const (
	RecordVaccination HealthRecordType = "Vaccination"
	RecordVetVisit    HealthRecordType = "Vet Visit"
	RecordMedication  HealthRecordType = "Medication"
	RecordAllergy     HealthRecordType = "Allergy"
)

type HealthRecord struct {
	gorm.Model
	PetID       uint             `json:"pet_id"`
	Type        HealthRecordType `json:"type"`
	Date        time.Time        `json:"date"`
	Title       string           `json:"title"`
	Details     string           `json:"details"`
	NextDueDate *time.Time       `json:"next_due_date,omitempty"`
}

type PetDocument struct {
	gorm.Model
	PetID      uint      `json:"pet_id"`
	Name       string    `json:"name"`
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	URL        string    `json:"url"`
	UploadDate time.Time `json:"upload_date"`
}

type WeightEntry struct {
	gorm.Model
	PetID  uint      `json:"pet_id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"` // in kg
}
