package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Meetup struct {
	gorm.Model
	OrganizerID     uint                        `json:"organizer_id"`
	OrganizerName   string                      `json:"organizer_name"`
	Title           string                      `json:"title"`
	Location        string                      `json:"location"`
	Date            string                      `json:"date"` // "2006-01-02"
	Time            string                      `json:"time"` // display string, e.g. "10:00 AM"
	Description     string                      `json:"description"`
	PetSpecies      datatypes.JSONSlice[string] `json:"pet_species"`
	InterestedCount int                         `json:"interested_count"`
}
