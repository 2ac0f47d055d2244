package db

import (
	"fmt"
	"log"

	"github.com/pet-paradise/backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Pet{},
		&models.HealthRecord{},
		&models.PetDocument{},
		&models.WeightEntry{},
		&models.ServiceProvider{},
		&models.TeamMember{},
		&models.Review{},
		&models.Appointment{},
		&models.Product{},
		&models.Meetup{},
		&models.Tutorial{},
		&models.ClientProviderLink{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
