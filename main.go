package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/pet-paradise/backend/cron"
	"github.com/pet-paradise/backend/db"
	"github.com/pet-paradise/backend/gemini"
	"github.com/pet-paradise/backend/redis"
	"github.com/pet-paradise/backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.Seed()
	redis.InitRedis()
	gemini.Init()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Pet Paradise API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupPetRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupOwnerRoutes(app)
	routes.SetupEvalsRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
