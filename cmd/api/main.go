package main

import (
	"log"

	"factory-floor-backend/config"
	"factory-floor-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	config.ConnectDB()

	app := fiber.New()

	app.Use(cors.New())   // the dashboard polls from a different origin
	app.Use(logger.New()) // request logging

	routes.SetupOperatorRoutes(app, config.DB)
	routes.SetupShiftRoutes(app, config.DB)
	routes.SetupAssignmentRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupLineRoutes(app, config.DB)
	routes.SetupImportRoutes(app, config.DB)
	routes.SetupPerformanceRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	log.Printf("server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
