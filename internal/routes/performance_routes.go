package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPerformanceRoutes(app *fiber.App, db *gorm.DB) {
	performanceRepo := repository.NewPerformanceRepository(db)
	stationRepo := repository.NewStationRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	hdl := handler.NewPerformanceHandler(performanceRepo, stationRepo, operatorRepo)

	api := app.Group("/api/performance")

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
}
