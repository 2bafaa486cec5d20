package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAssignmentRoutes(app *fiber.App, db *gorm.DB) {
	assignmentRepo := repository.NewAssignmentRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	stationRepo := repository.NewStationRepository(db)
	hdl := handler.NewAssignmentHandler(assignmentRepo, shiftRepo, operatorRepo, stationRepo)

	api := app.Group("/api/assignments")

	api.Get("/", hdl.GetByDate)
	api.Post("/", hdl.Assign)
	api.Delete("/:id", hdl.Delete)
}
