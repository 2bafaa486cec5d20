package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShiftRoutes(app *fiber.App, db *gorm.DB) {
	shiftRepo := repository.NewShiftRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	hdl := handler.NewShiftHandler(shiftRepo, assignmentRepo)

	api := app.Group("/api/shifts")

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
