package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOperatorRoutes(app *fiber.App, db *gorm.DB) {
	operatorRepo := repository.NewOperatorRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	hdl := handler.NewOperatorHandler(operatorRepo, assignmentRepo)

	api := app.Group("/api/operators")

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Put("/:id/status", hdl.SetStatus)
}
