package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/importer"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupImportRoutes(app *fiber.App, db *gorm.DB) {
	operatorRepo := repository.NewOperatorRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	hdl := handler.NewImportHandler(importer.New(operatorRepo, deptRepo))

	api := app.Group("/api/import")

	api.Post("/operators", hdl.ImportOperators)
}
