package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLineRoutes(app *fiber.App, db *gorm.DB) {
	lineRepo := repository.NewLineRepository(db)
	stationRepo := repository.NewStationRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)

	lineHdl := handler.NewLineHandler(lineRepo, stationRepo, assignmentRepo)
	deptHdl := handler.NewDepartmentHandler(deptRepo)

	app.Group("/api/departments").
		Get("/", deptHdl.GetAll).
		Post("/", deptHdl.Create)

	lines := app.Group("/api/lines")
	lines.Get("/", lineHdl.GetAll)
	lines.Get("/:id/stations", lineHdl.GetStationsByLine)

	stations := app.Group("/api/stations")
	stations.Get("/", lineHdl.GetStations)
	stations.Put("/:id/efficiency", lineHdl.UpdateStationEfficiency)
}
