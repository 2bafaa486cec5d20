package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	hdl := handler.NewAttendanceHandler(attendanceRepo, operatorRepo, shiftRepo)

	api := app.Group("/api/attendance")

	api.Post("/clockin", hdl.ClockIn)
	api.Post("/clockout", hdl.ClockOut)
	api.Get("/history/:operator_id", hdl.GetHistory)
}
