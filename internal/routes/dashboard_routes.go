package routes

import (
	"factory-floor-backend/internal/handler"
	"factory-floor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	app.Get("/api/dashboard", hdl.GetStats)
	app.Get("/api/health", handler.NewHealthHandler(db).Check)
}
