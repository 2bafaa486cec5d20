package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"factory-floor-backend/internal/apperr"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check confirms store connectivity for the polling client.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return respondError(c, apperr.StoreUnavailable(err))
	}
	if err := sqlDB.PingContext(c.Context()); err != nil {
		return respondError(c, apperr.StoreUnavailable(err))
	}
	return c.JSON(fiber.Map{"status": "ok", "database": "up"})
}
