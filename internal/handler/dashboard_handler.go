package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/repository"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GetStats serves the aggregate snapshot the dashboard polls.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	date := time.Now().Format("2006-01-02")

	stats, err := h.repo.GetDashboardStats(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": stats})
}
