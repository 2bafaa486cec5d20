package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

type PerformanceHandler struct {
	repo      repository.PerformanceRepository
	stations  repository.StationRepository
	operators repository.OperatorRepository
}

func NewPerformanceHandler(
	repo repository.PerformanceRepository,
	stations repository.StationRepository,
	operators repository.OperatorRepository,
) *PerformanceHandler {
	return &PerformanceHandler{repo: repo, stations: stations, operators: operators}
}

type PerformanceRequest struct {
	StationID            uint    `json:"station_id" validate:"required"`
	OperatorID           uint    `json:"operator_id" validate:"required"`
	Date                 *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ShiftID              *uint   `json:"shift_id"`
	EfficiencyPercentage float64 `json:"efficiency_percentage" validate:"gte=0,lte=200"`
	UnitsProduced        int     `json:"units_produced" validate:"gte=0"`
	TargetUnits          int     `json:"target_units" validate:"gte=0"`
	DowntimeMinutes      int     `json:"downtime_minutes" validate:"gte=0"`
}

func (h *PerformanceHandler) Create(c *fiber.Ctx) error {
	var req PerformanceRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.stations.GetByID(req.StationID); err != nil {
		return respondError(c, err)
	}
	if _, err := h.operators.GetByID(req.OperatorID); err != nil {
		return respondError(c, err)
	}

	date := time.Now().Format("2006-01-02")
	if req.Date != nil {
		date = *req.Date
	}

	snapshot := model.StationPerformance{
		StationID:            req.StationID,
		OperatorID:           req.OperatorID,
		Date:                 date,
		ShiftID:              req.ShiftID,
		EfficiencyPercentage: req.EfficiencyPercentage,
		UnitsProduced:        req.UnitsProduced,
		TargetUnits:          req.TargetUnits,
		DowntimeMinutes:      req.DowntimeMinutes,
	}

	if err := h.repo.Create(&snapshot); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "performance recorded", "data": snapshot})
}

func (h *PerformanceHandler) GetAll(c *fiber.Ctx) error {
	if stationID, _ := strconv.Atoi(c.Query("station_id", "0")); stationID != 0 {
		snapshots, err := h.repo.GetByStation(uint(stationID))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": snapshots})
	}

	date := c.Query("date", time.Now().Format("2006-01-02"))
	snapshots, err := h.repo.GetByDate(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": snapshots})
}
