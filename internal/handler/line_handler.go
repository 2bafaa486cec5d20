package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

type LineHandler struct {
	repo        repository.LineRepository
	stations    repository.StationRepository
	assignments repository.AssignmentRepository
}

func NewLineHandler(
	repo repository.LineRepository,
	stations repository.StationRepository,
	assignments repository.AssignmentRepository,
) *LineHandler {
	return &LineHandler{repo: repo, stations: stations, assignments: assignments}
}

func (h *LineHandler) GetAll(c *fiber.Ctx) error {
	lines, err := h.repo.GetAllWithStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": lines})
}

type stationView struct {
	model.Station
	TodayOperator *model.Operator `json:"today_operator,omitempty"`
}

// GetStations lists stations (optionally filtered by line) with today's
// assigned operator joined in.
func (h *LineHandler) GetStations(c *fiber.Ctx) error {
	lineID, _ := strconv.Atoi(c.Query("line_id", "0"))
	return h.respondStations(c, uint(lineID))
}

// GetStationsByLine lists one line's stations in process order.
func (h *LineHandler) GetStationsByLine(c *fiber.Ctx) error {
	lineID, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.repo.GetByID(uint(lineID)); err != nil {
		return respondError(c, err)
	}
	return h.respondStations(c, uint(lineID))
}

func (h *LineHandler) respondStations(c *fiber.Ctx, lineID uint) error {
	stations, err := h.stations.GetAll(lineID)
	if err != nil {
		return respondError(c, err)
	}

	today := time.Now().Format("2006-01-02")
	assignments, err := h.assignments.GetByDate(today)
	if err != nil {
		return respondError(c, err)
	}
	byStation := make(map[uint]*model.Operator, len(assignments))
	for _, a := range assignments {
		if a.StationID != nil {
			byStation[*a.StationID] = a.Operator
		}
	}

	views := make([]stationView, 0, len(stations))
	for _, station := range stations {
		views = append(views, stationView{Station: station, TodayOperator: byStation[station.ID]})
	}
	return c.JSON(fiber.Map{"data": views})
}

type EfficiencyRequest struct {
	EfficiencyPercentage float64 `json:"efficiency_percentage" validate:"gte=0,lte=200"`
}

func (h *LineHandler) UpdateStationEfficiency(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req EfficiencyRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	station, err := h.stations.UpdateEfficiency(uint(id), req.EfficiencyPercentage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "efficiency updated", "data": station})
}
