package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

type AssignmentHandler struct {
	repo      repository.AssignmentRepository
	shifts    repository.ShiftRepository
	operators repository.OperatorRepository
	stations  repository.StationRepository
}

func NewAssignmentHandler(
	repo repository.AssignmentRepository,
	shifts repository.ShiftRepository,
	operators repository.OperatorRepository,
	stations repository.StationRepository,
) *AssignmentHandler {
	return &AssignmentHandler{repo: repo, shifts: shifts, operators: operators, stations: stations}
}

type AssignRequest struct {
	ShiftID    uint    `json:"shift_id" validate:"required"`
	OperatorID uint    `json:"operator_id" validate:"required"`
	StationID  *uint   `json:"station_id"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Assign upserts the operator's assignment for the date (default today).
// Re-assigning moves the operator to the new station instead of creating a
// second row. Shift capacity is not enforced.
func (h *AssignmentHandler) Assign(c *fiber.Ctx) error {
	var req AssignRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.shifts.GetByID(req.ShiftID); err != nil {
		return respondError(c, err)
	}
	if _, err := h.operators.GetByID(req.OperatorID); err != nil {
		return respondError(c, err)
	}
	if req.StationID != nil {
		if _, err := h.stations.GetByID(*req.StationID); err != nil {
			return respondError(c, err)
		}
	}

	date := time.Now().Format("2006-01-02")
	if req.Date != nil {
		date = *req.Date
	}

	assignment := model.ShiftAssignment{
		ShiftID:      req.ShiftID,
		OperatorID:   req.OperatorID,
		StationID:    req.StationID,
		AssignedDate: date,
	}

	if err := h.repo.Assign(&assignment); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "operator assigned", "data": assignment})
}

func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "assignment removed"})
}

// GetByDate lists assignments for a date (default today), used by the
// dashboard's station board.
func (h *AssignmentHandler) GetByDate(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))
	assignments, err := h.repo.GetByDate(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": assignments})
}
