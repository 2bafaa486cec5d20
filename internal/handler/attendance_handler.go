package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/repository"
)

type AttendanceHandler struct {
	repo      repository.AttendanceRepository
	operators repository.OperatorRepository
	shifts    repository.ShiftRepository
}

func NewAttendanceHandler(
	repo repository.AttendanceRepository,
	operators repository.OperatorRepository,
	shifts repository.ShiftRepository,
) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, operators: operators, shifts: shifts}
}

type ClockInRequest struct {
	OperatorID uint `json:"operator_id" validate:"required"`
	ShiftID    uint `json:"shift_id" validate:"required"`
}

type ClockOutRequest struct {
	OperatorID uint `json:"operator_id" validate:"required"`
}

func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	var req ClockInRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.operators.GetByID(req.OperatorID); err != nil {
		return respondError(c, err)
	}
	if _, err := h.shifts.GetByID(req.ShiftID); err != nil {
		return respondError(c, err)
	}

	entry, err := h.repo.ClockIn(req.OperatorID, req.ShiftID, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "clocked in", "data": entry})
}

func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	var req ClockOutRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if _, err := h.operators.GetByID(req.OperatorID); err != nil {
		return respondError(c, err)
	}

	entry, err := h.repo.ClockOut(req.OperatorID, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "clocked out", "data": entry, "total_hours": entry.TotalHours})
}

func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	operatorID, _ := strconv.Atoi(c.Params("operator_id"))
	history, err := h.repo.GetHistory(uint(operatorID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": history})
}
