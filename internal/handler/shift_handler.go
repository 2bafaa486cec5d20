package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

type ShiftHandler struct {
	repo        repository.ShiftRepository
	assignments repository.AssignmentRepository
}

func NewShiftHandler(repo repository.ShiftRepository, assignments repository.AssignmentRepository) *ShiftHandler {
	return &ShiftHandler{repo: repo, assignments: assignments}
}

type ShiftRequest struct {
	Name         string  `json:"name" validate:"required"`
	StartTime    string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string  `json:"end_time" validate:"required,datetime=15:04"`
	StartDate    *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	DepartmentID *uint   `json:"department_id"`
	Capacity     int     `json:"capacity" validate:"gte=0"`
}

type shiftView struct {
	model.Shift
	AssignedToday int64 `json:"assigned_today"`
}

// GetAll lists shifts with today's assignment count joined in.
func (h *ShiftHandler) GetAll(c *fiber.Ctx) error {
	shifts, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}

	today := time.Now().Format("2006-01-02")
	views := make([]shiftView, 0, len(shifts))
	for _, shift := range shifts {
		count, err := h.assignments.CountByShiftAndDate(shift.ID, today)
		if err != nil {
			return respondError(c, err)
		}
		views = append(views, shiftView{Shift: shift, AssignedToday: count})
	}

	return c.JSON(fiber.Map{"data": views})
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var req ShiftRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	shift := model.Shift{
		Name:         req.Name,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DepartmentID: req.DepartmentID,
		Capacity:     req.Capacity,
		IsActive:     true,
	}

	if err := h.repo.Create(&shift); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "shift created", "data": shift})
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req ShiftRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	shift, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	shift.Name = req.Name
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.StartDate = req.StartDate
	shift.EndDate = req.EndDate
	shift.DepartmentID = req.DepartmentID
	shift.Capacity = req.Capacity

	if err := h.repo.Update(shift); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "shift updated", "data": shift})
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "shift deleted"})
}
