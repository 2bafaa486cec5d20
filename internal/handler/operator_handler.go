package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

type OperatorHandler struct {
	repo        repository.OperatorRepository
	assignments repository.AssignmentRepository
}

func NewOperatorHandler(repo repository.OperatorRepository, assignments repository.AssignmentRepository) *OperatorHandler {
	return &OperatorHandler{repo: repo, assignments: assignments}
}

type OperatorRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	EmployeeID   *string `json:"employee_id"`
	DepartmentID *uint   `json:"department_id"`
	SkillLevel   string  `json:"skill_level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Status       string  `json:"status" validate:"omitempty,oneof=online offline on_break"`
}

type operatorView struct {
	model.Operator
	TodayAssignment *model.ShiftAssignment `json:"today_assignment,omitempty"`
}

// GetAll lists operators with today's assignment joined in for the dashboard.
func (h *OperatorHandler) GetAll(c *fiber.Ctx) error {
	operators, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}

	today := time.Now().Format("2006-01-02")
	assignments, err := h.assignments.GetByDate(today)
	if err != nil {
		return respondError(c, err)
	}
	byOperator := make(map[uint]model.ShiftAssignment, len(assignments))
	for _, a := range assignments {
		byOperator[a.OperatorID] = a
	}

	views := make([]operatorView, 0, len(operators))
	for _, op := range operators {
		view := operatorView{Operator: op}
		if a, ok := byOperator[op.ID]; ok {
			a.Operator = nil
			view.TodayAssignment = &a
		}
		views = append(views, view)
	}

	return c.JSON(fiber.Map{"data": views})
}

func (h *OperatorHandler) Create(c *fiber.Ctx) error {
	var req OperatorRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	op := model.Operator{
		Name:         req.Name,
		Email:        req.Email,
		EmployeeID:   req.EmployeeID,
		DepartmentID: req.DepartmentID,
		SkillLevel:   req.SkillLevel,
		Status:       req.Status,
	}
	if op.SkillLevel == "" {
		op.SkillLevel = model.SkillBeginner
	}
	if op.Status == "" {
		op.Status = model.StatusOffline
	}

	if err := h.repo.Create(&op); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "operator created", "data": op})
}

func (h *OperatorHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req OperatorRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	op, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	op.Name = req.Name
	op.Email = req.Email
	op.EmployeeID = req.EmployeeID
	op.DepartmentID = req.DepartmentID
	if req.SkillLevel != "" {
		op.SkillLevel = req.SkillLevel
	}
	if req.Status != "" {
		op.Status = req.Status
	}
	op.Department = nil

	if err := h.repo.Update(op); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "operator updated", "data": op})
}

func (h *OperatorHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "operator deleted"})
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=online offline on_break"`
}

// SetStatus is the explicit status-set operation; clock-in/clock-out are the
// other two writers of operator status.
func (h *OperatorHandler) SetStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req StatusRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.repo.SetStatus(uint(id), req.Status, time.Now()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "status updated"})
}
