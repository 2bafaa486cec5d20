package handler

import (
	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

type DepartmentHandler struct {
	repo repository.DepartmentRepository
}

func NewDepartmentHandler(repo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

func (h *DepartmentHandler) GetAll(c *fiber.Ctx) error {
	depts, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": depts})
}

type DepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := validateBody(c, &req); err != nil {
		return respondError(c, err)
	}

	dept := model.Department{Name: req.Name, Description: req.Description}
	if err := h.repo.Create(&dept); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "department created", "data": dept})
}
