package handler

import (
	"github.com/gofiber/fiber/v2"

	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/importer"
)

type ImportHandler struct {
	importer *importer.Importer
}

func NewImportHandler(imp *importer.Importer) *ImportHandler {
	return &ImportHandler{importer: imp}
}

// ImportOperators ingests a CSV upload with columns name, email, employee_id,
// department_name, skill_level. Row failures are reported per row and never
// abort the batch.
func (h *ImportHandler) ImportOperators(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperr.Validation("csv file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, apperr.Validation("unable to read uploaded file"))
	}
	defer file.Close()

	result, err := h.importer.ImportCSV(file)
	if err != nil {
		return respondError(c, apperr.Validation("unable to parse csv file"))
	}

	return c.JSON(fiber.Map{
		"message":  "import completed",
		"imported": result.Imported,
		"errors":   result.Errors,
	})
}
