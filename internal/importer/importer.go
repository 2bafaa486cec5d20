// Package importer ingests operator records from a CSV source. Each row is
// processed independently: a bad row is recorded as an error and never aborts
// the rest of the batch.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

// Row is one operator record from the tabular source, all fields textual.
type Row struct {
	Name           string
	Email          string
	EmployeeID     string
	DepartmentName string
	SkillLevel     string
}

// Result reports how many rows were imported plus an ordered list of
// human-readable errors for the rows that were skipped or failed.
type Result struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

type Importer struct {
	operators   repository.OperatorRepository
	departments repository.DepartmentRepository
}

func New(operators repository.OperatorRepository, departments repository.DepartmentRepository) *Importer {
	return &Importer{operators: operators, departments: departments}
}

// ImportCSV reads rows with columns name, email, employee_id, department_name,
// skill_level. A leading header row is detected and skipped.
func (im *Importer) ImportCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse csv: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		rows = append(rows, rowFromRecord(record))
	}
	return im.ImportRows(rows), nil
}

// ImportRows upserts each row keyed by email. Rows with a blank name or email
// are skipped with an error; an unresolved department name leaves the
// department reference empty (not an error). Re-importing the same rows
// updates existing operators instead of duplicating them.
func (im *Importer) ImportRows(rows []Row) Result {
	result := Result{Errors: []string{}}

	for i, row := range rows {
		rowNum := i + 1

		name := strings.TrimSpace(row.Name)
		email := strings.TrimSpace(row.Email)
		if name == "" || email == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d: name and email are required", rowNum))
			continue
		}

		op := model.Operator{
			Name:       name,
			Email:      email,
			SkillLevel: normalizeSkill(row.SkillLevel),
			Status:     model.StatusOffline,
		}

		if employeeID := strings.TrimSpace(row.EmployeeID); employeeID != "" {
			op.EmployeeID = &employeeID
		}

		if deptName := strings.TrimSpace(row.DepartmentName); deptName != "" {
			if dept, err := im.departments.FindByName(deptName); err == nil {
				op.DepartmentID = &dept.ID
			}
		}

		if err := im.operators.UpsertByEmail(&op); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d (%s): %s", rowNum, email, err.Error()))
			continue
		}
		result.Imported++
	}

	return result
}

func rowFromRecord(record []string) Row {
	padded := make([]string, 5)
	copy(padded, record)
	return Row{
		Name:           padded[0],
		Email:          padded[1],
		EmployeeID:     padded[2],
		DepartmentName: padded[3],
		SkillLevel:     padded[4],
	}
}

func isHeader(record []string) bool {
	if len(record) < 2 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[1]), "email")
}

func normalizeSkill(skill string) string {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		return model.SkillBeginner
	}
	return skill
}
