package repository

import (
	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
)

// LineSummary is a production line row with its station aggregates joined in.
type LineSummary struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	DepartmentID     *uint   `json:"department_id"`
	Capacity         int     `json:"capacity"`
	Status           string  `json:"status"`
	TargetEfficiency float64 `json:"target_efficiency"`
	StationCount     int64   `json:"station_count"`
	AvgEfficiency    float64 `json:"avg_efficiency"`
}

type LineRepository interface {
	GetAllWithStats() ([]LineSummary, error)
	GetByID(id uint) (*model.ProductionLine, error)
	Create(line *model.ProductionLine) error
}

type lineRepository struct {
	db *gorm.DB
}

func NewLineRepository(db *gorm.DB) LineRepository {
	return &lineRepository{db}
}

func (r *lineRepository) GetAllWithStats() ([]LineSummary, error) {
	var rows []LineSummary
	err := r.db.Table("production_lines").
		Select("production_lines.id, production_lines.name, production_lines.department_id, " +
			"production_lines.capacity, production_lines.status, production_lines.target_efficiency, " +
			"COUNT(stations.id) AS station_count, " +
			"COALESCE(AVG(stations.efficiency_percentage), 0) AS avg_efficiency").
		Joins("LEFT JOIN stations ON stations.line_id = production_lines.id").
		Group("production_lines.id, production_lines.name, production_lines.department_id, " +
			"production_lines.capacity, production_lines.status, production_lines.target_efficiency").
		Order("production_lines.name asc").
		Scan(&rows).Error
	return rows, err
}

func (r *lineRepository) GetByID(id uint) (*model.ProductionLine, error) {
	var line model.ProductionLine
	if err := r.db.Preload("Stations").First(&line, id).Error; err != nil {
		return nil, apperr.FromDB(err, "production line not found", "")
	}
	return &line, nil
}

func (r *lineRepository) Create(line *model.ProductionLine) error {
	return apperr.FromDB(r.db.Create(line).Error, "", "production line already exists")
}
