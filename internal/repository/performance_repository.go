package repository

import (
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
)

// PerformanceRepository is append-only: snapshots are created and read, never
// updated.
type PerformanceRepository interface {
	Create(p *model.StationPerformance) error
	GetByStation(stationID uint) ([]model.StationPerformance, error)
	GetByDate(date string) ([]model.StationPerformance, error)
}

type performanceRepository struct {
	db *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &performanceRepository{db}
}

func (r *performanceRepository) Create(p *model.StationPerformance) error {
	return r.db.Create(p).Error
}

func (r *performanceRepository) GetByStation(stationID uint) ([]model.StationPerformance, error) {
	var snapshots []model.StationPerformance
	err := r.db.Preload("Operator").
		Where("station_id = ?", stationID).
		Order("date desc").
		Find(&snapshots).Error
	return snapshots, err
}

func (r *performanceRepository) GetByDate(date string) ([]model.StationPerformance, error) {
	var snapshots []model.StationPerformance
	err := r.db.Preload("Station").Preload("Operator").
		Where("date = ?", date).
		Find(&snapshots).Error
	return snapshots, err
}
