package repository

import (
	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
)

type StationRepository interface {
	GetAll(lineID uint) ([]model.Station, error)
	GetByID(id uint) (*model.Station, error)
	Create(station *model.Station) error
	UpdateEfficiency(id uint, efficiency float64) (*model.Station, error)
}

type stationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) StationRepository {
	return &stationRepository{db}
}

// GetAll lists stations in process order; lineID 0 means all lines.
func (r *stationRepository) GetAll(lineID uint) ([]model.Station, error) {
	var stations []model.Station
	query := r.db.Preload("Line").Order("line_id asc").Order("position_order asc")
	if lineID != 0 {
		query = query.Where("line_id = ?", lineID)
	}
	err := query.Find(&stations).Error
	return stations, err
}

func (r *stationRepository) GetByID(id uint) (*model.Station, error) {
	var station model.Station
	if err := r.db.First(&station, id).Error; err != nil {
		return nil, apperr.FromDB(err, "station not found", "")
	}
	return &station, nil
}

func (r *stationRepository) Create(station *model.Station) error {
	return apperr.FromDB(r.db.Create(station).Error,
		"", "a station with this name and position already exists on the line")
}

func (r *stationRepository) UpdateEfficiency(id uint, efficiency float64) (*model.Station, error) {
	station, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(station).Update("efficiency_percentage", efficiency).Error; err != nil {
		return nil, apperr.FromDB(err, "station not found", "")
	}
	return station, nil
}
