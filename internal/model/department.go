package model

import "time"

type Department struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"unique;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Lines     []ProductionLine `json:"lines,omitempty" gorm:"foreignKey:DepartmentID"`
	Operators []Operator       `json:"operators,omitempty" gorm:"foreignKey:DepartmentID"`
}

type ProductionLine struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	DepartmentID     *uint     `json:"department_id"`
	Capacity         int       `json:"capacity"`
	Status           string    `json:"status" gorm:"type:varchar(20);default:active"`
	TargetEfficiency float64   `json:"target_efficiency"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Stations   []Station   `json:"stations,omitempty" gorm:"foreignKey:LineID"`
}

// Station is a physical work position within a production line. The composite
// unique index prevents duplicate station definitions within a line.
type Station struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	Name                 string    `json:"name" gorm:"not null;uniqueIndex:idx_station_line_position"`
	LineID               uint      `json:"line_id" gorm:"not null;uniqueIndex:idx_station_line_position"`
	PositionOrder        int       `json:"position_order" gorm:"uniqueIndex:idx_station_line_position"`
	Status               string    `json:"status" gorm:"type:varchar(20);default:active"`
	EfficiencyPercentage float64   `json:"efficiency_percentage"`
	TargetEfficiency     float64   `json:"target_efficiency"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Line *ProductionLine `json:"line,omitempty" gorm:"foreignKey:LineID"`
}
