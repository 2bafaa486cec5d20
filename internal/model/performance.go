package model

import "time"

// StationPerformance is a historical efficiency snapshot. Rows are append-only
// and never updated after creation.
type StationPerformance struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	StationID            uint      `json:"station_id" gorm:"not null;index"`
	OperatorID           uint      `json:"operator_id" gorm:"not null;index"`
	Date                 string    `json:"date" gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	ShiftID              *uint     `json:"shift_id"`
	EfficiencyPercentage float64   `json:"efficiency_percentage"`
	UnitsProduced        int       `json:"units_produced"`
	TargetUnits          int       `json:"target_units"`
	DowntimeMinutes      int       `json:"downtime_minutes"`
	CreatedAt            time.Time `json:"created_at"`

	Station  *Station  `json:"station,omitempty" gorm:"foreignKey:StationID"`
	Operator *Operator `json:"operator,omitempty" gorm:"foreignKey:OperatorID"`
	Shift    *Shift    `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}
