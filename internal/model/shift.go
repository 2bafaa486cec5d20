package model

import "time"

// Shift is a named time-bounded work period. StartTime/EndTime are
// times-of-day in "HH:MM" format. Capacity is informational only and is not
// enforced when assigning operators.
type Shift struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	StartTime    string    `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime      string    `json:"end_time" gorm:"type:varchar(5);not null"`
	StartDate    *string   `json:"start_date" gorm:"type:varchar(10)"`
	EndDate      *string   `json:"end_date" gorm:"type:varchar(10)"`
	DepartmentID *uint     `json:"department_id"`
	Capacity     int       `json:"capacity"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

// ShiftAssignment binds an operator to a shift (and optionally a station) for
// one date. The composite unique index guarantees at most one assignment per
// (shift, operator, date); re-assigning updates the station in place.
type ShiftAssignment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ShiftID      uint      `json:"shift_id" gorm:"not null;uniqueIndex:idx_shift_operator_date"`
	OperatorID   uint      `json:"operator_id" gorm:"not null;uniqueIndex:idx_shift_operator_date"`
	AssignedDate string    `json:"assigned_date" gorm:"type:varchar(10);not null;uniqueIndex:idx_shift_operator_date"` // YYYY-MM-DD
	StationID    *uint     `json:"station_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Shift    *Shift    `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
	Operator *Operator `json:"operator,omitempty" gorm:"foreignKey:OperatorID"`
	Station  *Station  `json:"station,omitempty" gorm:"foreignKey:StationID"`
}
