package model

import "time"

const (
	AttendanceAbsent  = "absent"
	AttendancePresent = "present"
)

// AttendanceLog is the daily clock-in/clock-out record for one operator.
// The composite unique index guarantees at most one row per (operator, date).
// ClockIn/ClockOut are full timestamps, not times-of-day, so a shift crossing
// midnight still produces a positive duration.
type AttendanceLog struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	OperatorID uint       `json:"operator_id" gorm:"not null;uniqueIndex:idx_operator_date"`
	Date       string     `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_operator_date"` // YYYY-MM-DD
	ShiftID    *uint      `json:"shift_id"`
	ClockIn    *time.Time `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out"`
	TotalHours float64    `json:"total_hours"`
	Status     string     `json:"status" gorm:"type:varchar(20);default:absent"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Operator *Operator `json:"operator,omitempty" gorm:"foreignKey:OperatorID"`
	Shift    *Shift    `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}
