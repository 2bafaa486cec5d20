package model

import "time"

const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
	SkillExpert       = "expert"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusOnBreak = "on_break"
)

// Operator is an employee tracked by the system. Status and LastActive are
// the most frequently mutated fields (clock-in/clock-out write them).
type Operator struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"type:varchar(100);unique;not null"`
	EmployeeID   *string    `json:"employee_id" gorm:"type:varchar(50);unique"`
	DepartmentID *uint      `json:"department_id"`
	SkillLevel   string     `json:"skill_level" gorm:"type:varchar(20);default:beginner"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:offline"`
	LastActive   *time.Time `json:"last_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}
