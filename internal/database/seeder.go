package database

import (
	"fmt"
	"log"

	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
)

// SeedAll seeds the administrative entities: departments, production lines
// with their stations, and the default shift roster. Safe to run repeatedly.
func SeedAll(db *gorm.DB) {
	depts := []model.Department{
		{Name: "Production", Description: "Main production floor"},
		{Name: "Assembly", Description: "Final assembly and packaging"},
		{Name: "Quality Control", Description: "Inspection and testing"},
	}
	for i := range depts {
		db.FirstOrCreate(&depts[i], model.Department{Name: depts[i].Name})
	}

	production := depts[0]
	assembly := depts[1]

	lines := []model.ProductionLine{
		{Name: "Line A", DepartmentID: &production.ID, Capacity: 8, Status: "active", TargetEfficiency: 90},
		{Name: "Line B", DepartmentID: &production.ID, Capacity: 6, Status: "active", TargetEfficiency: 85},
		{Name: "Assembly Line 1", DepartmentID: &assembly.ID, Capacity: 10, Status: "active", TargetEfficiency: 88},
	}
	for i := range lines {
		db.FirstOrCreate(&lines[i], model.ProductionLine{Name: lines[i].Name})

		for pos := 1; pos <= 4; pos++ {
			station := model.Station{
				Name:             fmt.Sprintf("%s Station %d", lines[i].Name, pos),
				LineID:           lines[i].ID,
				PositionOrder:    pos,
				Status:           "active",
				TargetEfficiency: lines[i].TargetEfficiency,
			}
			db.FirstOrCreate(&station, model.Station{
				Name:          station.Name,
				LineID:        station.LineID,
				PositionOrder: station.PositionOrder,
			})
		}
	}

	shifts := []model.Shift{
		{Name: "Morning", StartTime: "06:00", EndTime: "14:00", DepartmentID: &production.ID, Capacity: 20, IsActive: true},
		{Name: "Evening", StartTime: "14:00", EndTime: "22:00", DepartmentID: &production.ID, Capacity: 20, IsActive: true},
		{Name: "Night", StartTime: "22:00", EndTime: "06:00", DepartmentID: &production.ID, Capacity: 12, IsActive: true},
	}
	for i := range shifts {
		db.FirstOrCreate(&shifts[i], model.Shift{Name: shifts[i].Name})
	}

	log.Println("seeding completed")
}
