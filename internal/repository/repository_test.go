package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"factory-floor-backend/config"
	"factory-floor-backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// one connection, or every pooled conn gets its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createOperator(t *testing.T, db *gorm.DB, email string) *model.Operator {
	t.Helper()
	op := &model.Operator{
		Name:       "Test Operator",
		Email:      email,
		SkillLevel: model.SkillBeginner,
		Status:     model.StatusOffline,
	}
	require.NoError(t, db.Create(op).Error)
	return op
}

func createShift(t *testing.T, db *gorm.DB, name string) *model.Shift {
	t.Helper()
	shift := &model.Shift{
		Name:      name,
		StartTime: "06:00",
		EndTime:   "14:00",
		Capacity:  10,
		IsActive:  true,
	}
	require.NoError(t, db.Create(shift).Error)
	return shift
}

func createLineWithStations(t *testing.T, db *gorm.DB, name string, stations int) (*model.ProductionLine, []model.Station) {
	t.Helper()
	line := &model.ProductionLine{Name: name, Capacity: stations, Status: "active", TargetEfficiency: 90}
	require.NoError(t, db.Create(line).Error)

	created := make([]model.Station, 0, stations)
	for pos := 1; pos <= stations; pos++ {
		station := model.Station{
			Name:          name + " Station",
			LineID:        line.ID,
			PositionOrder: pos,
			Status:        "active",
		}
		require.NoError(t, db.Create(&station).Error)
		created = append(created, station)
	}
	return line, created
}
