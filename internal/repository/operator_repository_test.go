package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"
)

func TestCreateDuplicateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperatorRepository(db)

	require.NoError(t, repo.Create(&model.Operator{Name: "First", Email: "dup@factory.test"}))

	err := repo.Create(&model.Operator{Name: "Second", Email: "dup@factory.test"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestDeleteOperatorCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperatorRepository(db)
	op := createOperator(t, db, "cascade@factory.test")
	shift := createShift(t, db, "Morning")

	require.NoError(t, db.Create(&model.ShiftAssignment{
		ShiftID: shift.ID, OperatorID: op.ID, AssignedDate: "2026-03-10",
	}).Error)
	require.NoError(t, db.Create(&model.AttendanceLog{
		OperatorID: op.ID, Date: "2026-03-10", Status: model.AttendancePresent,
	}).Error)

	require.NoError(t, repo.Delete(op.ID))

	var assignments, logs, operators int64
	db.Model(&model.ShiftAssignment{}).Where("operator_id = ?", op.ID).Count(&assignments)
	db.Model(&model.AttendanceLog{}).Where("operator_id = ?", op.ID).Count(&logs)
	db.Model(&model.Operator{}).Where("id = ?", op.ID).Count(&operators)
	assert.Equal(t, int64(0), assignments)
	assert.Equal(t, int64(0), logs)
	assert.Equal(t, int64(0), operators)
}

func TestDeleteOperatorNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperatorRepository(db)

	err := repo.Delete(9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpsertByEmailUpdatesInPlace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperatorRepository(db)

	empA := "EMP1"
	require.NoError(t, repo.UpsertByEmail(&model.Operator{
		Name: "Old Name", Email: "upsert@factory.test", EmployeeID: &empA, SkillLevel: model.SkillBeginner,
	}))

	empB := "EMP2"
	require.NoError(t, repo.UpsertByEmail(&model.Operator{
		Name: "New Name", Email: "upsert@factory.test", EmployeeID: &empB, SkillLevel: model.SkillAdvanced,
	}))

	var rows []model.Operator
	require.NoError(t, db.Where("email = ?", "upsert@factory.test").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "New Name", rows[0].Name)
	assert.Equal(t, model.SkillAdvanced, rows[0].SkillLevel)
	require.NotNil(t, rows[0].EmployeeID)
	assert.Equal(t, "EMP2", *rows[0].EmployeeID)
}

func TestSetStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperatorRepository(db)
	op := createOperator(t, db, "status@factory.test")

	require.NoError(t, repo.SetStatus(op.ID, model.StatusOnBreak, time.Now()))

	var reloaded model.Operator
	require.NoError(t, db.First(&reloaded, op.ID).Error)
	assert.Equal(t, model.StatusOnBreak, reloaded.Status)
	require.NotNil(t, reloaded.LastActive)

	err := repo.SetStatus(9999, model.StatusOnline, time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestOperatorCountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOperatorRepository(db)

	for _, email := range []string{"on1@factory.test", "on2@factory.test"} {
		op := createOperator(t, db, email)
		require.NoError(t, repo.SetStatus(op.ID, model.StatusOnline, time.Now()))
	}
	createOperator(t, db, "off@factory.test")

	counts, err := repo.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[model.StatusOnline])
	assert.Equal(t, int64(1), counts[model.StatusOffline])
	assert.Equal(t, int64(0), counts[model.StatusOnBreak])
}
