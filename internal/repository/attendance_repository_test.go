package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"
)

var baseTime = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func TestClockInCreatesAttendanceLog(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	op := createOperator(t, db, "clockin@factory.test")
	shift := createShift(t, db, "Morning")

	entry, err := repo.ClockIn(op.ID, shift.ID, baseTime)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", entry.Date)
	assert.Equal(t, model.AttendancePresent, entry.Status)
	require.NotNil(t, entry.ClockIn)
	assert.True(t, entry.ClockIn.Equal(baseTime))
	assert.Nil(t, entry.ClockOut)

	var reloaded model.Operator
	require.NoError(t, db.First(&reloaded, op.ID).Error)
	assert.Equal(t, model.StatusOnline, reloaded.Status)
	require.NotNil(t, reloaded.LastActive)
}

func TestClockInTwiceSameDayRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	op := createOperator(t, db, "double@factory.test")
	shift := createShift(t, db, "Morning")

	_, err := repo.ClockIn(op.ID, shift.ID, baseTime)
	require.NoError(t, err)

	_, err = repo.ClockIn(op.ID, shift.ID, baseTime.Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, apperr.KindAlreadyClockedIn, apperr.KindOf(err))

	var count int64
	db.Model(&model.AttendanceLog{}).Where("operator_id = ?", op.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestClockInFillsPreSeededAbsentRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	op := createOperator(t, db, "absent@factory.test")
	shift := createShift(t, db, "Morning")

	seeded := model.AttendanceLog{
		OperatorID: op.ID,
		Date:       baseTime.Format("2006-01-02"),
		Status:     model.AttendanceAbsent,
	}
	require.NoError(t, db.Create(&seeded).Error)

	entry, err := repo.ClockIn(op.ID, shift.ID, baseTime)
	require.NoError(t, err)

	// the absent record was filled in place, not duplicated
	assert.Equal(t, seeded.ID, entry.ID)
	assert.Equal(t, model.AttendancePresent, entry.Status)
	require.NotNil(t, entry.ClockIn)

	var count int64
	db.Model(&model.AttendanceLog{}).Where("operator_id = ?", op.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	op := createOperator(t, db, "noclockin@factory.test")

	_, err := repo.ClockOut(op.ID, baseTime)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNoActiveClockIn, apperr.KindOf(err))
}

func TestClockInClockOutRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	op := createOperator(t, db, "roundtrip@factory.test")
	shift := createShift(t, db, "Morning")

	_, err := repo.ClockIn(op.ID, shift.ID, baseTime)
	require.NoError(t, err)

	out := baseTime.Add(8*time.Hour + 15*time.Minute)
	entry, err := repo.ClockOut(op.ID, out)
	require.NoError(t, err)

	assert.InDelta(t, 8.25, entry.TotalHours, 0.001)
	require.NotNil(t, entry.ClockOut)
	assert.GreaterOrEqual(t, entry.TotalHours, 0.0)

	var count int64
	db.Model(&model.AttendanceLog{}).Where("operator_id = ?", op.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var reloaded model.Operator
	require.NoError(t, db.First(&reloaded, op.ID).Error)
	assert.Equal(t, model.StatusOffline, reloaded.Status)
}

func TestClockOutTwiceRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	op := createOperator(t, db, "twice-out@factory.test")
	shift := createShift(t, db, "Morning")

	_, err := repo.ClockIn(op.ID, shift.ID, baseTime)
	require.NoError(t, err)
	_, err = repo.ClockOut(op.ID, baseTime.Add(8*time.Hour))
	require.NoError(t, err)

	_, err = repo.ClockOut(op.ID, baseTime.Add(9*time.Hour))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNoActiveClockIn, apperr.KindOf(err))
}

func TestClockOutClosesShiftCrossingMidnight(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	op := createOperator(t, db, "nightshift@factory.test")
	shift := createShift(t, db, "Night")

	in := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	_, err := repo.ClockIn(op.ID, shift.ID, in)
	require.NoError(t, err)

	out := time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC)
	entry, err := repo.ClockOut(op.ID, out)
	require.NoError(t, err)

	// the open record from the previous day is closed with a positive duration
	assert.Equal(t, "2026-03-10", entry.Date)
	assert.InDelta(t, 8.0, entry.TotalHours, 0.001)
}

func TestAttendanceCountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	shift := createShift(t, db, "Morning")

	for i, email := range []string{"a@factory.test", "b@factory.test"} {
		op := createOperator(t, db, email)
		_, err := repo.ClockIn(op.ID, shift.ID, baseTime.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	absentee := createOperator(t, db, "c@factory.test")
	require.NoError(t, db.Create(&model.AttendanceLog{
		OperatorID: absentee.ID,
		Date:       baseTime.Format("2006-01-02"),
		Status:     model.AttendanceAbsent,
	}).Error)

	counts, err := repo.CountByStatus(baseTime.Format("2006-01-02"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[model.AttendancePresent])
	assert.Equal(t, int64(1), counts[model.AttendanceAbsent])
}
