package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"factory-floor-backend/config"
	"factory-floor-backend/internal/model"
	"factory-floor-backend/internal/repository"
)

func setupAttendanceApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// one connection, or every pooled conn gets its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	hdl := NewAttendanceHandler(
		repository.NewAttendanceRepository(db),
		repository.NewOperatorRepository(db),
		repository.NewShiftRepository(db),
	)

	app := fiber.New()
	app.Post("/api/attendance/clockin", hdl.ClockIn)
	app.Post("/api/attendance/clockout", hdl.ClockOut)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestClockInClockOutOverHTTP(t *testing.T) {
	app, db := setupAttendanceApp(t)

	op := model.Operator{Name: "Jane", Email: "jane@factory.test"}
	require.NoError(t, db.Create(&op).Error)
	shift := model.Shift{Name: "Morning", StartTime: "06:00", EndTime: "14:00", IsActive: true}
	require.NoError(t, db.Create(&shift).Error)

	resp := postJSON(t, app, "/api/attendance/clockin", fiber.Map{"operator_id": op.ID, "shift_id": shift.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// second clock-in on the same day conflicts
	resp = postJSON(t, app, "/api/attendance/clockin", fiber.Map{"operator_id": op.ID, "shift_id": shift.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, app, "/api/attendance/clockout", fiber.Map{"operator_id": op.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// no open clock-in left to close
	resp = postJSON(t, app, "/api/attendance/clockout", fiber.Map{"operator_id": op.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClockInUnknownOperator(t *testing.T) {
	app, db := setupAttendanceApp(t)
	shift := model.Shift{Name: "Morning", StartTime: "06:00", EndTime: "14:00", IsActive: true}
	require.NoError(t, db.Create(&shift).Error)

	resp := postJSON(t, app, "/api/attendance/clockin", fiber.Map{"operator_id": 9999, "shift_id": shift.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClockInMissingFields(t *testing.T) {
	app, _ := setupAttendanceApp(t)

	resp := postJSON(t, app, "/api/attendance/clockin", fiber.Map{"operator_id": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
