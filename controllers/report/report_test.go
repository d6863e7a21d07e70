package report_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/controllers/report"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/database"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/routes"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedData(db))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app
}

func postCitizen(t *testing.T, app *fiber.App, body map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/api/registry/citizen", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSitioSummaryAggregates(t *testing.T) {
	app := setupTestApp(t)

	postCitizen(t, app, map[string]interface{}{
		"first_name": "Juan", "last_name": "Dela Cruz", "sex": "Male",
		"date_of_birth": "1990-01-01", "sitio": "Sitio Proper",
		"is_registered_voter": true, "employment_status": "Employed",
	})
	postCitizen(t, app, map[string]interface{}{
		"first_name": "Maria", "last_name": "Santos", "sex": "Female",
		"date_of_birth": "1985-06-15", "sitio": "Sitio Proper",
	})
	postCitizen(t, app, map[string]interface{}{
		"first_name": "Pedro", "last_name": "Reyes", "sex": "Male",
		"date_of_birth": "1970-03-03", "sitio": "Sitio Nowhere",
	})

	req := httptest.NewRequest(fiber.MethodGet, "/api/report/sitio-summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []report.SitioSummaryRow `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	resp.Body.Close()

	byName := map[string]report.SitioSummaryRow{}
	for _, row := range envelope.Data {
		byName[row.Sitio] = row
	}

	proper, ok := byName["Sitio Proper"]
	require.True(t, ok)
	assert.Equal(t, int64(2), proper.Population)
	assert.Equal(t, int64(1), proper.Voters)
	assert.Equal(t, int64(1), proper.Employed)

	unassigned, ok := byName["Unassigned"]
	require.True(t, ok)
	assert.Equal(t, int64(1), unassigned.Population)
}

func TestCitizenExportProducesWorkbook(t *testing.T) {
	app := setupTestApp(t)

	postCitizen(t, app, map[string]interface{}{
		"first_name": "Juan", "last_name": "Dela Cruz", "sex": "Male",
		"date_of_birth": "1990-01-01", "sitio": "Sitio Proper",
	})

	req := httptest.NewRequest(fiber.MethodGet, "/api/report/citizen-export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	// xlsx files are zip archives.
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte{'P', 'K'}, body[:2])
}
