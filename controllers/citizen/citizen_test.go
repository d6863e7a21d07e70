package citizen_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/database"
	citizenModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/citizen"
	householdModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/household"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/routes"
	citizenTypes "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types/citizen"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

type createEnvelope struct {
	Message string `json:"message"`
	Data    struct {
		CtzUUID   string `json:"ctz_uuid"`
		BatchCode int    `json:"batch_code"`
	} `json:"data"`
}

type listEnvelope struct {
	Message string                     `json:"message"`
	Data    []citizenTypes.CitizenView `json:"data"`
}

type viewEnvelope struct {
	Message string                   `json:"message"`
	Data    citizenTypes.CitizenView `json:"data"`
}

type validationEnvelope struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func minimalCitizen(first, last, sex string) map[string]interface{} {
	return map[string]interface{}{
		"first_name":    first,
		"last_name":     last,
		"sex":           sex,
		"date_of_birth": "1990-01-01",
	}
}

func TestCreateCitizenMinimalAppliesDefaults(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", minimalCitizen("Juan", "Dela Cruz", "Male"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created createEnvelope
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.Data.CtzUUID)
	assert.Equal(t, time.Now().Year(), created.Data.BatchCode/10000)

	resp = doJSON(t, app, fiber.MethodGet, "/api/registry/citizen", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list listEnvelope
	decodeBody(t, resp, &list)
	require.Len(t, list.Data, 1)

	row := list.Data[0]
	assert.Equal(t, "Juan Dela Cruz", row.FullName)
	assert.Empty(t, row.ContactNumbers)
	assert.Equal(t, "N/A", row.Email)
	assert.Equal(t, "Unemployed", row.EmploymentStatus)
	assert.Equal(t, "Non-NHTS", row.SocioEconomicStatus)
	assert.Equal(t, "Healthy", row.HealthClassification)
	assert.Equal(t, "New Acceptor", row.FamilyPlanningStatus)
	assert.Equal(t, "Unknown", row.PhilhealthCategory)
	assert.Equal(t, "Active", row.Status)
	assert.False(t, row.IsRegisteredVoter)
}

func TestCreateCitizenValidation(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", map[string]interface{}{
		"sex": "Other",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var verr validationEnvelope
	decodeBody(t, resp, &verr)
	assert.Contains(t, verr.Errors, "first_name")
	assert.Contains(t, verr.Errors, "last_name")
	assert.Contains(t, verr.Errors, "sex")
	assert.Contains(t, verr.Errors, "date_of_birth")

	// Nothing persisted on a rejected submission.
	var count int64
	require.NoError(t, db.Model(&citizenModel.Citizen{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&citizenModel.Employment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateCitizenRequiresRelationshipWithHousehold(t *testing.T) {
	app, db := setupTestApp(t)

	hh := householdModel.HouseholdInfo{
		Address:         "Purok 1",
		OwnershipStatus: "Owned",
		WaterType:       "Piped",
		ToiletType:      "Flush",
		EncodedByID:     1,
		UpdatedByID:     1,
	}
	require.NoError(t, db.Create(&hh).Error)

	body := minimalCitizen("Juan", "Dela Cruz", "Male")
	body["household_id"] = hh.ID
	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var verr validationEnvelope
	decodeBody(t, resp, &verr)
	assert.Contains(t, verr.Errors, "relationship_to_head")

	body["relationship_to_head"] = "Head"
	resp = doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateCitizenRollsBackOnFailure(t *testing.T) {
	app, db := setupTestApp(t)

	// Removing the aggregator table makes the transaction fail midway, after
	// the sub-record creates have already run.
	require.NoError(t, db.Migrator().DropTable(&citizenModel.Demographic{}))

	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", minimalCitizen("Juan", "Dela Cruz", "Male"))
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var count int64
	for _, model := range []interface{}{
		&citizenModel.Employment{},
		&citizenModel.Contact{},
		&citizenModel.Phone{},
		&citizenModel.SocioEconomicStatus{},
		&citizenModel.ClassificationHealthRisk{},
		&citizenModel.FamilyPlanning{},
		&citizenModel.EduHistory{},
		&citizenModel.EducationStatus{},
		&citizenModel.Philhealth{},
		&citizenModel.CitizenInformation{},
		&citizenModel.Citizen{},
	} {
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "expected no rows for %T after rollback", model)
	}
}

func TestGeneratedCodesUniqueAndStable(t *testing.T) {
	app, _ := setupTestApp(t)

	var first createEnvelope
	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", minimalCitizen("Juan", "Dela Cruz", "Male"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decodeBody(t, resp, &first)

	var second createEnvelope
	resp = doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", minimalCitizen("Maria", "Santos", "Female"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decodeBody(t, resp, &second)

	assert.NotEqual(t, first.Data.CtzUUID, second.Data.CtzUUID)

	resp = doJSON(t, app, fiber.MethodGet, "/api/registry/citizen/"+first.Data.CtzUUID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view viewEnvelope
	decodeBody(t, resp, &view)
	assert.Equal(t, first.Data.CtzUUID, view.Data.CtzUUID)
	assert.Equal(t, first.Data.BatchCode, view.Data.BatchCode)
}

func TestCreateCitizenKeepsAllContactNumbers(t *testing.T) {
	app, _ := setupTestApp(t)

	body := minimalCitizen("Juan", "Dela Cruz", "Male")
	body["contact_numbers"] = []string{"09170000001", "09170000002"}
	body["email"] = "juan@example.com"
	body["sitio"] = "Sitio Proper"

	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created createEnvelope
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, fiber.MethodGet, "/api/registry/citizen/"+created.Data.CtzUUID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view viewEnvelope
	decodeBody(t, resp, &view)
	assert.Equal(t, []string{"09170000001", "09170000002"}, view.Data.ContactNumbers)
	assert.Equal(t, "juan@example.com", view.Data.Email)
	assert.Equal(t, "Sitio Proper", view.Data.Sitio)
}

func seedFilterSet(t *testing.T, app *fiber.App) {
	t.Helper()

	juan := minimalCitizen("Juan", "Dela Cruz", "Male")
	juan["is_registered_voter"] = true
	juan["sitio"] = "Sitio Proper"
	juan["employment_status"] = "Employed"
	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", juan)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	maria := minimalCitizen("Maria", "Santos", "Female")
	maria["sitio"] = "Sitio Riverside"
	resp = doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", maria)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	pedro := minimalCitizen("Pedro", "Reyes", "Male")
	pedro["sitio"] = "Sitio Nowhere" // unmatched, stored with null sitio
	resp = doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", pedro)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func listCitizens(t *testing.T, app *fiber.App, query string) []citizenTypes.CitizenView {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodGet, "/api/registry/citizen"+query, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list listEnvelope
	decodeBody(t, resp, &list)
	return list.Data
}

func TestCitizenFilters(t *testing.T) {
	app, _ := setupTestApp(t)
	seedFilterSet(t, app)

	assert.Len(t, listCitizens(t, app, ""), 3)
	assert.Len(t, listCitizens(t, app, "?sex=Male"), 2)
	assert.Len(t, listCitizens(t, app, "?sex=All"), 3)
	assert.Len(t, listCitizens(t, app, "?voter_status=Yes"), 1)
	assert.Len(t, listCitizens(t, app, "?voter_status=No"), 2)
	assert.Len(t, listCitizens(t, app, "?voter_status="), 3)
	assert.Len(t, listCitizens(t, app, "?employment_status=Employed"), 1)
	assert.Len(t, listCitizens(t, app, "?sitio=Sitio+Riverside"), 1)

	search := listCitizens(t, app, "?search=mar")
	require.Len(t, search, 1)
	assert.Equal(t, "Maria Santos", search[0].FullName)

	// A citizen created with an unmatched sitio name keeps a null reference.
	pedro := listCitizens(t, app, "?search=pedro")
	require.Len(t, pedro, 1)
	assert.Equal(t, "N/A", pedro[0].Sitio)
}

func TestDateRangeFilterRequiresBothBounds(t *testing.T) {
	app, _ := setupTestApp(t)
	seedFilterSet(t, app)

	// A lone bound that would exclude everything must be ignored.
	assert.Len(t, listCitizens(t, app, "?date_encoded_from=2999-01-01"), 3)
	assert.Len(t, listCitizens(t, app, "?date_encoded_to=1900-01-01"), 3)

	today := time.Now().Format("2006-01-02")
	ranged := fmt.Sprintf("?date_encoded_from=%s&date_encoded_to=%s", today, today)
	assert.Len(t, listCitizens(t, app, ranged), 3)

	past := "?date_encoded_from=1900-01-01&date_encoded_to=1900-12-31"
	assert.Len(t, listCitizens(t, app, past), 0)
}

func TestEncodedByFilter(t *testing.T) {
	app, _ := setupTestApp(t)
	seedFilterSet(t, app)

	// All rows were stamped with the fallback operator.
	assert.Len(t, listCitizens(t, app, "?encoded_by=1"), 3)
	assert.Len(t, listCitizens(t, app, "?encoded_by=1,42"), 3)
	assert.Len(t, listCitizens(t, app, "?encoded_by=42"), 0)
	assert.Len(t, listCitizens(t, app, "?updated_by=42"), 0)
}

func TestArchiveCitizen(t *testing.T) {
	app, _ := setupTestApp(t)

	var created createEnvelope
	resp := doJSON(t, app, fiber.MethodPost, "/api/registry/citizen", minimalCitizen("Juan", "Dela Cruz", "Male"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decodeBody(t, resp, &created)

	archivePath := "/api/registry/citizen/" + created.Data.CtzUUID + "/archive"

	// Empty reason is rejected and the record stays active.
	resp = doJSON(t, app, fiber.MethodPatch, archivePath, map[string]interface{}{"delete_reason": "  "})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var verr validationEnvelope
	decodeBody(t, resp, &verr)
	assert.Contains(t, verr.Errors, "delete_reason")
	assert.Len(t, listCitizens(t, app, ""), 1)

	resp = doJSON(t, app, fiber.MethodPatch, archivePath, map[string]interface{}{"delete_reason": "Duplicate entry"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Archived rows leave the default list but remain reachable for audit.
	assert.Len(t, listCitizens(t, app, ""), 0)
	archived := listCitizens(t, app, "?include_archived=true")
	require.Len(t, archived, 1)
	assert.Equal(t, "Archived", archived[0].Status)
	assert.Equal(t, "Duplicate entry", archived[0].DeleteReason)

	// The transition is one-way.
	resp = doJSON(t, app, fiber.MethodPatch, archivePath, map[string]interface{}{"delete_reason": "Again"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestArchiveCitizenNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodPatch, "/api/registry/citizen/no-such-uuid/archive",
		map[string]interface{}{"delete_reason": "whatever"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
