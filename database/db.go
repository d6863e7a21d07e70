package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
	citizenModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/citizen"
	householdModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/household"
	logModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/log"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/reference"
	userModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/user"
)

var DB *gorm.DB

// InitDB opens the Postgres connection, runs migrations and creates the
// supporting indexes.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, relying on environment")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := Migrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(DB); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// Migrate runs auto migration in dependency stages: reference and operator
// tables first, then the sub-record leaves, then aggregators and parents, so
// every foreign key target exists before the referencing table.
func Migrate(db *gorm.DB) error {
	// Stage 1: reference data and operators
	stage1 := []interface{}{
		&reference.Sitio{},
		&userModel.SystemAccount{},
		&logModel.Log{},
	}
	for _, model := range stage1 {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: citizen sub-record leaves
	stage2 := []interface{}{
		&citizenModel.Employment{},
		&citizenModel.Contact{},
		&citizenModel.Phone{},
		&citizenModel.SocioEconomicStatus{},
		&citizenModel.ClassificationHealthRisk{},
		&citizenModel.FamilyPlanning{},
		&citizenModel.EduHistory{},
		&citizenModel.EducationStatus{},
		&citizenModel.Philhealth{},
	}
	for _, model := range stage2 {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: aggregator, parents, top-level identity
	stage3 := []interface{}{
		&citizenModel.Demographic{},
		&householdModel.HouseholdInfo{},
		&citizenModel.CitizenInformation{},
		&citizenModel.Citizen{},
	}
	for _, model := range stage3 {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes adds the lookup indexes the list filters lean on.
func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_citizens_ctz_uuid", "CREATE INDEX IF NOT EXISTS idx_citizens_ctz_uuid ON citizens(ctz_uuid)"},
		{"idx_citizens_is_deleted", "CREATE INDEX IF NOT EXISTS idx_citizens_is_deleted ON citizens(is_deleted)"},
		{"idx_citizen_informations_name", "CREATE INDEX IF NOT EXISTS idx_citizen_informations_name ON citizen_informations(last_name, first_name)"},
		{"idx_household_infos_hh_uuid", "CREATE INDEX IF NOT EXISTS idx_household_infos_hh_uuid ON household_infos(hh_uuid)"},
		{"idx_household_infos_is_deleted", "CREATE INDEX IF NOT EXISTS idx_household_infos_is_deleted ON household_infos(is_deleted)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
