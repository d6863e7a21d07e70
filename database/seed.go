package database

import (
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/reference"
	userModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/user"
)

// SeedData seeds the reference rows the registry workflows depend on.
// Seeding is idempotent: existing rows are left untouched.
func SeedData(db *gorm.DB) error {
	logger.Success("Starting database seeding...")

	if err := seedSystemOperator(db); err != nil {
		return err
	}
	if err := seedSitios(db); err != nil {
		return err
	}

	logger.Success("Database seeding completed successfully")
	return nil
}

// seedSystemOperator creates the fallback identity used to stamp records when
// no authenticated operator is present.
func seedSystemOperator(db *gorm.DB) error {
	var existing userModel.SystemAccount
	err := db.Where("id = ?", constants.FallbackOperatorID).First(&existing).Error
	if err == nil {
		logger.Debug("System operator already exists, skipping...")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		logger.Error("Error checking for system operator", err)
		return err
	}

	system := userModel.SystemAccount{
		ID:        constants.FallbackOperatorID,
		Username:  "system",
		FirstName: "System",
		LastName:  "Account",
		Role:      "system",
		IsActive:  true,
	}
	if err := db.Create(&system).Error; err != nil {
		logger.Error("Failed to create system operator", err)
		return err
	}
	return nil
}

// seedSitios loads the barangay's zone list.
func seedSitios(db *gorm.DB) error {
	names := []string{
		"Sitio Proper",
		"Sitio Ibaba",
		"Sitio Ilaya",
		"Sitio Riverside",
		"Sitio Looban",
		"Sitio Centro",
		"Sitio Kanluran",
		"Sitio Silangan",
	}

	for _, name := range names {
		var existing reference.Sitio
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			logger.Error("Error checking for sitio "+name, err)
			return err
		}
		if err := db.Create(&reference.Sitio{Name: name}).Error; err != nil {
			logger.Error("Failed to seed sitio "+name, err)
			return err
		}
	}
	return nil
}
