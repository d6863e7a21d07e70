package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	citizenController "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/controllers/citizen"
	householdController "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/controllers/household"
	reportController "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/controllers/report"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/controllers/server"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	citizens := citizenController.NewCitizenController(db, asyncLogger)
	households := householdController.NewHouseholdController(db, asyncLogger)
	reports := reportController.NewReportController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/health", server.Health)

	api := app.Group("/api")
	api.Use(middleware.OperatorContext())
	api.Use(asyncLogger.RequestLogger())

	/*=============================================================================
	| Registry routes
	===============================================================================*/
	registry := api.Group("/registry")

	registry.Post("/citizen", citizens.CreateCitizen)
	registry.Get("/citizen", citizens.GetCitizens)
	registry.Get("/citizen/:uuid", citizens.GetCitizen)
	registry.Patch("/citizen/:uuid/archive", citizens.ArchiveCitizen)

	registry.Post("/household", households.CreateHousehold)
	registry.Get("/household", households.GetHouseholds)
	registry.Get("/household/:uuid", households.GetHousehold)
	registry.Patch("/household/:uuid/archive", households.ArchiveHousehold)

	/*=============================================================================
	| Report routes
	===============================================================================*/
	report := api.Group("/report")
	report.Get("/sitio-summary", reports.GetSitioSummary)
	report.Get("/citizen-export", reports.ExportCitizens)
}
