package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
	citizenModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/citizen"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types"
)

type ReportController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewReportController(db *gorm.DB, loggerInstance *logger.AsyncLogger) *ReportController {
	return &ReportController{db: db, loggerInstance: loggerInstance}
}

// SitioSummaryRow is one aggregate line of the per-zone dashboard.
type SitioSummaryRow struct {
	Sitio      string `json:"sitio"`
	Population int64  `json:"population"`
	Voters     int64  `json:"voters"`
	Deceased   int64  `json:"deceased"`
	Indigenous int64  `json:"indigenous"`
	Employed   int64  `json:"employed"`
}

// GetSitioSummary computes population aggregates per sitio in one grouped
// query over the active citizen set.
func (r *ReportController) GetSitioSummary(c *fiber.Ctx) error {
	var rows []SitioSummaryRow

	err := r.db.Raw(`
		SELECT
			COALESCE(sitios.name, 'Unassigned') AS sitio,
			COUNT(*) AS population,
			SUM(CASE WHEN citizen_informations.is_registered_voter THEN 1 ELSE 0 END) AS voters,
			SUM(CASE WHEN citizen_informations.is_deceased THEN 1 ELSE 0 END) AS deceased,
			SUM(CASE WHEN citizen_informations.is_indigenous THEN 1 ELSE 0 END) AS indigenous,
			SUM(CASE WHEN employments.status <> 'Unemployed' THEN 1 ELSE 0 END) AS employed
		FROM citizens
		JOIN citizen_informations ON citizen_informations.id = citizens.citizen_information_id
		JOIN employments ON employments.id = citizen_informations.employment_id
		LEFT JOIN sitios ON sitios.id = citizen_informations.sitio_id
		WHERE citizens.is_deleted = ?
		GROUP BY COALESCE(sitios.name, 'Unassigned')
		ORDER BY sitio`, false).Scan(&rows).Error
	if err != nil {
		logger.Error("Failed to compute sitio summary", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to compute sitio summary",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Sitio summary computed successfully",
		Status:  fiber.StatusOK,
		Data:    rows,
	})
}

// ExportCitizens writes the active citizen list to an xlsx attachment.
func (r *ReportController) ExportCitizens(c *fiber.Ctx) error {
	var records []citizenModel.Citizen
	err := r.db.
		Preload("CitizenInformation").
		Preload("CitizenInformation.Sitio").
		Preload("CitizenInformation.Employment").
		Where("citizens.is_deleted = ?", false).
		Order("citizens.id").
		Find(&records).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to retrieve citizens",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Citizens"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"Code", "Last Name", "First Name", "Sex", "Date of Birth", "Sitio", "Employment Status", "Registered Voter"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			logger.Error("Failed to write export header", err)
			return exportFailed(c)
		}
	}

	for row, record := range records {
		info := record.CitizenInformation
		sitioName := ""
		if info.Sitio != nil {
			sitioName = info.Sitio.Name
		}
		voter := "No"
		if info.IsRegisteredVoter {
			voter = "Yes"
		}

		values := []interface{}{
			record.CtzUUID,
			info.LastName,
			info.FirstName,
			info.Sex,
			info.DateOfBirth.Format("2006-01-02"),
			sitioName,
			info.Employment.Status,
			voter,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				logger.Error("Failed to write export row", err)
				return exportFailed(c)
			}
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		logger.Error("Failed to serialize export", err)
		return exportFailed(c)
	}

	filename := fmt.Sprintf("citizens-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

func exportFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Message: "Failed to generate export",
		Status:  fiber.StatusInternalServerError,
		Data:    nil,
	})
}
