package household

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/middleware"
	householdModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/household"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/reference"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types"
	householdTypes "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types/household"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/utils"
)

type HouseholdController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewHouseholdController(db *gorm.DB, loggerInstance *logger.AsyncLogger) *HouseholdController {
	return &HouseholdController{db: db, loggerInstance: loggerInstance}
}

// CreateHousehold registers one household record. Single-table write, still
// wrapped in a transaction for symmetry with the citizen workflow.
func (h *HouseholdController) CreateHousehold(c *fiber.Ctx) error {
	var req householdTypes.CreateHouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing household request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
			Data:    nil,
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ValidationResponse{
			Message: "Validation failed",
			Status:  fiber.StatusUnprocessableEntity,
			Errors:  errs,
		})
	}

	operatorID := middleware.OperatorID(c)
	requestTime := time.Now()

	var created householdModel.HouseholdInfo
	err := h.db.Transaction(func(tx *gorm.DB) error {
		sitioID, err := resolveSitioID(tx, req.Sitio)
		if err != nil {
			return err
		}

		var dateOfVisit *time.Time
		if req.DateOfVisit != "" {
			if parsed, err := time.Parse(constants.DateLayoutInput, req.DateOfVisit); err == nil {
				dateOfVisit = &parsed
			}
		}

		created = householdModel.HouseholdInfo{
			HouseNumber:     utils.PtrOrNil(req.HouseNumber),
			Address:         req.Address,
			OwnershipStatus: req.OwnershipStatus,
			WaterType:       req.WaterType,
			ToiletType:      req.ToiletType,
			DateOfVisit:     dateOfVisit,
			Interviewer:     utils.PtrOrNil(req.Interviewer),
			Reviewer:        utils.PtrOrNil(req.Reviewer),
			SitioID:         sitioID,
			EncodedByID:     operatorID,
			UpdatedByID:     operatorID,
			CreatedAt:       requestTime,
			UpdatedAt:       &requestTime,
		}
		return tx.Create(&created).Error
	})

	if err != nil {
		logger.Error("Household creation transaction failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Transaction failed",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Household created successfully",
		Status:  fiber.StatusCreated,
		Data: fiber.Map{
			"hh_uuid": created.HhUUID,
		},
	})
}

// resolveSitioID mirrors the citizen workflow's lenient lookup: an unmatched
// name yields a null reference, not an error.
func resolveSitioID(tx *gorm.DB, name string) (*uint, error) {
	if name == "" {
		return nil, nil
	}
	var sitio reference.Sitio
	if err := tx.Where("name = ?", name).First(&sitio).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sitio.ID, nil
}

// GetHouseholds lists households with the optional filter bag applied on top
// of the base "not archived" predicate.
func (h *HouseholdController) GetHouseholds(c *fiber.Ctx) error {
	filter := parseHouseholdFilter(c)

	query := h.db.Model(&householdModel.HouseholdInfo{}).Select("household_infos.*")
	if !filter.IncludeArchived {
		query = query.Where("household_infos.is_deleted = ?", false)
	}
	query = applyHouseholdFilters(query, filter)

	var records []householdModel.HouseholdInfo
	err := query.Preload("Sitio").Preload("Members").Order("household_infos.id").Find(&records).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to retrieve households",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	views := make([]householdTypes.HouseholdView, 0, len(records))
	for _, record := range records {
		views = append(views, flattenHousehold(record))
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Households retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    views,
	})
}

// GetHousehold fetches one household by its public code.
func (h *HouseholdController) GetHousehold(c *fiber.Ctx) error {
	hhUUID := c.Params("uuid")

	var record householdModel.HouseholdInfo
	err := h.db.Preload("Sitio").Preload("Members").Where("hh_uuid = ?", hhUUID).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Household not found",
				Status:  fiber.StatusNotFound,
				Data:    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to retrieve household",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Household retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    flattenHousehold(record),
	})
}

// ArchiveHousehold flips a household record to its archived state.
func (h *HouseholdController) ArchiveHousehold(c *fiber.Ctx) error {
	hhUUID := c.Params("uuid")

	var req householdTypes.ArchiveRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing archive request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
			Data:    nil,
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ValidationResponse{
			Message: "Validation failed",
			Status:  fiber.StatusUnprocessableEntity,
			Errors:  errs,
		})
	}

	var record householdModel.HouseholdInfo
	if err := h.db.Where("hh_uuid = ?", hhUUID).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Household not found",
				Status:  fiber.StatusNotFound,
				Data:    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to retrieve household",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	if record.IsDeleted {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Household is already archived",
			Status:  fiber.StatusBadRequest,
			Data:    nil,
		})
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_deleted":    true,
		"delete_reason": req.DeleteReason,
		"updated_by_id": middleware.OperatorID(c),
		"updated_at":    now,
	}
	if err := h.db.Model(&record).Updates(updates).Error; err != nil {
		logger.Error("Failed to archive household", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Transaction failed",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Household archived successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"hh_uuid": record.HhUUID,
		},
	})
}
