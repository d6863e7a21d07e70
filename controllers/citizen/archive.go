package citizen

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/middleware"
	citizenModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/citizen"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types"
	citizenTypes "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types/citizen"
)

// ArchiveCitizen flips a citizen record to its archived state. One-way: there
// is no unarchive operation. The row stays in place for audit lookups.
func (ct *CitizenController) ArchiveCitizen(c *fiber.Ctx) error {
	ctzUUID := c.Params("uuid")

	var req citizenTypes.ArchiveRequest
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

	var record citizenModel.Citizen
	if err := ct.db.Where("ctz_uuid = ?", ctzUUID).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Citizen not found",
				Status:  fiber.StatusNotFound,
				Data:    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to retrieve citizen",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	if record.IsDeleted {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Citizen is already archived",
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
	if err := ct.db.Model(&record).Updates(updates).Error; err != nil {
		logger.Error("Failed to archive citizen", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Transaction failed",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Citizen archived successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"ctz_uuid": record.CtzUUID,
		},
	})
}
