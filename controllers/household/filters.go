package household

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
	householdModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/household"
	householdTypes "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types/household"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/utils"
)

func parseHouseholdFilter(c *fiber.Ctx) householdTypes.HouseholdFilter {
	return householdTypes.HouseholdFilter{
		Search:          c.Query("search"),
		Sitio:           c.Query("sitio"),
		OwnershipStatus: c.Query("ownership_status"),
		WaterType:       c.Query("water_type"),
		ToiletType:      c.Query("toilet_type"),
		DateEncodedFrom: c.Query("date_encoded_from"),
		DateEncodedTo:   c.Query("date_encoded_to"),
		DateUpdatedFrom: c.Query("date_updated_from"),
		DateUpdatedTo:   c.Query("date_updated_to"),
		EncodedBy:       parseIDList(c.Query("encoded_by")),
		UpdatedBy:       parseIDList(c.Query("updated_by")),
		IncludeArchived: c.Query("include_archived") == "true",
	}
}

// applyHouseholdFilters layers the provided predicates onto the base query.
// Absent or sentinel values leave the query untouched.
func applyHouseholdFilters(q *gorm.DB, f householdTypes.HouseholdFilter) *gorm.DB {
	if search := strings.TrimSpace(f.Search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(household_infos.hh_uuid) LIKE ? OR LOWER(household_infos.address) LIKE ?", term, term)
	}
	if isSet(f.Sitio) {
		q = q.Joins("LEFT JOIN sitios ON sitios.id = household_infos.sitio_id").
			Where("sitios.name = ?", f.Sitio)
	}
	if isSet(f.OwnershipStatus) {
		q = q.Where("household_infos.ownership_status = ?", f.OwnershipStatus)
	}
	if isSet(f.WaterType) {
		q = q.Where("household_infos.water_type = ?", f.WaterType)
	}
	if isSet(f.ToiletType) {
		q = q.Where("household_infos.toilet_type = ?", f.ToiletType)
	}
	q = applyDateRange(q, "household_infos.created_at", f.DateEncodedFrom, f.DateEncodedTo)
	q = applyDateRange(q, "household_infos.updated_at", f.DateUpdatedFrom, f.DateUpdatedTo)
	if len(f.EncodedBy) > 0 {
		q = q.Where("household_infos.encoded_by_id IN ?", f.EncodedBy)
	}
	if len(f.UpdatedBy) > 0 {
		q = q.Where("household_infos.updated_by_id IN ?", f.UpdatedBy)
	}
	return q
}

func isSet(value string) bool {
	return value != "" && value != constants.FilterAll
}

// applyDateRange adds a BETWEEN predicate only when both bounds are present
// and parseable; a lone bound is ignored.
func applyDateRange(q *gorm.DB, column, from, to string) *gorm.DB {
	if from == "" || to == "" {
		return q
	}
	start, errFrom := time.Parse(constants.DateLayoutInput, from)
	end, errTo := time.Parse(constants.DateLayoutInput, to)
	if errFrom != nil || errTo != nil {
		return q
	}
	return q.Where(column+" BETWEEN ? AND ?", start, utils.EndOfDay(end))
}

func parseIDList(raw string) []uint {
	if raw == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// flattenHousehold projects a household row plus its sitio and member set
// into the display shape.
func flattenHousehold(record householdModel.HouseholdInfo) householdTypes.HouseholdView {
	sitioName := constants.ValueNotAvailable
	if record.Sitio != nil {
		sitioName = record.Sitio.Name
	}

	status := "Active"
	deleteReason := ""
	if record.IsDeleted {
		status = "Archived"
		if record.DeleteReason != nil {
			deleteReason = *record.DeleteReason
		}
	}

	return householdTypes.HouseholdView{
		ID:              record.ID,
		HhUUID:          record.HhUUID,
		HouseNumber:     utils.StringOrNA(record.HouseNumber),
		Address:         record.Address,
		Sitio:           sitioName,
		OwnershipStatus: record.OwnershipStatus,
		WaterType:       record.WaterType,
		ToiletType:      record.ToiletType,
		DateOfVisit:     utils.FormatDatePtr(record.DateOfVisit),
		Interviewer:     utils.StringOrNA(record.Interviewer),
		MemberCount:     len(record.Members),
		Status:          status,
		DeleteReason:    deleteReason,
		DateEncoded:     utils.FormatDate(record.CreatedAt),
		DateUpdated:     utils.FormatDatePtr(record.UpdatedAt),
		EncodedByID:     record.EncodedByID,
		UpdatedByID:     record.UpdatedByID,
	}
}
