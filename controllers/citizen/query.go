package citizen

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
	citizenModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/citizen"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types"
	citizenTypes "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types/citizen"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/utils"
)

// citizenPreloads eagerly fetches the full sub-record graph for the filtered
// set so assembling each view row never goes back to the database.
func citizenPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("CitizenInformation").
		Preload("CitizenInformation.Sitio").
		Preload("CitizenInformation.Employment").
		Preload("CitizenInformation.Contact").
		Preload("CitizenInformation.Contact.Phones", func(db *gorm.DB) *gorm.DB {
			return db.Order("phones.position")
		}).
		Preload("CitizenInformation.Demographic").
		Preload("CitizenInformation.Demographic.SocioEconomicStatus").
		Preload("CitizenInformation.Demographic.ClassificationHealthRisk").
		Preload("CitizenInformation.Demographic.FamilyPlanning").
		Preload("CitizenInformation.Demographic.EducationStatus").
		Preload("CitizenInformation.Demographic.EducationStatus.EduHistory").
		Preload("CitizenInformation.Demographic.Philhealth")
}

// GetCitizens lists citizens with the optional filter bag applied on top of
// the base "not archived" predicate.
func (ct *CitizenController) GetCitizens(c *fiber.Ctx) error {
	filter := parseCitizenFilter(c)

	query := ct.db.Model(&citizenModel.Citizen{}).
		Select("citizens.*").
		Joins("JOIN citizen_informations ON citizen_informations.id = citizens.citizen_information_id")

	if !filter.IncludeArchived {
		query = query.Where("citizens.is_deleted = ?", false)
	}
	query = applyCitizenFilters(query, filter)

	var records []citizenModel.Citizen
	if err := citizenPreloads(query).Order("citizens.id").Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to retrieve citizens",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	views := make([]citizenTypes.CitizenView, 0, len(records))
	for _, record := range records {
		views = append(views, flattenCitizen(record, time.Now()))
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Citizens retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    views,
	})
}

// GetCitizen fetches one citizen by its public code.
func (ct *CitizenController) GetCitizen(c *fiber.Ctx) error {
	ctzUUID := c.Params("uuid")

	var record citizenModel.Citizen
	err := citizenPreloads(ct.db).Where("ctz_uuid = ?", ctzUUID).First(&record).Error
	if err != nil {
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

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Citizen retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    flattenCitizen(record, time.Now()),
	})
}

func parseCitizenFilter(c *fiber.Ctx) citizenTypes.CitizenFilter {
	return citizenTypes.CitizenFilter{
		Search:           c.Query("search"),
		Sitio:            c.Query("sitio"),
		Sex:              c.Query("sex"),
		CivilStatus:      c.Query("civil_status"),
		EmploymentStatus: c.Query("employment_status"),
		VoterStatus:      c.Query("voter_status"),
		DateEncodedFrom:  c.Query("date_encoded_from"),
		DateEncodedTo:    c.Query("date_encoded_to"),
		DateUpdatedFrom:  c.Query("date_updated_from"),
		DateUpdatedTo:    c.Query("date_updated_to"),
		EncodedBy:        parseIDList(c.Query("encoded_by")),
		UpdatedBy:        parseIDList(c.Query("updated_by")),
		IncludeArchived:  c.Query("include_archived") == "true",
	}
}

// applyCitizenFilters layers the provided predicates onto the base query.
// Absent or sentinel values leave the query untouched.
func applyCitizenFilters(q *gorm.DB, f citizenTypes.CitizenFilter) *gorm.DB {
	if search := strings.TrimSpace(f.Search); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(citizen_informations.first_name || ' ' || citizen_informations.last_name) LIKE ?", term)
	}
	if isSet(f.Sitio) {
		q = q.Joins("LEFT JOIN sitios ON sitios.id = citizen_informations.sitio_id").
			Where("sitios.name = ?", f.Sitio)
	}
	if isSet(f.Sex) {
		q = q.Where("citizen_informations.sex = ?", f.Sex)
	}
	if isSet(f.CivilStatus) {
		q = q.Where("citizen_informations.civil_status = ?", f.CivilStatus)
	}
	if isSet(f.EmploymentStatus) {
		q = q.Joins("JOIN employments ON employments.id = citizen_informations.employment_id").
			Where("employments.status = ?", f.EmploymentStatus)
	}
	switch f.VoterStatus {
	case "Yes":
		q = q.Where("citizen_informations.is_registered_voter = ?", true)
	case "No":
		q = q.Where("citizen_informations.is_registered_voter = ?", false)
	}
	q = applyDateRange(q, "citizens.created_at", f.DateEncodedFrom, f.DateEncodedTo)
	q = applyDateRange(q, "citizens.updated_at", f.DateUpdatedFrom, f.DateUpdatedTo)
	if len(f.EncodedBy) > 0 {
		q = q.Where("citizens.encoded_by_id IN ?", f.EncodedBy)
	}
	if len(f.UpdatedBy) > 0 {
		q = q.Where("citizens.updated_by_id IN ?", f.UpdatedBy)
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

// flattenCitizen walks the preloaded graph into the denormalized display
// shape. Missing optional strings resolve to their documented defaults,
// boolean flags to false.
func flattenCitizen(record citizenModel.Citizen, at time.Time) citizenTypes.CitizenView {
	info := record.CitizenInformation
	demographic := info.Demographic

	fullName := info.FirstName
	if info.MiddleName != nil && *info.MiddleName != "" {
		fullName += " " + *info.MiddleName
	}
	fullName += " " + info.LastName
	if info.Suffix != nil && *info.Suffix != "" {
		fullName += " " + *info.Suffix
	}

	numbers := make([]string, 0, len(info.Contact.Phones))
	for _, phone := range info.Contact.Phones {
		numbers = append(numbers, phone.Number)
	}

	sitioName := constants.ValueNotAvailable
	if info.Sitio != nil {
		sitioName = info.Sitio.Name
	}

	status := "Active"
	deleteReason := ""
	if record.IsDeleted {
		status = "Archived"
		if record.DeleteReason != nil {
			deleteReason = *record.DeleteReason
		}
	}

	email := info.Contact.Email
	if email == "" {
		email = constants.ValueNotAvailable
	}

	relationship := ""
	if info.RelationshipToHead != nil {
		relationship = *info.RelationshipToHead
	}

	return citizenTypes.CitizenView{
		ID:        record.ID,
		CtzUUID:   record.CtzUUID,
		BatchCode: record.BatchCode,

		FullName:    fullName,
		FirstName:   info.FirstName,
		MiddleName:  utils.StringOrNA(info.MiddleName),
		LastName:    info.LastName,
		Suffix:      utils.StringOrNA(info.Suffix),
		Sex:         info.Sex,
		DateOfBirth: utils.FormatDate(info.DateOfBirth),
		Age:         utils.CalculateAge(info.DateOfBirth, at),
		CivilStatus: info.CivilStatus,
		BloodType:   utils.StringOrNA(info.BloodType),
		Religion:    utils.StringOrNA(info.Religion),

		Sitio:              sitioName,
		HouseholdID:        info.HhID,
		RelationshipToHead: relationship,

		ContactNumbers: numbers,
		Email:          email,

		EmploymentStatus: info.Employment.Status,
		Occupation:       utils.StringOrNA(info.Employment.Occupation),
		IsGovWorker:      info.Employment.IsGovWorker,

		SocioEconomicStatus:  demographic.SocioEconomicStatus.Status,
		HealthClassification: demographic.ClassificationHealthRisk.Classification,
		FamilyPlanningStatus: demographic.FamilyPlanning.Status,
		PhilhealthCategory:   demographic.Philhealth.Category,
		EducationLevel:       utils.StringOrNA(demographic.EducationStatus.Level),
		IsCurrentlyStudent:   demographic.EducationStatus.IsCurrentlyStudent,

		IsRegisteredVoter: info.IsRegisteredVoter,
		IsIndigenous:      info.IsIndigenous,
		IsDeceased:        info.IsDeceased,

		Status:       status,
		DeleteReason: deleteReason,

		DateEncoded: utils.FormatDate(record.CreatedAt),
		DateUpdated: utils.FormatDatePtr(record.UpdatedAt),
		EncodedByID: record.EncodedByID,
		UpdatedByID: record.UpdatedByID,
	}
}
