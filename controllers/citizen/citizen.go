package citizen

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/logger"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/middleware"
	citizenModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/citizen"
	householdModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/household"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/reference"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types"
	citizenTypes "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/types/citizen"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/utils"
)

type CitizenController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewCitizenController(db *gorm.DB, loggerInstance *logger.AsyncLogger) *CitizenController {
	return &CitizenController{db: db, loggerInstance: loggerInstance}
}

// CreateCitizen registers one citizen together with all of its dependent
// sub-records inside a single transaction. Either the full graph is persisted
// or nothing is.
func (ct *CitizenController) CreateCitizen(c *fiber.Ctx) error {
	var req citizenTypes.CreateCitizenRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing citizen request body", err)
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

	var created citizenModel.Citizen
	err := ct.db.Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = composeCitizen(tx, req, operatorID, requestTime)
		return err
	})

	if err != nil {
		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(types.ApiResponse{
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
				Data:    nil,
			})
		}
		logger.Error("Citizen creation transaction failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Transaction failed",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Citizen created successfully",
		Status:  fiber.StatusCreated,
		Data: fiber.Map{
			"ctz_uuid":   created.CtzUUID,
			"batch_code": created.BatchCode,
		},
	})
}

// composeCitizen creates the sub-records in dependency order, then the
// Demographic aggregator, then CitizenInformation and finally the Citizen
// identity row. Runs entirely inside the caller's transaction.
func composeCitizen(tx *gorm.DB, req citizenTypes.CreateCitizenRequest, operatorID uint, at time.Time) (citizenModel.Citizen, error) {
	var zero citizenModel.Citizen

	if req.HouseholdID != nil {
		var hh householdModel.HouseholdInfo
		if err := tx.Where("id = ?", *req.HouseholdID).First(&hh).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return zero, fiber.NewError(fiber.StatusBadRequest, "Household not found")
			}
			return zero, err
		}
	}

	employmentStatus := req.EmploymentStatus
	if employmentStatus == "" {
		employmentStatus = constants.DefaultEmploymentStatus
	}
	employment := citizenModel.Employment{
		Status:      employmentStatus,
		Occupation:  utils.PtrOrNil(req.Occupation),
		IsGovWorker: req.IsGovWorker,
	}
	if err := tx.Create(&employment).Error; err != nil {
		return zero, err
	}

	email := req.Email
	if email == "" {
		email = constants.ValueNotAvailable
	}
	contact := citizenModel.Contact{Email: email}
	if err := tx.Create(&contact).Error; err != nil {
		return zero, err
	}
	// Every submitted number is kept as an ordered child row.
	for i, number := range req.ContactNumbers {
		if number == "" {
			continue
		}
		phone := citizenModel.Phone{
			ContactID: contact.ID,
			Number:    number,
			Position:  i,
		}
		if err := tx.Create(&phone).Error; err != nil {
			return zero, err
		}
	}

	sesStatus := req.SocioEconomicStatus
	if sesStatus == "" {
		sesStatus = constants.DefaultSocioEconomicStatus
	}
	ses := citizenModel.SocioEconomicStatus{
		Status:     sesStatus,
		NhtsNumber: utils.PtrOrNil(req.NhtsNumber),
	}
	if err := tx.Create(&ses).Error; err != nil {
		return zero, err
	}

	classification := req.HealthClassification
	if classification == "" {
		classification = constants.DefaultHealthClassification
	}
	healthRisk := citizenModel.ClassificationHealthRisk{Classification: classification}
	if err := tx.Create(&healthRisk).Error; err != nil {
		return zero, err
	}

	fpStatus := req.FamilyPlanningStatus
	if fpStatus == "" {
		fpStatus = constants.DefaultFamilyPlanningStatus
	}
	fpStart := at
	if req.FamilyPlanningStartDate != "" {
		parsed, err := time.Parse(constants.DateLayoutInput, req.FamilyPlanningStartDate)
		if err == nil {
			fpStart = parsed
		}
	}
	familyPlanning := citizenModel.FamilyPlanning{
		Method:    utils.PtrOrNil(req.FamilyPlanningMethod),
		Status:    fpStatus,
		StartDate: &fpStart,
	}
	if err := tx.Create(&familyPlanning).Error; err != nil {
		return zero, err
	}

	philhealthCategory := req.PhilhealthCategory
	if philhealthCategory == "" {
		philhealthCategory = constants.DefaultPhilhealthCategory
	}
	philhealth := citizenModel.Philhealth{
		Number:         utils.PtrOrNil(req.PhilhealthNumber),
		Category:       philhealthCategory,
		MembershipType: utils.PtrOrNil(req.PhilhealthMembershipType),
	}
	if err := tx.Create(&philhealth).Error; err != nil {
		return zero, err
	}

	eduHistory := citizenModel.EduHistory{
		ElementarySchool: utils.PtrOrNil(req.ElementarySchool),
		HighSchool:       utils.PtrOrNil(req.HighSchool),
		CollegeSchool:    utils.PtrOrNil(req.CollegeSchool),
		PostGradSchool:   utils.PtrOrNil(req.PostGradSchool),
	}
	if err := tx.Create(&eduHistory).Error; err != nil {
		return zero, err
	}

	educationStatus := citizenModel.EducationStatus{
		EduHistoryID:       &eduHistory.ID,
		IsCurrentlyStudent: req.IsCurrentlyStudent,
		Level:              utils.PtrOrNil(req.EducationLevel),
	}
	if err := tx.Create(&educationStatus).Error; err != nil {
		return zero, err
	}

	demographic := citizenModel.Demographic{
		SocioEconomicStatusID:      ses.ID,
		ClassificationHealthRiskID: healthRisk.ID,
		FamilyPlanningID:           familyPlanning.ID,
		EducationStatusID:          educationStatus.ID,
		PhilhealthID:               philhealth.ID,
	}
	if err := tx.Create(&demographic).Error; err != nil {
		return zero, err
	}

	sitioID, err := resolveSitioID(tx, req.Sitio)
	if err != nil {
		return zero, err
	}

	dob, err := time.Parse(constants.DateLayoutInput, req.DateOfBirth)
	if err != nil {
		return zero, fiber.NewError(fiber.StatusBadRequest, "Invalid date of birth")
	}

	var dateOfDeath *time.Time
	if req.IsDeceased && req.DateOfDeath != "" {
		if parsed, err := time.Parse(constants.DateLayoutInput, req.DateOfDeath); err == nil {
			dateOfDeath = &parsed
		}
	}

	civilStatus := req.CivilStatus
	if civilStatus == "" {
		civilStatus = constants.DefaultCivilStatus
	}

	info := citizenModel.CitizenInformation{
		FirstName:          req.FirstName,
		MiddleName:         utils.PtrOrNil(req.MiddleName),
		LastName:           req.LastName,
		Suffix:             utils.PtrOrNil(req.Suffix),
		DateOfBirth:        dob,
		PlaceOfBirth:       utils.PtrOrNil(req.PlaceOfBirth),
		Sex:                req.Sex,
		CivilStatus:        civilStatus,
		BloodType:          utils.PtrOrNil(req.BloodType),
		Religion:           utils.PtrOrNil(req.Religion),
		IsDeceased:         req.IsDeceased,
		DateOfDeath:        dateOfDeath,
		CauseOfDeath:       utils.PtrOrNil(req.CauseOfDeath),
		IsRegisteredVoter:  req.IsRegisteredVoter,
		IsIndigenous:       req.IsIndigenous,
		HhID:               req.HouseholdID,
		RelationshipToHead: utils.PtrOrNil(req.RelationshipToHead),
		SitioID:            sitioID,
		EmploymentID:       employment.ID,
		ContactID:          contact.ID,
		DemographicID:      demographic.ID,
	}
	if err := tx.Create(&info).Error; err != nil {
		return zero, err
	}

	record := citizenModel.Citizen{
		BatchCode:            utils.GenerateBatchCode(at),
		CitizenInformationID: info.ID,
		EncodedByID:          operatorID,
		UpdatedByID:          operatorID,
		CreatedAt:            at,
		UpdatedAt:            &at,
	}
	if err := tx.Create(&record).Error; err != nil {
		return zero, err
	}

	return record, nil
}

// resolveSitioID looks a sitio up by exact name. An unmatched name yields a
// null reference rather than an error; the zone assignment can be corrected
// later without losing the submission.
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
