package citizen

import (
	"strings"
	"time"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/constants"
)

// CreateCitizenRequest is the flat form payload for registering one citizen.
// Every optional field has a documented default applied by the composer.
type CreateCitizenRequest struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Suffix     string `json:"suffix"`

	Sex          string `json:"sex"`
	DateOfBirth  string `json:"date_of_birth"` // YYYY-MM-DD
	PlaceOfBirth string `json:"place_of_birth"`
	CivilStatus  string `json:"civil_status"`
	BloodType    string `json:"blood_type"`
	Religion     string `json:"religion"`

	IsDeceased   bool   `json:"is_deceased"`
	DateOfDeath  string `json:"date_of_death"`
	CauseOfDeath string `json:"cause_of_death"`

	IsRegisteredVoter bool `json:"is_registered_voter"`
	IsIndigenous      bool `json:"is_indigenous"`

	Sitio              string `json:"sitio"`
	HouseholdID        *uint  `json:"household_id,omitempty"`
	RelationshipToHead string `json:"relationship_to_head"`

	ContactNumbers []string `json:"contact_numbers"`
	Email          string   `json:"email"`

	EmploymentStatus string `json:"employment_status"`
	Occupation       string `json:"occupation"`
	IsGovWorker      bool   `json:"is_gov_worker"`

	SocioEconomicStatus string `json:"socio_economic_status"`
	NhtsNumber          string `json:"nhts_number"`

	HealthClassification string `json:"health_classification"`

	FamilyPlanningMethod    string `json:"family_planning_method"`
	FamilyPlanningStatus    string `json:"family_planning_status"`
	FamilyPlanningStartDate string `json:"family_planning_start_date"`

	PhilhealthNumber         string `json:"philhealth_number"`
	PhilhealthCategory       string `json:"philhealth_category"`
	PhilhealthMembershipType string `json:"philhealth_membership_type"`

	ElementarySchool   string `json:"elementary_school"`
	HighSchool         string `json:"high_school"`
	CollegeSchool      string `json:"college_school"`
	PostGradSchool     string `json:"post_grad_school"`
	IsCurrentlyStudent bool   `json:"is_currently_student"`
	EducationLevel     string `json:"education_level"`
}

// Validate returns a field→message map; an empty map means the request is
// acceptable. No side effects happen before validation passes.
func (r CreateCitizenRequest) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(r.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if r.Sex != constants.SexMale && r.Sex != constants.SexFemale {
		errs["sex"] = "Sex must be Male or Female"
	}
	if strings.TrimSpace(r.DateOfBirth) == "" {
		errs["date_of_birth"] = "Date of birth is required"
	} else if _, err := time.Parse(constants.DateLayoutInput, r.DateOfBirth); err != nil {
		errs["date_of_birth"] = "Date of birth must be YYYY-MM-DD"
	}
	if r.HouseholdID != nil && strings.TrimSpace(r.RelationshipToHead) == "" {
		errs["relationship_to_head"] = "Relationship to head is required when a household is given"
	}
	if r.IsDeceased && r.DateOfDeath != "" {
		if _, err := time.Parse(constants.DateLayoutInput, r.DateOfDeath); err != nil {
			errs["date_of_death"] = "Date of death must be YYYY-MM-DD"
		}
	}
	if r.FamilyPlanningStartDate != "" {
		if _, err := time.Parse(constants.DateLayoutInput, r.FamilyPlanningStartDate); err != nil {
			errs["family_planning_start_date"] = "Family planning start date must be YYYY-MM-DD"
		}
	}

	return errs
}

// ArchiveRequest carries the mandatory reason for soft-deleting a record.
type ArchiveRequest struct {
	DeleteReason string `json:"delete_reason"`
}

func (r ArchiveRequest) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(r.DeleteReason) == "" {
		errs["delete_reason"] = "Delete reason is required"
	}
	return errs
}

// CitizenView is the flattened display shape assembled by the projector.
type CitizenView struct {
	ID        uint   `json:"id"`
	CtzUUID   string `json:"ctz_uuid"`
	BatchCode int    `json:"batch_code"`

	FullName    string `json:"full_name"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name"`
	Suffix      string `json:"suffix"`
	Sex         string `json:"sex"`
	DateOfBirth string `json:"date_of_birth"`
	Age         int    `json:"age"`
	CivilStatus string `json:"civil_status"`
	BloodType   string `json:"blood_type"`
	Religion    string `json:"religion"`

	Sitio              string `json:"sitio"`
	HouseholdID        *uint  `json:"household_id,omitempty"`
	RelationshipToHead string `json:"relationship_to_head"`

	ContactNumbers []string `json:"contact_numbers"`
	Email          string   `json:"email"`

	EmploymentStatus string `json:"employment_status"`
	Occupation       string `json:"occupation"`
	IsGovWorker      bool   `json:"is_gov_worker"`

	SocioEconomicStatus  string `json:"socio_economic_status"`
	HealthClassification string `json:"health_classification"`
	FamilyPlanningStatus string `json:"family_planning_status"`
	PhilhealthCategory   string `json:"philhealth_category"`
	EducationLevel       string `json:"education_level"`
	IsCurrentlyStudent   bool   `json:"is_currently_student"`

	IsRegisteredVoter bool `json:"is_registered_voter"`
	IsIndigenous      bool `json:"is_indigenous"`
	IsDeceased        bool `json:"is_deceased"`

	Status       string `json:"status"`
	DeleteReason string `json:"delete_reason,omitempty"`

	DateEncoded string `json:"date_encoded"`
	DateUpdated string `json:"date_updated"`
	EncodedByID uint   `json:"encoded_by_id"`
	UpdatedByID uint   `json:"updated_by_id"`
}

// CitizenFilter is the optional query-parameter bag for the citizen list.
// Zero values mean "no restriction".
type CitizenFilter struct {
	Search           string
	Sitio            string
	Sex              string
	CivilStatus      string
	EmploymentStatus string
	VoterStatus      string // "", "Yes", "No"
	DateEncodedFrom  string
	DateEncodedTo    string
	DateUpdatedFrom  string
	DateUpdatedTo    string
	EncodedBy        []uint
	UpdatedBy        []uint
	IncludeArchived  bool
}
