package citizen

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/reference"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/user"
)

// CitizenInformation is the demographic/personal-detail payload for one
// citizen. HhID is the optional household linkage; when set,
// RelationshipToHead must be set too (enforced at the request boundary).
type CitizenInformation struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string  `gorm:"size:100;not null;index" json:"first_name"`
	MiddleName *string `gorm:"size:100" json:"middle_name,omitempty"`
	LastName   string  `gorm:"size:100;not null;index" json:"last_name"`
	Suffix     *string `gorm:"size:20" json:"suffix,omitempty"`

	DateOfBirth  time.Time `gorm:"not null" json:"date_of_birth"`
	PlaceOfBirth *string   `gorm:"size:255" json:"place_of_birth,omitempty"`
	Sex          string    `gorm:"size:10;not null;index" json:"sex"`
	CivilStatus  string    `gorm:"size:50;default:'Single';index" json:"civil_status"`
	BloodType    *string   `gorm:"size:5" json:"blood_type,omitempty"`
	Religion     *string   `gorm:"size:100" json:"religion,omitempty"`

	IsDeceased   bool       `gorm:"default:false;index" json:"is_deceased"`
	DateOfDeath  *time.Time `json:"date_of_death,omitempty"`
	CauseOfDeath *string    `gorm:"size:255" json:"cause_of_death,omitempty"`

	IsRegisteredVoter bool `gorm:"default:false;index" json:"is_registered_voter"`
	IsIndigenous      bool `gorm:"default:false" json:"is_indigenous"`

	HhID               *uint   `gorm:"index" json:"hh_id,omitempty"`
	RelationshipToHead *string `gorm:"size:100" json:"relationship_to_head,omitempty"`

	SitioID       *uint `gorm:"index" json:"sitio_id,omitempty"`
	EmploymentID  uint  `gorm:"index;not null" json:"employment_id"`
	ContactID     uint  `gorm:"index;not null" json:"contact_id"`
	DemographicID uint  `gorm:"index;not null" json:"demographic_id"`

	Sitio       *reference.Sitio `gorm:"foreignKey:SitioID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"sitio,omitempty"`
	Employment  Employment       `gorm:"foreignKey:EmploymentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"employment,omitempty"`
	Contact     Contact          `gorm:"foreignKey:ContactID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"contact,omitempty"`
	Demographic Demographic      `gorm:"foreignKey:DemographicID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"demographic,omitempty"`
}

// Citizen is the top-level identity record. CtzUUID is assigned once by the
// BeforeCreate hook and never regenerated; archival is modeled with IsDeleted
// plus DeleteReason, rows are never physically removed.
type Citizen struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CtzUUID      string  `gorm:"size:36;uniqueIndex;not null" json:"ctz_uuid"`
	BatchCode    int     `gorm:"index" json:"batch_code"`
	IsDeleted    bool    `gorm:"default:false;index" json:"is_deleted"`
	DeleteReason *string `gorm:"size:500" json:"delete_reason,omitempty"`

	CitizenInformationID uint               `gorm:"index;not null" json:"citizen_information_id"`
	CitizenInformation   CitizenInformation `gorm:"foreignKey:CitizenInformationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"citizen_information,omitempty"`

	EncodedByID uint `gorm:"index;not null" json:"encoded_by_id"`
	UpdatedByID uint `gorm:"index;not null" json:"updated_by_id"`

	EncodedBy *user.SystemAccount `gorm:"foreignKey:EncodedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"encoded_by,omitempty"`
	UpdatedBy *user.SystemAccount `gorm:"foreignKey:UpdatedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"updated_by,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (ct *Citizen) BeforeCreate(tx *gorm.DB) error {
	if ct.CtzUUID == "" {
		ct.CtzUUID = uuid.NewString()
	}
	return nil
}
