package household

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/citizen"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/reference"
	"github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/user"
)

// HouseholdInfo is one household/dwelling record. HhUUID is assigned once by
// the BeforeCreate hook; archival uses IsDeleted + DeleteReason like Citizen.
type HouseholdInfo struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	HhUUID string `gorm:"size:36;uniqueIndex;not null" json:"hh_uuid"`

	HouseNumber     *string `gorm:"size:50" json:"house_number,omitempty"`
	Address         string  `gorm:"size:255;not null" json:"address"`
	OwnershipStatus string  `gorm:"size:100;not null;index" json:"ownership_status"`
	WaterType       string  `gorm:"size:100;not null;index" json:"water_type"`
	ToiletType      string  `gorm:"size:100;not null;index" json:"toilet_type"`

	DateOfVisit *time.Time `json:"date_of_visit,omitempty"`
	Interviewer *string    `gorm:"size:255" json:"interviewer,omitempty"`
	Reviewer    *string    `gorm:"size:255" json:"reviewer,omitempty"`

	SitioID *uint            `gorm:"index" json:"sitio_id,omitempty"`
	Sitio   *reference.Sitio `gorm:"foreignKey:SitioID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"sitio,omitempty"`

	IsDeleted    bool    `gorm:"default:false;index" json:"is_deleted"`
	DeleteReason *string `gorm:"size:500" json:"delete_reason,omitempty"`

	EncodedByID uint `gorm:"index;not null" json:"encoded_by_id"`
	UpdatedByID uint `gorm:"index;not null" json:"updated_by_id"`

	EncodedBy *user.SystemAccount `gorm:"foreignKey:EncodedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"encoded_by,omitempty"`
	UpdatedBy *user.SystemAccount `gorm:"foreignKey:UpdatedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"updated_by,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	Members []citizen.CitizenInformation `gorm:"foreignKey:HhID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"members,omitempty"`
}

func (h *HouseholdInfo) BeforeCreate(tx *gorm.DB) error {
	if h.HhUUID == "" {
		h.HhUUID = uuid.NewString()
	}
	return nil
}
