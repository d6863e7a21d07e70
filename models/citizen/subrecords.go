package citizen

import "time"

// The sub-record tables below are owned exclusively by the CitizenInformation
// that created them. They are written only inside the citizen creation
// transaction, never independently.

type Employment struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Status      string  `gorm:"size:100;default:'Unemployed';index" json:"status"`
	Occupation  *string `gorm:"size:255" json:"occupation,omitempty"`
	IsGovWorker bool    `gorm:"default:false" json:"is_gov_worker"`
}

type Contact struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email string `gorm:"size:255;default:'N/A'" json:"email"`

	Phones []Phone `gorm:"foreignKey:ContactID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"phones,omitempty"`
}

// Phone is one contact number. Position preserves the order the numbers were
// submitted in.
type Phone struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ContactID uint   `gorm:"index;not null" json:"contact_id"`
	Number    string `gorm:"size:30;not null" json:"number"`
	Position  int    `gorm:"default:0" json:"position"`
}

type SocioEconomicStatus struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Status     string  `gorm:"size:100;default:'Non-NHTS';index" json:"status"`
	NhtsNumber *string `gorm:"size:50" json:"nhts_number,omitempty"`
}

type ClassificationHealthRisk struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Classification string `gorm:"size:100;default:'Healthy';index" json:"classification"`
}

type FamilyPlanning struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Method    *string    `gorm:"size:100" json:"method,omitempty"`
	Status    string     `gorm:"size:100;default:'New Acceptor'" json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

type EduHistory struct {
	ID               uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ElementarySchool *string `gorm:"size:255" json:"elementary_school,omitempty"`
	HighSchool       *string `gorm:"size:255" json:"high_school,omitempty"`
	CollegeSchool    *string `gorm:"size:255" json:"college_school,omitempty"`
	PostGradSchool   *string `gorm:"size:255" json:"post_grad_school,omitempty"`
}

type EducationStatus struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	EduHistoryID       *uint   `gorm:"index" json:"edu_history_id,omitempty"`
	IsCurrentlyStudent bool    `gorm:"default:false" json:"is_currently_student"`
	Level              *string `gorm:"size:100" json:"level,omitempty"`

	EduHistory *EduHistory `gorm:"foreignKey:EduHistoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"edu_history,omitempty"`
}

type Philhealth struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Number         *string `gorm:"size:50" json:"number,omitempty"`
	Category       string  `gorm:"size:100;default:'Unknown'" json:"category"`
	MembershipType *string `gorm:"size:100" json:"membership_type,omitempty"`
}

// Demographic exists solely so CitizenInformation can reach the five
// demographic sub-domains through one foreign key. One row per citizen.
type Demographic struct {
	ID                         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	SocioEconomicStatusID      uint `gorm:"index;not null" json:"socio_economic_status_id"`
	ClassificationHealthRiskID uint `gorm:"index;not null" json:"classification_health_risk_id"`
	FamilyPlanningID           uint `gorm:"index;not null" json:"family_planning_id"`
	EducationStatusID          uint `gorm:"index;not null" json:"education_status_id"`
	PhilhealthID               uint `gorm:"index;not null" json:"philhealth_id"`

	SocioEconomicStatus      SocioEconomicStatus      `gorm:"foreignKey:SocioEconomicStatusID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"socio_economic_status,omitempty"`
	ClassificationHealthRisk ClassificationHealthRisk `gorm:"foreignKey:ClassificationHealthRiskID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"classification_health_risk,omitempty"`
	FamilyPlanning           FamilyPlanning           `gorm:"foreignKey:FamilyPlanningID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"family_planning,omitempty"`
	EducationStatus          EducationStatus          `gorm:"foreignKey:EducationStatusID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"education_status,omitempty"`
	Philhealth               Philhealth               `gorm:"foreignKey:PhilhealthID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"philhealth,omitempty"`
}
