package household

import "strings"

// CreateHouseholdRequest is the flat form payload for registering a household.
type CreateHouseholdRequest struct {
	HouseNumber     string `json:"house_number"`
	Address         string `json:"address"`
	Sitio           string `json:"sitio"`
	OwnershipStatus string `json:"ownership_status"`
	WaterType       string `json:"water_type"`
	ToiletType      string `json:"toilet_type"`
	DateOfVisit     string `json:"date_of_visit"`
	Interviewer     string `json:"interviewer"`
	Reviewer        string `json:"reviewer"`
}

func (r CreateHouseholdRequest) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(r.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(r.Sitio) == "" {
		errs["sitio"] = "Sitio is required"
	}
	if strings.TrimSpace(r.OwnershipStatus) == "" {
		errs["ownership_status"] = "Ownership status is required"
	}
	if strings.TrimSpace(r.WaterType) == "" {
		errs["water_type"] = "Water type is required"
	}
	if strings.TrimSpace(r.ToiletType) == "" {
		errs["toilet_type"] = "Toilet type is required"
	}
	return errs
}

// ArchiveRequest carries the mandatory reason for soft-deleting a household.
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

// HouseholdView is the flattened display shape for household list rows.
type HouseholdView struct {
	ID              uint   `json:"id"`
	HhUUID          string `json:"hh_uuid"`
	HouseNumber     string `json:"house_number"`
	Address         string `json:"address"`
	Sitio           string `json:"sitio"`
	OwnershipStatus string `json:"ownership_status"`
	WaterType       string `json:"water_type"`
	ToiletType      string `json:"toilet_type"`
	DateOfVisit     string `json:"date_of_visit"`
	Interviewer     string `json:"interviewer"`
	MemberCount     int    `json:"member_count"`
	Status          string `json:"status"`
	DeleteReason    string `json:"delete_reason,omitempty"`
	DateEncoded     string `json:"date_encoded"`
	DateUpdated     string `json:"date_updated"`
	EncodedByID     uint   `json:"encoded_by_id"`
	UpdatedByID     uint   `json:"updated_by_id"`
}

// HouseholdFilter is the optional query-parameter bag for the household list.
type HouseholdFilter struct {
	Search          string
	Sitio           string
	OwnershipStatus string
	WaterType       string
	ToiletType      string
	DateEncodedFrom string
	DateEncodedTo   string
	DateUpdatedFrom string
	DateUpdatedTo   string
	EncodedBy       []uint
	UpdatedBy       []uint
	IncludeArchived bool
}
