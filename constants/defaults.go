package constants

// Default values substituted when an optional field is omitted at creation time.
const (
	DefaultEmploymentStatus     = "Unemployed"
	DefaultSocioEconomicStatus  = "Non-NHTS"
	DefaultHealthClassification = "Healthy"
	DefaultFamilyPlanningStatus = "New Acceptor"
	DefaultPhilhealthCategory   = "Unknown"
	DefaultCivilStatus          = "Single"

	// ValueNotAvailable is the display fallback for missing optional strings.
	ValueNotAvailable = "N/A"

	// FilterAll is the sentinel a categorical filter sends to mean "no restriction".
	FilterAll = "All"
)

// FallbackOperatorID is the SystemAccount used to stamp records when no
// authenticated operator is present.
const FallbackOperatorID uint = 1

const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// DateLayoutInput is the wire format for submitted dates.
const DateLayoutInput = "2006-01-02"

// DateLayoutDisplay is the human-readable format used by list views.
const DateLayoutDisplay = "Jan 02, 2006"
