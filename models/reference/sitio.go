package reference

// Sitio is a named geographic zone inside the barangay. Reference data only:
// rows are seeded at boot and looked up by name, never written by the
// registry workflows.
type Sitio struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
