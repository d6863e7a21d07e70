package user

import "time"

// SystemAccount is an authenticated operator of the registry. Row id 1
// ("System") is seeded as the fallback identity for unauthenticated writes.
type SystemAccount struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Role      string `gorm:"size:50;default:'encoder';index" json:"role"`
	IsActive  bool   `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}
