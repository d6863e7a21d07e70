package log

import "time"

// Log is one persisted request/audit entry written by the async logger.
type Log struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	Method     string  `gorm:"size:10;index"`
	Path       string  `gorm:"size:255;index"`
	StatusCode int     `gorm:"index"`
	OperatorID *uint   `gorm:"index"`
	LatencyMs  int64   `gorm:"default:0"`
	Detail     *string `gorm:"size:1024"`
	CreatedAt  time.Time
}
