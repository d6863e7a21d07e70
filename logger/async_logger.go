package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logModel "github.com/Yohhannn/Barangay-Profiling-Statistics-sub000/models/log"
)

// AsyncLogger persists request/audit entries through a buffered channel so the
// request path never blocks on the log table.
type AsyncLogger struct {
	db      *gorm.DB
	entries chan logModel.Log
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		entries: make(chan logModel.Log, 256),
	}
}

// Enqueue hands an entry to the background writer. Entries are dropped when the
// buffer is full rather than blocking the request.
func (l *AsyncLogger) Enqueue(entry logModel.Log) {
	select {
	case l.entries <- entry:
	default:
		Warning("Async log buffer full, dropping entry")
	}
}

// ProcessLog drains the channel into the logs table. Run in its own goroutine.
func (l *AsyncLogger) ProcessLog() {
	for entry := range l.entries {
		if err := l.db.Create(&entry).Error; err != nil {
			Error("Failed to persist log entry", err)
		}
	}
}

// Close stops the background writer after the channel drains.
func (l *AsyncLogger) Close() {
	close(l.entries)
}

// RequestLogger returns a fiber middleware that records every request.
func (l *AsyncLogger) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		var operatorID *uint
		if id, ok := c.Locals("operator_id").(uint); ok {
			operatorID = &id
		}

		l.Enqueue(logModel.Log{
			Method:     c.Method(),
			Path:       c.Path(),
			StatusCode: c.Response().StatusCode(),
			OperatorID: operatorID,
			LatencyMs:  time.Since(start).Milliseconds(),
			CreatedAt:  time.Now(),
		})
		return err
	}
}
