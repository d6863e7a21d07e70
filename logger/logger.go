package logger

import (
	"fmt"
	"log"
	"os"
)

var std = log.New(os.Stdout, "", log.LstdFlags)

// Success logs a success message to stdout
func Success(message string) {
	std.Printf("[SUCCESS] %s", message)
}

// Error logs an error message with the underlying error (may be nil)
func Error(message string, err error) {
	if err != nil {
		std.Printf("[ERROR] %s: %v", message, err)
		return
	}
	std.Printf("[ERROR] %s", message)
}

// Warning logs a warning message
func Warning(message string) {
	std.Printf("[WARNING] %s", message)
}

// Debug logs a debug message when APP_DEBUG is set
func Debug(message string) {
	if os.Getenv("APP_DEBUG") == "" {
		return
	}
	std.Printf("[DEBUG] %s", message)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	std.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}
