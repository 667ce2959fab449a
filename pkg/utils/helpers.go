package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateItemID generates a unique id for a new resume list item. Ids are
// assigned once at creation and never reused after deletion.
func GenerateItemID() string {
	return uuid.New().String()
}

// GenerateExportID generates the public id for an exported artifact. A caller
// supplied file name becomes the object's base name; otherwise a fresh uuid.
func GenerateExportID(resumeID, fileName string) string {
	name := GetStringOrDefault(sanitizeFileName(fileName), uuid.New().String())
	return fmt.Sprintf("exports/%s/%s", resumeID, name)
}

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFileName reduces a requested file name to a safe object base name
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".pdf")
	name = unsafeFileNameChars.ReplaceAllString(name, "-")
	return strings.Trim(name, "-.")
}

// FormatDuration formats a duration to a human-readable string
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// GetStringOrDefault returns the value if not empty, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
