package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateExportIDUsesRequestedFileName(t *testing.T) {
	id := GenerateExportID("r1", "Jane Doe Resume.pdf")
	assert.Equal(t, "exports/r1/Jane-Doe-Resume", id)

	id = GenerateExportID("r1", "../../etc/passwd")
	assert.Equal(t, "exports/r1/etc-passwd", id)
}

func TestGenerateExportIDFallsBackToGeneratedName(t *testing.T) {
	for _, fileName := range []string{"", "   ", "...", "///"} {
		id := GenerateExportID("r1", fileName)
		assert.True(t, strings.HasPrefix(id, "exports/r1/"), id)
		assert.Greater(t, len(id), len("exports/r1/"))
	}

	// generated names are unique per call
	assert.NotEqual(t, GenerateExportID("r1", ""), GenerateExportID("r1", ""))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 250 * time.Millisecond, want: "250ms"},
		{d: 2500 * time.Millisecond, want: "2.50s"},
		{d: 90 * time.Second, want: "1.5m"},
		{d: 90 * time.Minute, want: "1.5h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}

func TestGetStringOrDefault(t *testing.T) {
	assert.Equal(t, "value", GetStringOrDefault("value", "fallback"))
	assert.Equal(t, "fallback", GetStringOrDefault("", "fallback"))
}
