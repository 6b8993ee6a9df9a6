package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here
	for _, k := range []string{"PORT", "LINKGEST_API_KEY", "MAX_UPLOAD_BYTES", "CSV_FIELD_SIZE_LIMIT",
		"STRICT_FORMATS", "PDF_FALLBACK_PDFTOTEXT", "STATS_WINDOW", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, 1_000_000, cfg.CSVFieldSizeLimit)
	assert.False(t, cfg.StrictFormats)
	assert.True(t, cfg.PDFFallbackPdftotext)
	assert.Equal(t, time.Hour, cfg.StatsWindow)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Error(t, cfg.Validate(), "API key is required")
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("LINKGEST_API_KEY", "secret")
	t.Setenv("CSV_FIELD_SIZE_LIMIT", "-1")
	t.Setenv("STRICT_FORMATS", "true")
	t.Setenv("STATS_WINDOW", "5m")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, -1, cfg.CSVFieldSizeLimit)
	assert.True(t, cfg.StrictFormats)
	assert.Equal(t, 5*time.Minute, cfg.StatsWindow)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int64(52428800), cfg.MaxUploadBytes)
	assert.NoError(t, cfg.Validate())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
