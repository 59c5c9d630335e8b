package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"default_template": "modern",
		"page_size": "a4",
		"compress": false,
		"output_dir": "build",
		"log_level": "debug",
		"port": 9000
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "modern", cfg.DefaultTemplate)
	assert.Equal(t, "a4", cfg.PageSize)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, 9000, cfg.Port)
	assert.False(t, cfg.CompressPDF())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty", cfg: Config{}},
		{name: "valid", cfg: Config{PageSize: "letter", Port: 8080, LogLevel: "warn"}},
		{name: "bad page size", cfg: Config{PageSize: "tabloid"}, wantErr: "unknown page size"},
		{name: "bad port", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "bad log level", cfg: Config{LogLevel: "chatty"}, wantErr: "log_level"},
		{name: "missing catalog", cfg: Config{Catalog: "/nonexistent/catalog.yaml"}, wantErr: "catalog file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	off := false
	cfg := &Config{
		DefaultTemplate: "minimal",
		Compress:        &off,
	}

	result := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "minimal", result.DefaultTemplate)
	assert.Equal(t, DefaultPageSize, result.PageSize)
	assert.Equal(t, DefaultOutputDir, result.OutputDir)
	assert.Equal(t, DefaultLogLevel, result.LogLevel)
	assert.Equal(t, DefaultPort, result.Port)
	assert.False(t, result.CompressPDF())

	// Original is untouched
	assert.Empty(t, cfg.PageSize)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{PageSize: "a4"}

	result := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "a4", result.PageSize)
	assert.Empty(t, result.DefaultTemplate)
	assert.True(t, result.CompressPDF())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("RESUME_TEMPLATE", "modern")
	t.Setenv("RESUME_PAGE_SIZE", "a4")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "modern", cfg.DefaultTemplate)

	page, err := cfg.Page()
	require.NoError(t, err)
	assert.Equal(t, layout.A4, page)
}

func TestApplyEnv_IgnoresBadPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, DefaultPort, cfg.Port)
}
