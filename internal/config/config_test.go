package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests the Load function with various scenarios
func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		fileContent string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no env vars",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8000, cfg.Server.Port)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 25*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Security.AllowedOrigins)
				assert.True(t, cfg.Security.RateLimit.Enabled)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, SourceCSV, cfg.DataSource.Kind)
				assert.Equal(t, "Sheet1", cfg.DataSource.WorksheetName)
				assert.Equal(t, 3, cfg.DataSource.RetryAttempts)
				assert.Equal(t, 500*time.Millisecond, cfg.DataSource.RetryBaseDelay)
			},
		},
		{
			name: "sheets source from env",
			env: map[string]string{
				"SCPULSE_DATASOURCE_KIND":             "Sheets",
				"SCPULSE_DATASOURCE_SHEET_ID":         "sheet-123",
				"SCPULSE_DATASOURCE_CREDENTIALS_FILE": "/etc/secrets/key.json",
				"SCPULSE_SECURITY_ALLOWED_ORIGINS":    "https://a.example,https://b.example",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, SourceSheets, cfg.DataSource.Kind)
				assert.Equal(t, "sheet-123", cfg.DataSource.SheetID)
				assert.Equal(t, "/etc/secrets/key.json", cfg.DataSource.CredentialsFile)
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
			},
		},
		{
			name:    "sheets source without sheet id",
			env:     map[string]string{"SCPULSE_DATASOURCE_KIND": "sheets"},
			wantErr: true,
		},
		{
			name:    "unknown source kind",
			env:     map[string]string{"SCPULSE_DATASOURCE_KIND": "postgres"},
			wantErr: true,
		},
		{
			name:    "invalid port",
			env:     map[string]string{"SCPULSE_SERVER_PORT": "70000"},
			wantErr: true,
		},
		{
			name:    "invalid logging output",
			env:     map[string]string{"SCPULSE_LOGGING_OUTPUT": "syslog"},
			wantErr: true,
		},
		{
			name: "yaml file fills unset values",
			fileContent: `
server:
  port: 9100
datasource:
  kind: xlsx
  file_path: data/records.xlsx
  sheet_name: Records
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9100, cfg.Server.Port)
				assert.Equal(t, SourceXLSX, cfg.DataSource.Kind)
				assert.Equal(t, "data/records.xlsx", cfg.DataSource.FilePath)
				assert.Equal(t, "Records", cfg.DataSource.SheetName)
			},
		},
		{
			name: "env wins over yaml file",
			env:  map[string]string{"SCPULSE_SERVER_PORT": "8181"},
			fileContent: `
server:
  port: 9100
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8181, cfg.Server.Port)
			},
		},
		{
			name:        "malformed yaml file",
			fileContent: "server: [port",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if tt.fileContent != "" {
				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.fileContent), 0o644))
				t.Setenv("SCPULSE_CONFIG_FILE", path)
			}

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestDataSourceConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DataSourceConfig
		wantErr bool
	}{
		{"csv with path", DataSourceConfig{Kind: "csv", FilePath: "a.csv", RetryAttempts: 1}, false},
		{"xlsx without path", DataSourceConfig{Kind: "xlsx", RetryAttempts: 1}, true},
		{"sheets complete", DataSourceConfig{Kind: "sheets", SheetID: "id", WorksheetName: "Sheet1", RetryAttempts: 3}, false},
		{"sheets without worksheet", DataSourceConfig{Kind: "sheets", SheetID: "id", RetryAttempts: 3}, true},
		{"zero retry attempts", DataSourceConfig{Kind: "csv", FilePath: "a.csv"}, true},
		{"empty kind", DataSourceConfig{FilePath: "a.csv", RetryAttempts: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.validate())
	assert.Equal(t, SourceCSV, cfg.DataSource.Kind)
}
