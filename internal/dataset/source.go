package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"scpulse/internal/config"
	apperrors "scpulse/internal/errors"
)

// Source produces a raw record table. Implementations return header names
// verbatim and never mutate a table after returning it.
type Source interface {
	Fetch(ctx context.Context) (Table, error)
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func(ctx context.Context) (Table, error)

// Fetch calls f(ctx)
func (f SourceFunc) Fetch(ctx context.Context) (Table, error) {
	return f(ctx)
}

// Describer is implemented by sources that can name their strategy
type Describer interface {
	Kind() string
}

// KindOf returns the strategy name of src, or "custom" when unknown
func KindOf(src Source) string {
	if d, ok := src.(Describer); ok {
		return d.Kind()
	}
	return "custom"
}

// CredentialProvider yields a service-account key in JSON form
type CredentialProvider interface {
	Credentials(ctx context.Context) ([]byte, error)
}

// EnvFileCredentials reads credentials from an inline JSON blob, usually
// supplied through the environment, falling back to a key file on disk.
type EnvFileCredentials struct {
	JSON string
	File string
}

// Credentials returns the first configured credential
func (c EnvFileCredentials) Credentials(ctx context.Context) ([]byte, error) {
	if strings.TrimSpace(c.JSON) != "" {
		return []byte(c.JSON), nil
	}
	if c.File == "" {
		return nil, apperrors.NewConfigError("no service account credentials available", nil)
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read credentials file", err).
			WithContext("path", c.File)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, apperrors.NewConfigError("credentials file is empty", nil).
			WithContext("path", c.File)
	}
	return data, nil
}

// NewSource builds the configured loader strategy wrapped in the retry
// policy from cfg.
func NewSource(cfg config.DataSourceConfig, logger *slog.Logger) (Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewConfigError("invalid data source configuration", err)
	}

	var src Source
	switch cfg.Kind {
	case config.SourceSheets:
		src = NewSheetsSource(cfg.SheetID, cfg.WorksheetName,
			EnvFileCredentials{JSON: cfg.CredentialsJSON, File: cfg.CredentialsFile},
			logger, WithFetchTimeout(cfg.FetchTimeout))
	case config.SourceCSV:
		src = NewCSVSource(cfg.FilePath, logger)
	case config.SourceXLSX:
		src = NewXLSXSource(cfg.FilePath, cfg.SheetName, logger)
	default:
		return nil, apperrors.NewConfigError(fmt.Sprintf("unsupported data source kind %q", cfg.Kind), nil)
	}

	policy := RetryPolicy{
		MaxAttempts: cfg.RetryAttempts,
		BaseDelay:   cfg.RetryBaseDelay,
		MaxDelay:    cfg.RetryMaxDelay,
	}
	return WithRetry(src, policy, logger), nil
}
