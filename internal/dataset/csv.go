package dataset

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"strings"

	apperrors "scpulse/internal/errors"
)

// CSVSource reads a local delimited file whose first record is the header
type CSVSource struct {
	path   string
	logger *slog.Logger
}

// NewCSVSource creates a local CSV source
func NewCSVSource(path string, logger *slog.Logger) *CSVSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVSource{path: path, logger: logger.With("component", "csv_source")}
}

// Kind returns the strategy name
func (s *CSVSource) Kind() string { return "csv" }

// Fetch parses the whole file. Rows may be ragged.
func (s *CSVSource) Fetch(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return Table{}, apperrors.NewDataUnavailableError("failed to open data file", err).
			WithContext("path", s.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, apperrors.NewDataUnavailableError("failed to parse data file", err).
			WithContext("path", s.path)
	}

	if len(records) == 0 {
		s.logger.WarnContext(ctx, "Data file is empty", slog.String("path", s.path))
		return Table{}, nil
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	table := FromRecords(header, records[1:])
	s.logger.DebugContext(ctx, "Data file read",
		slog.String("path", s.path),
		slog.Int("rows", table.Len()))
	return table, nil
}
