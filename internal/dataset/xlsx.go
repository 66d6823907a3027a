package dataset

import (
	"context"
	"log/slog"

	"github.com/xuri/excelize/v2"

	apperrors "scpulse/internal/errors"
)

// XLSXSource reads one sheet of a local Excel workbook. An empty sheet
// name selects the first sheet.
type XLSXSource struct {
	path   string
	sheet  string
	logger *slog.Logger
}

// NewXLSXSource creates a local workbook source
func NewXLSXSource(path, sheet string, logger *slog.Logger) *XLSXSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXSource{path: path, sheet: sheet, logger: logger.With("component", "xlsx_source")}
}

// Kind returns the strategy name
func (s *XLSXSource) Kind() string { return "xlsx" }

// Fetch reads every row of the selected sheet
func (s *XLSXSource) Fetch(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return Table{}, apperrors.NewDataUnavailableError("failed to open workbook", err).
			WithContext("path", s.path)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, apperrors.NewDataUnavailableError("workbook has no sheets", nil).
				WithContext("path", s.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, apperrors.NewDataUnavailableError("failed to read sheet", err).
			WithContext("path", s.path).
			WithContext("sheet", sheet)
	}

	if len(rows) == 0 {
		s.logger.WarnContext(ctx, "Sheet is empty",
			slog.String("path", s.path),
			slog.String("sheet", sheet))
		return Table{}, nil
	}

	table := FromRecords(rows[0], rows[1:])
	s.logger.DebugContext(ctx, "Sheet read",
		slog.String("sheet", sheet),
		slog.Int("rows", table.Len()))
	return table, nil
}
