package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	apperrors "scpulse/internal/errors"
)

// SheetsSource reads one worksheet of a Google Sheets spreadsheet using a
// read-only service-account credential. The first row is the header.
type SheetsSource struct {
	spreadsheetID string
	worksheet     string
	credentials   CredentialProvider
	timeout       time.Duration
	clientOptions []option.ClientOption
	logger        *slog.Logger
}

// SheetsOption customizes a SheetsSource
type SheetsOption func(*SheetsSource)

// WithFetchTimeout bounds each remote read
func WithFetchTimeout(d time.Duration) SheetsOption {
	return func(s *SheetsSource) { s.timeout = d }
}

// WithClientOptions appends Google API client options, such as a custom
// endpoint or HTTP client.
func WithClientOptions(opts ...option.ClientOption) SheetsOption {
	return func(s *SheetsSource) { s.clientOptions = append(s.clientOptions, opts...) }
}

// NewSheetsSource creates a remote spreadsheet source
func NewSheetsSource(spreadsheetID, worksheet string, creds CredentialProvider, logger *slog.Logger, opts ...SheetsOption) *SheetsSource {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SheetsSource{
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		credentials:   creds,
		logger:        logger.With("component", "sheets_source"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kind returns the strategy name
func (s *SheetsSource) Kind() string { return "sheets" }

// Fetch reads the worksheet. A missing credential is a configuration
// error; remote failures are reported as data unavailable.
func (s *SheetsSource) Fetch(ctx context.Context) (Table, error) {
	if s.credentials == nil {
		return Table{}, apperrors.NewConfigError("no service account credentials available", nil)
	}
	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		return Table{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	opts := append([]option.ClientOption{
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	}, s.clientOptions...)

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return Table{}, apperrors.NewConfigError("failed to create sheets service", err)
	}

	start := time.Now()
	resp, err := srv.Spreadsheets.Values.Get(s.spreadsheetID, worksheetRange(s.worksheet)).Context(ctx).Do()
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read worksheet",
			slog.String("spreadsheet_id", s.spreadsheetID),
			slog.String("worksheet", s.worksheet),
			slog.String("error", err.Error()))
		return Table{}, apperrors.NewDataUnavailableError("failed to read worksheet", err).
			WithContext("worksheet", s.worksheet).
			AsTransient()
	}

	if len(resp.Values) == 0 {
		s.logger.WarnContext(ctx, "Worksheet returned no records",
			slog.String("spreadsheet_id", s.spreadsheetID),
			slog.String("worksheet", s.worksheet))
		return Table{}, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = cellText(cell)
	}

	records := make([][]Value, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]Value, len(raw))
		for i, cell := range raw {
			row[i] = cellValue(cell)
		}
		records = append(records, row)
	}

	table := FromValues(header, records)
	if table.Empty() {
		s.logger.WarnContext(ctx, "Worksheet has a header but no data rows",
			slog.String("worksheet", s.worksheet))
	}

	s.logger.DebugContext(ctx, "Worksheet read",
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(header)),
		slog.Duration("duration", time.Since(start)))
	return table, nil
}

// worksheetRange quotes a sheet title for A1 notation
func worksheetRange(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func cellValue(cell interface{}) Value {
	switch c := cell.(type) {
	case nil:
		return Missing()
	case string:
		if c == "" {
			return Missing()
		}
		return String(c)
	case float64:
		return Number(c)
	default:
		return String(fmt.Sprint(c))
	}
}

func cellText(cell interface{}) string {
	switch c := cell.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}
