package dataset

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	apperrors "scpulse/internal/errors"
)

type staticCredentials []byte

func (c staticCredentials) Credentials(context.Context) ([]byte, error) { return c, nil }

func newSheetsServer(t *testing.T, status int, body interface{}) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/sheet-123/values/"), r.URL.Path)
		assert.Contains(t, r.URL.Path, "Sheet1")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testSheetsSource(srv *httptest.Server, creds CredentialProvider) *SheetsSource {
	return NewSheetsSource("sheet-123", "Sheet1", creds, discardLogger(),
		WithClientOptions(
			option.WithEndpoint(srv.URL+"/"),
			option.WithHTTPClient(srv.Client()),
		))
}

func TestSheetsSource_Fetch(t *testing.T) {
	srv, calls := newSheetsServer(t, http.StatusOK, map[string]interface{}{
		"range":          "Sheet1!A1:D3",
		"majorDimension": "ROWS",
		"values": [][]interface{}{
			{"Product type ", "SKU", "Revenue generated", "Availability"},
			{"haircare", "SKU0", "8661.99", "Yes"},
			{"skincare", "SKU1", 7460.9},
		},
	})

	table, err := testSheetsSource(srv, staticCredentials("{}")).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)

	assert.Equal(t, []string{"Product type ", "SKU", "Revenue generated", "Availability"}, table.Columns())
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "8661.99", table.Rows()[0].Get("Revenue generated").String())
	num, ok := table.Rows()[1].Get("Revenue generated").AsNumber()
	require.True(t, ok)
	assert.Equal(t, 7460.9, num)
	assert.True(t, table.Rows()[1].Get("Availability").IsMissing())
}

func TestSheetsSource_EmptyWorksheet(t *testing.T) {
	srv, _ := newSheetsServer(t, http.StatusOK, map[string]interface{}{
		"range":          "Sheet1!A1:Z1000",
		"majorDimension": "ROWS",
	})

	table, err := testSheetsSource(srv, staticCredentials("{}")).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestSheetsSource_RemoteError(t *testing.T) {
	srv, _ := newSheetsServer(t, http.StatusNotFound, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    404,
			"message": "Requested entity was not found.",
			"status":  "NOT_FOUND",
		},
	})

	_, err := testSheetsSource(srv, staticCredentials("{}")).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeDataUnavailable))
	assert.False(t, retryable(err), "client errors are permanent")
}

func TestSheetsSource_ServerErrorIsRetryable(t *testing.T) {
	srv, _ := newSheetsServer(t, http.StatusServiceUnavailable, map[string]interface{}{
		"error": map[string]interface{}{"code": 503, "message": "backend unavailable"},
	})

	_, err := testSheetsSource(srv, staticCredentials("{}")).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, retryable(err))
}

func TestSheetsSource_MissingCredentials(t *testing.T) {
	srv, calls := newSheetsServer(t, http.StatusOK, map[string]interface{}{})

	_, err := testSheetsSource(srv, EnvFileCredentials{}).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
	assert.Zero(t, *calls)

	_, err = NewSheetsSource("sheet-123", "Sheet1", nil, nil).Fetch(context.Background())
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestEnvFileCredentials(t *testing.T) {
	ctx := context.Background()

	data, err := EnvFileCredentials{JSON: `{"type":"service_account"}`, File: "/ignored"}.Credentials(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"service_account"}`, string(data))

	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600))
	data, err = EnvFileCredentials{File: path}.Credentials(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o600))
	_, err = EnvFileCredentials{File: empty}.Credentials(ctx)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))

	_, err = EnvFileCredentials{File: filepath.Join(t.TempDir(), "missing.json")}.Credentials(ctx)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestWorksheetRange(t *testing.T) {
	assert.Equal(t, "'Sheet1'", worksheetRange("Sheet1"))
	assert.Equal(t, "'Bob''s data'", worksheetRange("Bob's data"))
}
