package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_Write(t *testing.T) {
	tests := []struct {
		name     string
		options  WriteOptions
		expected string
	}{
		{
			name: "headers and records",
			options: WriteOptions{
				Headers: []string{"metric", "value"},
				Records: [][]string{{"total_revenue", "46805.82"}},
			},
			expected: "metric,value\ntotal_revenue,46805.82\n",
		},
		{
			name: "quotes fields with commas",
			options: WriteOptions{
				Records: [][]string{{"insight", "Average stock is 28.33, demand is 427.5"}},
			},
			expected: "insight,\"Average stock is 28.33, demand is 427.5\"\n",
		},
		{
			name: "bom prefix",
			options: WriteOptions{
				Headers:   []string{"metric"},
				BOMPrefix: true,
			},
			expected: "\xEF\xBB\xBFmetric\n",
		},
		{
			name:     "empty",
			options:  WriteOptions{},
			expected: "",
		},
	}

	writer := NewCSVWriter(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writer.Write(&buf, tt.options))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestCSVWriter_WriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "kpis.csv")
	report := Report{
		Headers: MetricHeaders,
		Records: [][]string{{"total_revenue", "46805.82"}, {"avg_defect_rate", "N/A"}},
	}

	require.NoError(t, NewCSVWriter(nil).WriteReportFile(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, append([][]string{MetricHeaders}, report.Records...), records)
}
