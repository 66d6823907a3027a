package exporter

import (
	"strconv"

	"scpulse/pkg/contracts/domain"
)

// formatFloat formats a float64 with the shortest exact representation
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatBool formats a boolean value for CSV output
func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

// formatMetric renders an optional metric, "N/A" when unavailable
func formatMetric(m domain.OptionalMetric) string {
	if !m.Available {
		return domain.NotAvailable
	}
	return formatFloat(m.Value)
}

// formatValue renders a loosely typed insight metric
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatFloat(val)
	case int:
		return formatInt(int64(val))
	case int64:
		return formatInt(val)
	case bool:
		return formatBool(val)
	case domain.OptionalMetric:
		return formatMetric(val)
	case nil:
		return ""
	default:
		return domain.NotAvailable
	}
}
