// Package exporter renders KPI payloads as flat metric/value reports and
// writes them as CSV.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(logger)
//	err := writer.WriteReport(os.Stdout, exporter.RevenueReport(kpis))
package exporter
