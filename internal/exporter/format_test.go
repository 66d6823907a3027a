package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scpulse/pkg/contracts/domain"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero value", input: 0.0, expected: "0"},
		{name: "positive integer", input: 123.0, expected: "123"},
		{name: "negative integer", input: -456.0, expected: "-456"},
		{name: "two decimals", input: 46805.82, expected: "46805.82"},
		{name: "trailing zeros dropped", input: 13.40, expected: "13.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(tt.input))
		})
	}
}

func TestFormatMetric(t *testing.T) {
	assert.Equal(t, "N/A", formatMetric(domain.OptionalMetric{}))
	assert.Equal(t, "2.73", formatMetric(domain.Metric(2.73)))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{name: "string", input: "Haircare", expected: "Haircare"},
		{name: "float", input: 18239.74, expected: "18239.74"},
		{name: "int", input: 2, expected: "2"},
		{name: "int64", input: int64(2712), expected: "2712"},
		{name: "bool", input: true, expected: "true"},
		{name: "unavailable metric", input: domain.OptionalMetric{}, expected: "N/A"},
		{name: "nil", input: nil, expected: ""},
		{name: "unsupported", input: []int{1}, expected: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}
