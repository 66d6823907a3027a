package kpi

import (
	"fmt"
	"math"
	"sort"

	"scpulse/internal/cleaning"
	"scpulse/internal/dataset"
	apperrors "scpulse/internal/errors"
)

// values returns the numeric cells of col, skipping missing ones
func values(t dataset.Table, col string) []float64 {
	out := make([]float64, 0, t.Len())
	for _, r := range t.Rows() {
		if v, ok := r.Get(col).AsNumber(); ok {
			out = append(out, v)
		}
	}
	return out
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}

// mean returns 0 for an empty slice
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return sum(xs) / float64(len(xs))
}

// Percentile returns the p-quantile (0..1) of xs using linear
// interpolation between closest ranks.
func Percentile(xs []float64, p float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	index := p * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func roundMap(m map[string]float64, places int) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = round(v, places)
	}
	return out
}

// requireColumns reports the first absent column as a configuration error
func requireColumns(group string, t dataset.Table, cols ...string) error {
	missing := cleaning.MissingColumns(t, cols...)
	if len(missing) == 0 {
		return nil
	}
	return apperrors.NewConfigError(
		fmt.Sprintf("%s KPIs require column %q", group, missing[0]), nil).
		WithContext("missing_columns", missing)
}

// label returns the text of a category cell, or "" when missing
func label(r dataset.Row, col string) string {
	return r.Get(col).String()
}
