package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		p    float64
		want float64
	}{
		{"empty", nil, 0.25, 0},
		{"single", []float64{7}, 0.25, 7},
		{"interpolated", []float64{58, 53, 1, 23, 5, 30}, 0.25, 9.5},
		{"exact rank", []float64{1, 2, 3, 4, 5}, 0.25, 2},
		{"min", []float64{3, 1, 2}, 0, 1},
		{"max", []float64{3, 1, 2}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentile(tt.xs, tt.p), 1e-9)
		})
	}
}

func TestPercentile_DoesNotReorderInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Percentile(xs, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.35, round(2.345000001, 2))
	assert.Equal(t, 15.0, round(14.96, 1))
	assert.Equal(t, 0.0123, round(0.012345, 4))
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"skincare":  CategorySkincare,
		"Skin Care": CategorySkincare,
		"HAIRCARE":  CategoryHaircare,
		"cosmetics": CategoryCosmetics,
		"fragrance": CategoryFragrance,
		"other":     CategoryOther,
		"others":    CategoryOther,
		"widgets":   CategoryUnknown,
		"":          CategoryUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseCategory(in), in)
	}
	assert.Equal(t, "other", CategoryOther.String())
	assert.Equal(t, "unknown", Category(99).String())
}
