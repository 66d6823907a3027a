package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scpulse/internal/dataset"
	apperrors "scpulse/internal/errors"
)

func TestLogistics(t *testing.T) {
	kpis, err := Logistics(fixtureTable(t))
	require.NoError(t, err)

	assert.False(t, kpis.Empty)
	assert.Equal(t, 7, kpis.RecordCount, "a row with N/A stock still counts")
	assert.InDelta(t, 4.95, kpis.AverageShippingCost, 1e-9)
	assert.InDelta(t, 5.0, kpis.AverageShippingTime, 1e-9)

	assert.Equal(t, []string{"Carrier A", "Carrier B", "Carrier C"}, kpis.Carriers)
	assert.InDeltaSlice(t, []float64{6.81, 5.15, 2.81}, kpis.AvgShippingCost, 1e-9)
	assert.InDeltaSlice(t, []float64{5, 3, 8}, kpis.AvgShippingTime, 1e-9)

	assert.Equal(t, map[string]float64{"Air": 5.73, "Rail": 8.05, "Road": 3.76, "Sea": 3.88}, kpis.CostByTransportMode)
	assert.Equal(t, map[string]float64{"Air": 4, "Rail": 2, "Road": 5, "Sea": 10}, kpis.TimeByTransportMode)
}

func TestLogistics_ParallelArraysAligned(t *testing.T) {
	kpis, err := Logistics(fixtureTable(t))
	require.NoError(t, err)
	assert.Len(t, kpis.AvgShippingCost, len(kpis.Carriers))
	assert.Len(t, kpis.AvgShippingTime, len(kpis.Carriers))
}

func TestLogistics_OnlyTransportModes(t *testing.T) {
	header, records := withoutColumn("Shipping carriers")
	kpis, err := Logistics(cleanedTable(t, header, records))
	require.NoError(t, err)
	assert.Empty(t, kpis.Carriers)
	assert.Len(t, kpis.CostByTransportMode, 4)
}

func TestLogistics_MissingGroupingColumns(t *testing.T) {
	table := cleanedTable(t, []string{"Shipping costs", "Shipping times"}, [][]string{{"1", "2"}})
	_, err := Logistics(table)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestLogistics_MissingShippingTimesIsNotAliased(t *testing.T) {
	header, records := withoutColumn("Shipping times")
	_, err := Logistics(cleanedTable(t, header, records))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
	assert.Contains(t, err.Error(), "shipping_times")
}

func TestLogistics_MeansUseOwnColumn(t *testing.T) {
	table := cleanedTable(t,
		[]string{"Shipping costs", "Shipping times", "Shipping carriers"},
		[][]string{
			{"10", "", "Carrier A"},
			{"", "4", "Carrier A"},
			{"20", "6", "Carrier A"},
		})

	kpis, err := Logistics(table)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, kpis.AverageShippingCost, 1e-9)
	assert.InDelta(t, 5.0, kpis.AverageShippingTime, 1e-9)
	assert.InDeltaSlice(t, []float64{15}, kpis.AvgShippingCost, 1e-9)
	assert.InDeltaSlice(t, []float64{5}, kpis.AvgShippingTime, 1e-9)
}

func TestLogistics_Empty(t *testing.T) {
	kpis, err := Logistics(dataset.Table{})
	require.NoError(t, err)
	assert.True(t, kpis.Empty)
	assert.NotNil(t, kpis.Carriers)
	assert.NotNil(t, kpis.CostByTransportMode)
}
