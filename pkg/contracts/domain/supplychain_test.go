package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalMetric_JSON(t *testing.T) {
	kpis := RevenueKPIs{
		AvgDefectRate:        OptionalMetric{},
		TotalSupplyChainCost: Metric(1234.5),
	}

	data, err := json.Marshal(kpis)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "N/A", raw["avg_defect_rate"])
	assert.Equal(t, 1234.5, raw["total_supply_chain_cost"])

	var decoded RevenueKPIs
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.AvgDefectRate.Available)
	assert.Equal(t, Metric(1234.5), decoded.TotalSupplyChainCost)
}

func TestOptionalMetric_String(t *testing.T) {
	assert.Equal(t, "N/A", OptionalMetric{}.String())
	assert.Equal(t, "0.0123", Metric(0.0123).String())
}

func TestOptionalMetric_UnmarshalRejectsText(t *testing.T) {
	var m OptionalMetric
	assert.Error(t, json.Unmarshal([]byte(`"unknown"`), &m))
}
