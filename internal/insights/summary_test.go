package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scpulse/internal/dataset"
	apperrors "scpulse/internal/errors"
)

func TestSummary(t *testing.T) {
	summary, err := Summary(table(t, header, records))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Haircare generates the highest revenue",
		"Demand variability is high across SKUs",
		"Inventory imbalance exists in multiple products",
	}, summary.Insights)
	assert.Equal(t, "Prioritize supply planning for haircare to avoid lost sales", summary.Recommendation)
}

func TestSummary_Empty(t *testing.T) {
	summary, err := Summary(dataset.Table{})
	require.NoError(t, err)
	assert.Len(t, summary.Insights, 1)
	assert.NotEmpty(t, summary.Recommendation)
}

func TestSummary_MissingRevenueColumn(t *testing.T) {
	_, err := Summary(table(t, []string{"Product type", "SKU"}, [][]string{{"skincare", "SKU0"}}))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}
