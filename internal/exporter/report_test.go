package exporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scpulse/pkg/contracts/domain"
)

func lookup(t *testing.T, r Report, metric string) string {
	t.Helper()
	for _, rec := range r.Records {
		if rec[0] == metric {
			return rec[1]
		}
	}
	require.Failf(t, "metric not found", "%s", metric)
	return ""
}

func TestRevenueReport(t *testing.T) {
	r := RevenueReport(domain.RevenueKPIs{
		TotalRevenue:         46805.82,
		TotalUnitsSold:       2712,
		HairCareRevenue:      18239.74,
		RevenueByProductType: map[string]float64{"widgets": 7823.48, "haircare": 18239.74},
		TotalSupplyChainCost: domain.Metric(357.25),
		RecordCount:          7,
	})

	assert.Equal(t, MetricHeaders, r.Headers)
	assert.Equal(t, "46805.82", lookup(t, r, "total_revenue"))
	assert.Equal(t, "2712", lookup(t, r, "total_units_sold"))
	assert.Equal(t, "N/A", lookup(t, r, "avg_defect_rate"))
	assert.Equal(t, "357.25", lookup(t, r, "total_supply_chain_cost"))
	assert.Equal(t, "7823.48", lookup(t, r, "revenue_by_product_type.widgets"))

	var order []string
	for _, rec := range r.Records {
		if strings.HasPrefix(rec[0], "revenue_by_product_type.") {
			order = append(order, rec[0])
		}
	}
	assert.Equal(t, []string{"revenue_by_product_type.haircare", "revenue_by_product_type.widgets"}, order)
}

func TestInventoryAndScatterReports(t *testing.T) {
	k := domain.InventoryKPIs{
		ScatterData: []domain.ScatterPoint{
			{Product: "haircare", SKU: "SKU0", X: 58, Y: 96},
			{Product: "skincare", SKU: "SKU1", X: 53, Y: 37},
		},
		AverageStockLevel: 28.33,
		LowStockSKUCount:  2,
		LowStockThreshold: 9.5,
	}

	inv := InventoryReport(k)
	assert.Equal(t, "28.33", lookup(t, inv, "average_stock_level"))
	assert.Equal(t, "2", lookup(t, inv, "low_stock_sku_count"))
	assert.Equal(t, "9.5", lookup(t, inv, "low_stock_threshold"))

	scatter := ScatterReport(k)
	assert.Equal(t, []string{"product", "sku", "stock_level", "order_quantity"}, scatter.Headers)
	assert.Equal(t, [][]string{{"haircare", "SKU0", "58", "96"}, {"skincare", "SKU1", "53", "37"}}, scatter.Records)
}

func TestLogisticsReport(t *testing.T) {
	r := LogisticsReport(domain.LogisticsKPIs{
		AverageShippingCost: 4.95,
		AverageShippingTime: 5,
		Carriers:            []string{"Carrier A", "Carrier B"},
		AvgShippingCost:     []float64{6.81, 5.15},
		AvgShippingTime:     []float64{5, 3},
		CostByTransportMode: map[string]float64{"Road": 3.76, "Air": 5.73},
		TimeByTransportMode: map[string]float64{"Road": 5, "Air": 4},
	})

	assert.Equal(t, "4.95", lookup(t, r, "average_shipping_cost"))
	assert.Equal(t, "6.81", lookup(t, r, "carrier.Carrier A.avg_shipping_cost"))
	assert.Equal(t, "3", lookup(t, r, "carrier.Carrier B.avg_shipping_time"))
	assert.Equal(t, "5.73", lookup(t, r, "transport_mode.Air.cost"))
	assert.Equal(t, "5", lookup(t, r, "transport_mode.Road.time"))
}

func TestInsightReport(t *testing.T) {
	r := InsightReport(domain.InsightResponse{
		Intent:         "revenue",
		Confidence:     0.95,
		Insights:       []string{"Haircare leads in total revenue"},
		Metrics:        map[string]interface{}{"Top Category": "Haircare", "Top Revenue": 18239.74},
		Recommendation: "Strengthen forecasting for high-revenue categories",
	})

	assert.Equal(t, [][]string{
		{"intent", "revenue"},
		{"confidence", "0.95"},
		{"insight", "Haircare leads in total revenue"},
		{"Top Category", "Haircare"},
		{"Top Revenue", "18239.74"},
		{"recommendation", "Strengthen forecasting for high-revenue categories"},
	}, r.Records)
}

func TestSummaryReport(t *testing.T) {
	r := SummaryReport(domain.InsightSummary{
		Insights:       []string{"a", "b"},
		Recommendation: "c",
	})
	assert.Equal(t, [][]string{{"insight", "a"}, {"insight", "b"}, {"recommendation", "c"}}, r.Records)
}
