package exporter

import (
	"sort"

	"scpulse/pkg/contracts/domain"
)

// MetricHeaders is the header row of every metric/value report
var MetricHeaders = []string{"metric", "value"}

// Report is a tabular rendering of a KPI payload
type Report struct {
	Headers []string
	Records [][]string
}

func (r *Report) add(metric, value string) {
	r.Records = append(r.Records, []string{metric, value})
}

func newMetricReport() Report {
	return Report{Headers: MetricHeaders}
}

// sortedKeys returns map keys in alphabetical order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RevenueReport flattens revenue KPIs. Per product type revenue is keyed
// "revenue_by_product_type.<type>".
func RevenueReport(k domain.RevenueKPIs) Report {
	r := newMetricReport()
	r.add("total_revenue", formatFloat(k.TotalRevenue))
	r.add("total_units_sold", formatInt(k.TotalUnitsSold))
	r.add("avg_defect_rate", formatMetric(k.AvgDefectRate))
	r.add("avg_shipping_cost", formatFloat(k.AvgShippingCost))
	r.add("avg_lead_time", formatFloat(k.AvgLeadTime))
	r.add("skin_care_revenue", formatFloat(k.SkinCareRevenue))
	r.add("hair_care_revenue", formatFloat(k.HairCareRevenue))
	r.add("cosmetics_revenue", formatFloat(k.CosmeticsRevenue))
	r.add("fragrance_revenue", formatFloat(k.FragranceRevenue))
	r.add("other_revenue", formatFloat(k.OtherRevenue))
	r.add("total_supply_chain_cost", formatMetric(k.TotalSupplyChainCost))
	for _, name := range sortedKeys(k.RevenueByProductType) {
		r.add("revenue_by_product_type."+name, formatFloat(k.RevenueByProductType[name]))
	}
	r.add("record_count", formatInt(int64(k.RecordCount)))
	return r
}

// InventoryReport flattens the inventory summary
func InventoryReport(k domain.InventoryKPIs) Report {
	r := newMetricReport()
	r.add("average_stock_level", formatFloat(k.AverageStockLevel))
	r.add("low_stock_sku_count", formatInt(int64(k.LowStockSKUCount)))
	r.add("low_stock_threshold", formatFloat(k.LowStockThreshold))
	r.add("availability_rate_percent", formatFloat(k.AvailabilityRatePercent))
	r.add("avg_demand_per_product", formatFloat(k.AvgDemandPerProduct))
	r.add("record_count", formatInt(int64(k.RecordCount)))
	return r
}

// ScatterReport lists one row per (stock level, order quantity) point
func ScatterReport(k domain.InventoryKPIs) Report {
	r := Report{Headers: []string{"product", "sku", "stock_level", "order_quantity"}}
	for _, p := range k.ScatterData {
		r.Records = append(r.Records, []string{p.Product, p.SKU, formatFloat(p.X), formatFloat(p.Y)})
	}
	return r
}

// LogisticsReport flattens shipping scalars, carriers and transport modes.
// Group keys are "carrier.<name>.*" and "transport_mode.<mode>.*".
func LogisticsReport(k domain.LogisticsKPIs) Report {
	r := newMetricReport()
	r.add("average_shipping_cost", formatFloat(k.AverageShippingCost))
	r.add("average_shipping_time", formatFloat(k.AverageShippingTime))
	for i, carrier := range k.Carriers {
		if i < len(k.AvgShippingCost) {
			r.add("carrier."+carrier+".avg_shipping_cost", formatFloat(k.AvgShippingCost[i]))
		}
		if i < len(k.AvgShippingTime) {
			r.add("carrier."+carrier+".avg_shipping_time", formatFloat(k.AvgShippingTime[i]))
		}
	}
	for _, mode := range sortedKeys(k.CostByTransportMode) {
		r.add("transport_mode."+mode+".cost", formatFloat(k.CostByTransportMode[mode]))
	}
	for _, mode := range sortedKeys(k.TimeByTransportMode) {
		r.add("transport_mode."+mode+".time", formatFloat(k.TimeByTransportMode[mode]))
	}
	r.add("record_count", formatInt(int64(k.RecordCount)))
	return r
}

// InsightReport renders an answer: intent, confidence, each insight line,
// metrics in name order and the recommendation
func InsightReport(resp domain.InsightResponse) Report {
	r := newMetricReport()
	r.add("intent", resp.Intent)
	r.add("confidence", formatFloat(resp.Confidence))
	for _, line := range resp.Insights {
		r.add("insight", line)
	}
	for _, name := range sortedKeys(resp.Metrics) {
		r.add(name, formatValue(resp.Metrics[name]))
	}
	r.add("recommendation", resp.Recommendation)
	return r
}

// SummaryReport renders the canned insight summary
func SummaryReport(s domain.InsightSummary) Report {
	r := newMetricReport()
	for _, line := range s.Insights {
		r.add("insight", line)
	}
	r.add("recommendation", s.Recommendation)
	return r
}
