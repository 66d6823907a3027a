package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// NotAvailable is the JSON rendering of a metric the source data cannot support
const NotAvailable = "N/A"

// OptionalMetric is a numeric KPI that renders as "N/A" when its input
// column is absent from the source.
type OptionalMetric struct {
	Value     float64
	Available bool
}

// Metric returns an available metric
func Metric(v float64) OptionalMetric {
	return OptionalMetric{Value: v, Available: true}
}

// MarshalJSON renders the value or "N/A"
func (m OptionalMetric) MarshalJSON() ([]byte, error) {
	if !m.Available {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON accepts a number or "N/A"
func (m *OptionalMetric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte(`"`+NotAvailable+`"`)) {
		*m = OptionalMetric{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Metric(v)
	return nil
}

// String renders the metric for text output
func (m OptionalMetric) String() string {
	if !m.Available {
		return NotAvailable
	}
	b, _ := json.Marshal(m.Value)
	return string(b)
}

// RevenueKPIs are the sales and revenue scalars plus the per-category
// breakdown. Unknown product types count toward TotalRevenue and
// RevenueByProductType but not toward the fixed category fields.
type RevenueKPIs struct {
	TotalRevenue         float64            `json:"total_revenue"`
	TotalUnitsSold       int64              `json:"total_units_sold"`
	AvgDefectRate        OptionalMetric     `json:"avg_defect_rate"`
	AvgShippingCost      float64            `json:"avg_shipping_cost"`
	AvgLeadTime          float64            `json:"avg_lead_time"`
	SkinCareRevenue      float64            `json:"skin_care_revenue"`
	HairCareRevenue      float64            `json:"hair_care_revenue"`
	CosmeticsRevenue     float64            `json:"cosmetics_revenue"`
	FragranceRevenue     float64            `json:"fragrance_revenue"`
	OtherRevenue         float64            `json:"other_revenue"`
	RevenueByProductType map[string]float64 `json:"revenue_by_product_type"`
	TotalSupplyChainCost OptionalMetric     `json:"total_supply_chain_cost"`
	RecordCount          int                `json:"record_count"`
	Empty                bool               `json:"empty"`
}

// ScatterPoint is one (stock level, order quantity) pair for a SKU
type ScatterPoint struct {
	Product string  `json:"product"`
	SKU     string  `json:"sku"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// InventoryKPIs carries both the scatter data and the scalar summary
type InventoryKPIs struct {
	ScatterData             []ScatterPoint `json:"scatter_data"`
	AverageStockLevel       float64        `json:"average_stock_level"`
	LowStockSKUCount        int            `json:"low_stock_sku_count"`
	LowStockThreshold       float64        `json:"low_stock_threshold"`
	AvailabilityRatePercent float64        `json:"availability_rate_percent"`
	AvgDemandPerProduct     float64        `json:"avg_demand_per_product"`
	RecordCount             int            `json:"record_count"`
	Empty                   bool           `json:"empty"`
}

// LogisticsKPIs holds shipping scalars, per-carrier parallel arrays sorted
// by carrier name, and per-transport-mode maps.
type LogisticsKPIs struct {
	AverageShippingCost float64            `json:"average_shipping_cost"`
	AverageShippingTime float64            `json:"average_shipping_time"`
	Carriers            []string           `json:"carriers"`
	AvgShippingCost     []float64          `json:"avg_shipping_cost"`
	AvgShippingTime     []float64          `json:"avg_shipping_time"`
	CostByTransportMode map[string]float64 `json:"cost_by_transport_mode"`
	TimeByTransportMode map[string]float64 `json:"time_by_transport_mode"`
	RecordCount         int                `json:"record_count"`
	Empty               bool               `json:"empty"`
}

// InsightResponse answers a free-text question
type InsightResponse struct {
	Intent         string                 `json:"intent"`
	Confidence     float64                `json:"confidence"`
	Insights       []string               `json:"insights"`
	Metrics        map[string]interface{} `json:"metrics"`
	Recommendation string                 `json:"recommendation"`
}

// InsightSummary is the canned overview served by /ai-insights
type InsightSummary struct {
	Insights       []string `json:"insights"`
	Recommendation string   `json:"recommendation"`
}

// Dashboard bundles the three KPI groups computed from one load
type Dashboard struct {
	Revenue     RevenueKPIs   `json:"revenue"`
	Inventory   InventoryKPIs `json:"inventory"`
	Logistics   LogisticsKPIs `json:"logistics"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// StatusMessage is the root health payload
type StatusMessage struct {
	Message string `json:"message"`
}
