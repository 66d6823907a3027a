// Package insights answers free-text supply chain questions by routing them
// to a fixed, ordered list of intents.
package insights

import (
	"fmt"
	"strings"
	"unicode"

	"scpulse/internal/cleaning"
	"scpulse/internal/dataset"
	"scpulse/internal/kpi"
	"scpulse/pkg/contracts/domain"
)

// Intent names reported in InsightResponse.Intent
const (
	IntentRevenue     = "revenue"
	IntentExplanatory = "explanatory"
	IntentInventory   = "inventory"
	IntentLogistics   = "logistics"
	IntentDefault     = "default"
)

// DefaultConfidence is reported when no intent matches
const DefaultConfidence = 0.75

// Inventory status labels
const (
	StatusHealthy = "Healthy"
	StatusAtRisk  = "At Risk"
)

type handler func(t dataset.Table) (domain.InsightResponse, bool, error)

// intent pairs a keyword guard with the handler that builds its response.
// A handler returns ok=false when the table holds nothing it can use.
type intent struct {
	name       string
	keywords   []string
	confidence float64
	handle     handler
}

func (i intent) matches(question string) bool {
	for _, k := range i.keywords {
		if strings.Contains(question, k) {
			return true
		}
	}
	return false
}

// intents are evaluated in order; the first match wins
var intents = []intent{
	{name: IntentRevenue, keywords: []string{"revenue", "sales"}, confidence: 0.95, handle: answerRevenue},
	{name: IntentExplanatory, keywords: []string{"why"}, confidence: 0.85, handle: answerExplanatory},
	{name: IntentInventory, keywords: []string{"inventory", "stock"}, confidence: 0.93, handle: answerInventory},
	{name: IntentLogistics, keywords: []string{"logistics", "shipping", "carrier", "delivery"}, confidence: 0.90, handle: answerLogistics},
}

func route(question string) (intent, bool) {
	q := strings.ToLower(question)
	for _, in := range intents {
		if in.matches(q) {
			return in, true
		}
	}
	return intent{}, false
}

// Classify returns the name of the intent a question routes to
func Classify(question string) string {
	if in, ok := route(question); ok {
		return in.name
	}
	return IntentDefault
}

// Answer routes a question to its intent and computes the response from t.
// An empty table, an unmatched question or an intent without usable rows
// yields the default response. Missing required columns surface as
// configuration errors.
func Answer(question string, t dataset.Table) (domain.InsightResponse, error) {
	in, ok := route(question)
	if !ok || t.Empty() {
		return defaultResponse(), nil
	}

	resp, ok, err := in.handle(t)
	if err != nil {
		return domain.InsightResponse{}, err
	}
	if !ok {
		return defaultResponse(), nil
	}

	resp.Intent = in.name
	resp.Confidence = in.confidence
	return resp, nil
}

func defaultResponse() domain.InsightResponse {
	return domain.InsightResponse{
		Intent:         IntentDefault,
		Confidence:     DefaultConfidence,
		Insights:       []string{"Ask about revenue, inventory, or logistics"},
		Metrics:        map[string]interface{}{},
		Recommendation: "Use the AI Copilot for operational insights",
	}
}

// topCategory finds the leading product type over the rows counted in the
// revenue KPIs
func topCategory(t dataset.Table) (domain.RevenueKPIs, string, float64, bool, error) {
	rev, err := kpi.Revenue(t)
	if err != nil || rev.Empty {
		return rev, "", 0, false, err
	}
	name, revenue, ok := kpi.TopProductType(cleaning.Require(t, cleaning.ColRevenue, cleaning.ColProductsSold))
	return rev, name, revenue, ok, nil
}

func answerRevenue(t dataset.Table) (domain.InsightResponse, bool, error) {
	rev, top, topRevenue, ok, err := topCategory(t)
	if err != nil || !ok {
		return domain.InsightResponse{}, false, err
	}

	return domain.InsightResponse{
		Insights: []string{
			fmt.Sprintf("%s leads in total revenue", capitalize(top)),
		},
		Metrics: map[string]interface{}{
			"Top Category":  top,
			"Top Revenue":   roundTo(topRevenue, 2),
			"Total Revenue": rev.TotalRevenue,
		},
		Recommendation: "Strengthen forecasting for high-revenue categories",
	}, true, nil
}

func answerExplanatory(t dataset.Table) (domain.InsightResponse, bool, error) {
	rev, top, topRevenue, ok, err := topCategory(t)
	if err != nil || !ok {
		return domain.InsightResponse{}, false, err
	}

	share := 0.0
	if total := kpi.TotalRevenue(t); total > 0 {
		share = topRevenue / total * 100
	}

	insights := []string{
		fmt.Sprintf("%s accounts for %.1f%% of total revenue", capitalize(top), share),
		fmt.Sprintf("Average lead time is %.1f days across products", rev.AvgLeadTime),
	}
	metrics := map[string]interface{}{
		"Top Category":    top,
		"Revenue Share %": roundTo(share, 1),
		"Avg Lead Time":   rev.AvgLeadTime,
	}
	if rev.AvgDefectRate.Available {
		insights = append(insights, fmt.Sprintf("Average defect rate is %.2f%%", rev.AvgDefectRate.Value))
		metrics["Avg Defect Rate"] = rev.AvgDefectRate.Value
	}

	return domain.InsightResponse{
		Insights:       insights,
		Metrics:        metrics,
		Recommendation: "Review lead times and defect rates in the categories that drive revenue",
	}, true, nil
}

func answerInventory(t dataset.Table) (domain.InsightResponse, bool, error) {
	inv, err := kpi.Inventory(t)
	if err != nil || inv.Empty {
		return domain.InsightResponse{}, false, err
	}

	status := InventoryStatus(inv)
	return domain.InsightResponse{
		Insights: []string{
			fmt.Sprintf("Average stock level is %.2f units against average demand of %.2f units",
				inv.AverageStockLevel, inv.AvgDemandPerProduct),
			fmt.Sprintf("%d SKUs are below the low-stock threshold of %.2f units",
				inv.LowStockSKUCount, inv.LowStockThreshold),
			fmt.Sprintf("Inventory status: %s", status),
		},
		Metrics: map[string]interface{}{
			"Average Stock":  inv.AverageStockLevel,
			"Average Demand": inv.AvgDemandPerProduct,
			"Low Stock SKUs": inv.LowStockSKUCount,
			"Status":         status,
		},
		Recommendation: "Rebalance safety stock toward SKUs below the low-stock threshold",
	}, true, nil
}

// InventoryStatus is Healthy when average stock covers average demand
func InventoryStatus(inv domain.InventoryKPIs) string {
	if inv.AverageStockLevel >= inv.AvgDemandPerProduct {
		return StatusHealthy
	}
	return StatusAtRisk
}

func answerLogistics(t dataset.Table) (domain.InsightResponse, bool, error) {
	lg, err := kpi.Logistics(t)
	if err != nil || lg.Empty {
		return domain.InsightResponse{}, false, err
	}

	insights := []string{
		fmt.Sprintf("Average shipping cost is %.2f per shipment", lg.AverageShippingCost),
		fmt.Sprintf("Average shipping time is %.2f days", lg.AverageShippingTime),
	}
	metrics := map[string]interface{}{
		"Avg Shipping Cost": lg.AverageShippingCost,
		"Avg Shipping Time": lg.AverageShippingTime,
	}
	if carrier, cost, ok := cheapestCarrier(lg); ok {
		insights = append(insights, fmt.Sprintf("%s has the lowest average shipping cost (%.2f)", carrier, cost))
		metrics["Lowest Cost Carrier"] = carrier
	}

	return domain.InsightResponse{
		Insights:       insights,
		Metrics:        metrics,
		Recommendation: "Shift volume toward lower-cost carriers where shipping times allow",
	}, true, nil
}

// cheapestCarrier returns the first carrier with the lowest average cost
func cheapestCarrier(lg domain.LogisticsKPIs) (string, float64, bool) {
	if len(lg.Carriers) == 0 {
		return "", 0, false
	}
	best := 0
	for i := 1; i < len(lg.Carriers); i++ {
		if lg.AvgShippingCost[i] < lg.AvgShippingCost[best] {
			best = i
		}
	}
	return lg.Carriers[best], lg.AvgShippingCost[best], true
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
