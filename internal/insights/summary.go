package insights

import (
	"fmt"
	"math"

	"scpulse/internal/dataset"
	"scpulse/pkg/contracts/domain"
)

// Summary builds the fixed overview served by /ai-insights, naming the
// product type with the highest revenue.
func Summary(t dataset.Table) (domain.InsightSummary, error) {
	_, top, _, ok, err := topCategory(t)
	if err != nil {
		return domain.InsightSummary{}, err
	}
	if !ok {
		return domain.InsightSummary{
			Insights:       []string{"No supply chain records are available yet"},
			Recommendation: "Load supply chain data to generate insights",
		}, nil
	}

	return domain.InsightSummary{
		Insights: []string{
			fmt.Sprintf("%s generates the highest revenue", capitalize(top)),
			"Demand variability is high across SKUs",
			"Inventory imbalance exists in multiple products",
		},
		Recommendation: fmt.Sprintf("Prioritize supply planning for %s to avoid lost sales", top),
	}, nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
