package kpi

import (
	"strings"

	"scpulse/internal/cleaning"
	"scpulse/internal/dataset"
	"scpulse/pkg/contracts/domain"
)

// LowStockPercentile is the stock-level quantile below which a SKU counts
// as low on stock
const LowStockPercentile = 0.25

func emptyInventory() domain.InventoryKPIs {
	return domain.InventoryKPIs{
		ScatterData: []domain.ScatterPoint{},
		Empty:       true,
	}
}

// Inventory computes the stock summary over every row of the cleaned table
// and the scatter data over rows holding both a stock level and an order
// quantity.
func Inventory(t dataset.Table) (domain.InventoryKPIs, error) {
	if t.Empty() {
		return emptyInventory(), nil
	}
	if err := requireColumns("inventory", t, cleaning.ColStockLevels, cleaning.ColOrderQuantities); err != nil {
		return domain.InventoryKPIs{}, err
	}

	stocks := values(t, cleaning.ColStockLevels)
	if len(stocks) == 0 {
		return emptyInventory(), nil
	}

	rows := cleaning.Require(t, cleaning.ColStockLevels, cleaning.ColOrderQuantities)
	scatter := make([]domain.ScatterPoint, 0, rows.Len())
	for _, r := range rows.Rows() {
		stock, _ := r.Get(cleaning.ColStockLevels).AsNumber()
		orders, _ := r.Get(cleaning.ColOrderQuantities).AsNumber()
		scatter = append(scatter, domain.ScatterPoint{
			Product: label(r, cleaning.ColProductType),
			SKU:     label(r, cleaning.ColSKU),
			X:       stock,
			Y:       orders,
		})
	}

	threshold := Percentile(stocks, LowStockPercentile)
	lowStock := 0
	for _, s := range stocks {
		if s < threshold {
			lowStock++
		}
	}

	return domain.InventoryKPIs{
		ScatterData:             scatter,
		AverageStockLevel:       round(mean(stocks), 2),
		LowStockSKUCount:        lowStock,
		LowStockThreshold:       round(threshold, 2),
		AvailabilityRatePercent: round(availabilityRate(t), 2),
		AvgDemandPerProduct:     round(mean(values(t, cleaning.ColProductsSold)), 2),
		RecordCount:             len(stocks),
	}, nil
}

// availabilityRate is the percentage of non-missing availability values
// equal to "yes", ignoring case
func availabilityRate(t dataset.Table) float64 {
	var flagged, available int
	for _, r := range t.Rows() {
		v := r.Get(cleaning.ColAvailability)
		if v.IsMissing() {
			continue
		}
		flagged++
		if strings.EqualFold(strings.TrimSpace(v.String()), "yes") {
			available++
		}
	}
	if flagged == 0 {
		return 0
	}
	return float64(available) / float64(flagged) * 100
}
