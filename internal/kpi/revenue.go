package kpi

import (
	"math"
	"sort"

	"scpulse/internal/cleaning"
	"scpulse/internal/dataset"
	"scpulse/pkg/contracts/domain"
)

// UnspecifiedProductType labels rows without a product type
const UnspecifiedProductType = "unspecified"

var revenueColumns = []string{
	cleaning.ColProductType,
	cleaning.ColRevenue,
	cleaning.ColProductsSold,
	cleaning.ColShippingCosts,
	cleaning.ColLeadTimes,
}

func emptyRevenue() domain.RevenueKPIs {
	return domain.RevenueKPIs{
		RevenueByProductType: map[string]float64{},
		Empty:                true,
	}
}

// Revenue computes sales and revenue KPIs over rows holding both revenue
// and units sold.
func Revenue(t dataset.Table) (domain.RevenueKPIs, error) {
	if t.Empty() {
		return emptyRevenue(), nil
	}
	if err := requireColumns("revenue", t, revenueColumns...); err != nil {
		return domain.RevenueKPIs{}, err
	}

	rows := cleaning.Require(t, cleaning.ColRevenue, cleaning.ColProductsSold)
	if rows.Empty() {
		return emptyRevenue(), nil
	}

	byType := RevenueByProductType(rows)
	breakdown := make(map[Category]float64, len(Categories))
	for productType, revenue := range byType {
		breakdown[ParseCategory(productType)] += revenue
	}

	kpis := domain.RevenueKPIs{
		TotalRevenue:         round(TotalRevenue(rows), 2),
		TotalUnitsSold:       int64(math.Round(sum(values(rows, cleaning.ColProductsSold)))),
		AvgShippingCost:      round(mean(values(rows, cleaning.ColShippingCosts)), 2),
		AvgLeadTime:          round(mean(values(rows, cleaning.ColLeadTimes)), 1),
		SkinCareRevenue:      round(breakdown[CategorySkincare], 2),
		HairCareRevenue:      round(breakdown[CategoryHaircare], 2),
		CosmeticsRevenue:     round(breakdown[CategoryCosmetics], 2),
		FragranceRevenue:     round(breakdown[CategoryFragrance], 2),
		OtherRevenue:         round(breakdown[CategoryOther], 2),
		RevenueByProductType: roundMap(byType, 2),
		RecordCount:          rows.Len(),
	}

	if rows.HasColumn(cleaning.ColDefectRates) {
		if rates := values(rows, cleaning.ColDefectRates); len(rates) > 0 {
			kpis.AvgDefectRate = domain.Metric(round(mean(rates), 4))
		}
	}

	if rows.HasColumn(cleaning.ColManufacturingCosts) {
		total := sum(values(rows, cleaning.ColManufacturingCosts)) + sum(values(rows, cleaning.ColShippingCosts))
		kpis.TotalSupplyChainCost = domain.Metric(round(total, 2))
	}

	return kpis, nil
}

// TotalRevenue is the unrounded revenue sum over rows holding both revenue
// and units sold
func TotalRevenue(t dataset.Table) float64 {
	return sum(values(cleaning.Require(t, cleaning.ColRevenue, cleaning.ColProductsSold), cleaning.ColRevenue))
}

// RevenueByProductType sums revenue per distinct product type over rows
// holding a revenue value. Sums are not rounded.
func RevenueByProductType(t dataset.Table) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range t.Rows() {
		revenue, ok := r.Get(cleaning.ColRevenue).AsNumber()
		if !ok {
			continue
		}
		productType := label(r, cleaning.ColProductType)
		if productType == "" {
			productType = UnspecifiedProductType
		}
		out[productType] += revenue
	}
	return out
}

// TopProductType returns the product type with the highest summed revenue.
// Ties resolve to the alphabetically first name. ok is false when no row
// carries revenue.
func TopProductType(t dataset.Table) (name string, revenue float64, ok bool) {
	byType := RevenueByProductType(t)
	if len(byType) == 0 {
		return "", 0, false
	}

	names := make([]string, 0, len(byType))
	for n := range byType {
		names = append(names, n)
	}
	sort.Strings(names)

	name = names[0]
	for _, n := range names[1:] {
		if byType[n] > byType[name] {
			name = n
		}
	}
	return name, byType[name], true
}
