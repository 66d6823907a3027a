package kpi

import (
	"sort"

	"scpulse/internal/cleaning"
	"scpulse/internal/dataset"
	apperrors "scpulse/internal/errors"
	"scpulse/pkg/contracts/domain"
)

func emptyLogistics() domain.LogisticsKPIs {
	return domain.LogisticsKPIs{
		Carriers:            []string{},
		AvgShippingCost:     []float64{},
		AvgShippingTime:     []float64{},
		CostByTransportMode: map[string]float64{},
		TimeByTransportMode: map[string]float64{},
		Empty:               true,
	}
}

// shippingGroup accumulates cost and time per category value
type shippingGroup struct {
	costSum, timeSum     float64
	costCount, timeCount int
}

func (g *shippingGroup) add(r dataset.Row) {
	if c, ok := r.Get(cleaning.ColShippingCosts).AsNumber(); ok {
		g.costSum += c
		g.costCount++
	}
	if d, ok := r.Get(cleaning.ColShippingTimes).AsNumber(); ok {
		g.timeSum += d
		g.timeCount++
	}
}

func (g *shippingGroup) meanCost() float64 {
	if g.costCount == 0 {
		return 0
	}
	return g.costSum / float64(g.costCount)
}

func (g *shippingGroup) meanTime() float64 {
	if g.timeCount == 0 {
		return 0
	}
	return g.timeSum / float64(g.timeCount)
}

// groupShipping groups rows by a category column and returns the keys in
// alphabetical order. Rows without a key are skipped.
func groupShipping(t dataset.Table, col string) ([]string, map[string]*shippingGroup) {
	groups := make(map[string]*shippingGroup)
	for _, r := range t.Rows() {
		key := label(r, col)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &shippingGroup{}
			groups[key] = g
		}
		g.add(r)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, groups
}

// Logistics computes shipping cost and time KPIs, grouped by carrier and by
// transport mode. Each mean uses the non-missing values of its own column,
// so a row missing unrelated fields still contributes.
func Logistics(t dataset.Table) (domain.LogisticsKPIs, error) {
	if t.Empty() {
		return emptyLogistics(), nil
	}
	if err := requireColumns("logistics", t, cleaning.ColShippingCosts, cleaning.ColShippingTimes); err != nil {
		return domain.LogisticsKPIs{}, err
	}
	hasCarriers := t.HasColumn(cleaning.ColShippingCarriers)
	hasModes := t.HasColumn(cleaning.ColTransportationModes)
	if !hasCarriers && !hasModes {
		return domain.LogisticsKPIs{}, apperrors.NewConfigError(
			"logistics KPIs require column \"shipping_carriers\" or \"transportation_modes\"", nil)
	}

	rows := t.Filter(func(r dataset.Row) bool {
		_, hasCost := r.Get(cleaning.ColShippingCosts).AsNumber()
		_, hasTime := r.Get(cleaning.ColShippingTimes).AsNumber()
		return hasCost || hasTime
	})
	if rows.Empty() {
		return emptyLogistics(), nil
	}

	kpis := emptyLogistics()
	kpis.Empty = false
	kpis.RecordCount = rows.Len()
	kpis.AverageShippingCost = round(mean(values(rows, cleaning.ColShippingCosts)), 2)
	kpis.AverageShippingTime = round(mean(values(rows, cleaning.ColShippingTimes)), 2)

	if hasCarriers {
		carriers, groups := groupShipping(rows, cleaning.ColShippingCarriers)
		for _, c := range carriers {
			kpis.Carriers = append(kpis.Carriers, c)
			kpis.AvgShippingCost = append(kpis.AvgShippingCost, round(groups[c].meanCost(), 2))
			kpis.AvgShippingTime = append(kpis.AvgShippingTime, round(groups[c].meanTime(), 1))
		}
	}

	if hasModes {
		modes, groups := groupShipping(rows, cleaning.ColTransportationModes)
		for _, m := range modes {
			kpis.CostByTransportMode[m] = round(groups[m].meanCost(), 2)
			kpis.TimeByTransportMode[m] = round(groups[m].meanTime(), 2)
		}
	}

	return kpis, nil
}
