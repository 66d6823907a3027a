package http

import (
	"context"

	"scpulse/pkg/contracts/domain"
)

// SupplyChainServiceInterface defines the operations behind the KPI and
// insight routes
type SupplyChainServiceInterface interface {
	RevenueKPIs(ctx context.Context) (domain.RevenueKPIs, error)
	InventoryKPIs(ctx context.Context) (domain.InventoryKPIs, error)
	LogisticsKPIs(ctx context.Context) (domain.LogisticsKPIs, error)
	Insights(ctx context.Context) (domain.InsightSummary, error)
	Ask(ctx context.Context, question string) (domain.InsightResponse, error)
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}
