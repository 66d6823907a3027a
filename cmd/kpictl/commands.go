package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"scpulse/internal/exporter"
	"scpulse/internal/services"
)

func newKPIsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis",
		Short: "Revenue and sales KPIs",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, svc *services.SupplyChainService) error {
			kpis, err := svc.RevenueKPIs(ctx)
			if err != nil {
				return err
			}
			return opts.emit(cmd, kpis, exporter.RevenueReport(kpis))
		}),
	}
}

func newInventoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Inventory KPIs and stock/order scatter points",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, svc *services.SupplyChainService) error {
			kpis, err := svc.InventoryKPIs(ctx)
			if err != nil {
				return err
			}
			return opts.emit(cmd, kpis, exporter.InventoryReport(kpis), exporter.ScatterReport(kpis))
		}),
	}
}

func newLogisticsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logistics",
		Short: "Shipping KPIs by carrier and transport mode",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, svc *services.SupplyChainService) error {
			kpis, err := svc.LogisticsKPIs(ctx)
			if err != nil {
				return err
			}
			return opts.emit(cmd, kpis, exporter.LogisticsReport(kpis))
		}),
	}
}

func newInsightsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Canned insight summary",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, svc *services.SupplyChainService) error {
			summary, err := svc.Insights(ctx)
			if err != nil {
				return err
			}
			return opts.emit(cmd, summary, exporter.SummaryReport(summary))
		}),
	}
}

func newAskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a free-text question about the data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return opts.run(func(ctx context.Context, cmd *cobra.Command, svc *services.SupplyChainService) error {
				resp, err := svc.Ask(ctx, question)
				if err != nil {
					return err
				}
				return opts.emit(cmd, resp, exporter.InsightReport(resp))
			})(cmd, args)
		},
	}
}
