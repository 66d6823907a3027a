package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"scpulse/internal/cleaning"
	"scpulse/internal/dataset"
	apperrors "scpulse/internal/errors"
	"scpulse/internal/infrastructure"
	"scpulse/internal/insights"
	"scpulse/internal/kpi"
	"scpulse/pkg/contracts/domain"
)

// TracerName identifies spans emitted by the service layer
const TracerName = "scpulse.services"

// SupplyChainService loads and cleans a fresh table per call and computes
// KPIs and insights over it
type SupplyChainService struct {
	source  dataset.Source
	kind    string
	metrics *infrastructure.PipelineMetrics
	tracer  trace.Tracer
	logger  *slog.Logger
	now     func() time.Time
}

// NewSupplyChainService creates a service reading from source. metrics may
// be nil.
func NewSupplyChainService(source dataset.Source, metrics *infrastructure.PipelineMetrics, logger *slog.Logger) *SupplyChainService {
	if logger == nil {
		logger = slog.Default()
	}

	kind := dataset.KindOf(source)
	logger.Info("SupplyChainService initialized", slog.String("source", kind))

	return &SupplyChainService{
		source:  source,
		kind:    kind,
		metrics: metrics,
		tracer:  otel.Tracer(TracerName),
		logger:  logger.With(slog.String("component", "supplychain_service")),
		now:     time.Now,
	}
}

// Load fetches the raw table and cleans it
func (s *SupplyChainService) Load(ctx context.Context) (dataset.Table, error) {
	ctx, span := s.tracer.Start(ctx, "dataset.load",
		trace.WithAttributes(attribute.String("dataset.source", s.kind)),
	)
	defer span.End()

	start := time.Now()
	table, err := s.load(ctx)
	duration := time.Since(start)

	infrastructure.RecordDatasetLoad(ctx, s.metrics, s.kind, table.Len(), duration, err)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.ErrorContext(ctx, "dataset load failed",
			slog.String("source", s.kind),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return dataset.Table{}, err
	}

	span.SetAttributes(attribute.Int("dataset.rows", table.Len()))
	s.logger.DebugContext(ctx, "dataset loaded",
		slog.String("source", s.kind),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns())),
		slog.Duration("duration", duration))

	if table.Empty() {
		s.logger.WarnContext(ctx, "dataset is empty", slog.String("source", s.kind))
	}
	return table, nil
}

func (s *SupplyChainService) load(ctx context.Context) (dataset.Table, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return dataset.Table{}, err
	}
	return cleaning.Clean(raw)
}

// RevenueKPIs computes revenue, units, shipping and lead-time KPIs
func (s *SupplyChainService) RevenueKPIs(ctx context.Context) (domain.RevenueKPIs, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return domain.RevenueKPIs{}, err
	}
	return kpi.Revenue(table)
}

// InventoryKPIs computes the stock scatter and summary
func (s *SupplyChainService) InventoryKPIs(ctx context.Context) (domain.InventoryKPIs, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return domain.InventoryKPIs{}, err
	}
	return kpi.Inventory(table)
}

// LogisticsKPIs computes shipping KPIs per carrier and transport mode
func (s *SupplyChainService) LogisticsKPIs(ctx context.Context) (domain.LogisticsKPIs, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return domain.LogisticsKPIs{}, err
	}
	return kpi.Logistics(table)
}

// Insights returns the canned overview naming the top product type
func (s *SupplyChainService) Insights(ctx context.Context) (domain.InsightSummary, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return domain.InsightSummary{}, err
	}
	return insights.Summary(table)
}

// Ask routes a free-text question and answers it from a fresh table
func (s *SupplyChainService) Ask(ctx context.Context, question string) (domain.InsightResponse, error) {
	if strings.TrimSpace(question) == "" {
		return domain.InsightResponse{}, apperrors.NewAppValidationError("question is required").
			WithContext("field", "question")
	}

	ctx, span := s.tracer.Start(ctx, "insights.answer")
	defer span.End()

	table, err := s.Load(ctx)
	if err != nil {
		return domain.InsightResponse{}, err
	}

	resp, err := insights.Answer(question, table)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return domain.InsightResponse{}, err
	}

	span.SetAttributes(attribute.String("insights.intent", resp.Intent))
	infrastructure.RecordQuestion(ctx, s.metrics, resp.Intent)
	s.logger.InfoContext(ctx, "question answered",
		slog.String("intent", resp.Intent),
		slog.Float64("confidence", resp.Confidence))

	return resp, nil
}

// Dashboard loads the table once and computes the three KPI groups
// concurrently
func (s *SupplyChainService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	table, err := s.Load(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	var dash domain.Dashboard
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		rev, err := kpi.Revenue(table)
		if err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		dash.Revenue = rev
		return nil
	})
	g.Go(func() error {
		inv, err := kpi.Inventory(table)
		if err != nil {
			return fmt.Errorf("inventory: %w", err)
		}
		dash.Inventory = inv
		return nil
	})
	g.Go(func() error {
		lg, err := kpi.Logistics(table)
		if err != nil {
			return fmt.Errorf("logistics: %w", err)
		}
		dash.Logistics = lg
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}

	dash.GeneratedAt = s.now().UTC()
	return dash, nil
}
