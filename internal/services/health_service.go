package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"scpulse/internal/dataset"
	"scpulse/pkg/contracts"
)

// DefaultReadinessTimeout bounds the data source probe
const DefaultReadinessTimeout = 5 * time.Second

// HealthService provides health check functionality
type HealthService struct {
	source       dataset.Source
	kind         string
	checkTimeout time.Duration
	startTime    time.Time
	logger       *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// Ready reports whether the status is the ready state
func (s HealthStatus) Ready() bool {
	return s.Status == "ready"
}

// ServiceHealth represents individual dependency health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// NewHealthService creates a health service probing source for readiness
func NewHealthService(source dataset.Source, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	return &HealthService{
		source:       source,
		kind:         dataset.KindOf(source),
		checkTimeout: DefaultReadinessTimeout,
		startTime:    time.Now(),
		logger:       logger.With(slog.String("component", "health_service")),
	}
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// ReadinessCheck fetches from the data source and reports whether it answers
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Services:  make(map[string]interface{}),
	}

	source := hs.checkDataSource(ctx)
	status.Services["data_source"] = source
	if source.Status != "ready" {
		status.Status = "not_ready"
	}

	return status
}

// Version returns version information
func (hs *HealthService) Version() map[string]interface{} {
	info := contracts.GetVersionInfo()
	return map[string]interface{}{
		"version":      info.Version,
		"api_version":  info.APIVersion,
		"build_time":   info.BuildTime,
		"git_commit":   info.GitCommit,
		"go_version":   info.GoVersion,
		"os":           info.OS,
		"arch":         info.Architecture,
		"data_source":  hs.kind,
		"uptime":       time.Since(hs.startTime).Seconds(),
		"start_time":   hs.startTime.Format(time.RFC3339),
		"current_time": time.Now().Format(time.RFC3339),
	}
}

// checkDataSource probes the data source within the probe timeout
func (hs *HealthService) checkDataSource(ctx context.Context) ServiceHealth {
	if hs.source == nil {
		return ServiceHealth{
			Status:  "not_ready",
			Message: "data source not configured",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, hs.checkTimeout)
	defer cancel()

	start := time.Now()
	table, err := hs.source.Fetch(ctx)
	latency := time.Since(start)
	if err != nil {
		hs.logger.WarnContext(ctx, "readiness probe failed",
			slog.String("source", hs.kind),
			slog.String("error", err.Error()))
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("%s source error: %v", hs.kind, err),
			Latency: latency.String(),
		}
	}

	return ServiceHealth{
		Status:  "ready",
		Message: fmt.Sprintf("%s source returned %d rows", hs.kind, table.Len()),
		Latency: latency.String(),
	}
}
