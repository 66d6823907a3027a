package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "scpulse/internal/errors"
	"scpulse/internal/middleware"
	v1 "scpulse/pkg/contracts/api/v1"
	"scpulse/pkg/contracts/domain"
)

// RootMessage is returned by GET /
const RootMessage = "Supply Chain API running"

// SupplyChainHandler serves the KPI, insight and question routes
type SupplyChainHandler struct {
	service      SupplyChainServiceInterface
	validator    *middleware.Validator
	errorHandler *apierrors.ErrorHandler
	logger       *slog.Logger
}

// NewSupplyChainHandler creates a new supply chain handler
func NewSupplyChainHandler(service SupplyChainServiceInterface, validator *middleware.Validator, errorHandler *apierrors.ErrorHandler, logger *slog.Logger) *SupplyChainHandler {
	return &SupplyChainHandler{
		service:      service,
		validator:    validator,
		errorHandler: errorHandler,
		logger:       logger.With(slog.String("handler", "supplychain")),
	}
}

// RegisterRoutes mounts the supply chain routes on r
func (h *SupplyChainHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/kpis", h.GetKPIs)
	r.Get("/inventory-kpis", h.GetInventoryKPIs)
	r.Get("/logistics-kpis", h.GetLogisticsKPIs)
	r.Get("/ai-insights", h.GetInsights)
	r.Get("/dashboard", h.GetDashboard)
	r.With(middleware.ContentTypeValidator(h.errorHandler, "application/json")).
		Post("/ai-query", h.PostQuery)
}

// Root handles GET /
func (h *SupplyChainHandler) Root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, domain.StatusMessage{Message: RootMessage})
}

// GetKPIs handles GET /kpis
func (h *SupplyChainHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.service.RevenueKPIs(r.Context())
	if err != nil {
		h.fail(w, r, "revenue KPIs", err)
		return
	}
	render.JSON(w, r, kpis)
}

// GetInventoryKPIs handles GET /inventory-kpis
func (h *SupplyChainHandler) GetInventoryKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.service.InventoryKPIs(r.Context())
	if err != nil {
		h.fail(w, r, "inventory KPIs", err)
		return
	}
	render.JSON(w, r, kpis)
}

// GetLogisticsKPIs handles GET /logistics-kpis
func (h *SupplyChainHandler) GetLogisticsKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.service.LogisticsKPIs(r.Context())
	if err != nil {
		h.fail(w, r, "logistics KPIs", err)
		return
	}
	render.JSON(w, r, kpis)
}

// GetInsights handles GET /ai-insights
func (h *SupplyChainHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Insights(r.Context())
	if err != nil {
		h.fail(w, r, "insights", err)
		return
	}
	render.JSON(w, r, summary)
}

// GetDashboard handles GET /dashboard
func (h *SupplyChainHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.fail(w, r, "dashboard", err)
		return
	}
	render.JSON(w, r, dash)
}

// PostQuery handles POST /ai-query
func (h *SupplyChainHandler) PostQuery(w http.ResponseWriter, r *http.Request) {
	var req v1.AIQueryRequest
	if err := h.validator.DecodeJSON(w, r, &req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	resp, err := h.service.Ask(r.Context(), req.Question)
	if err != nil {
		h.fail(w, r, "question", err)
		return
	}
	render.JSON(w, r, resp)
}

func (h *SupplyChainHandler) fail(w http.ResponseWriter, r *http.Request, what string, err error) {
	h.logger.ErrorContext(r.Context(), "failed to compute "+what,
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)
	h.errorHandler.HandleError(w, r, err)
}
