// Package http implements the HTTP handlers of the Supply Chain Pulse API.
// Handlers stay thin: they decode and validate requests, call a service
// interface and render JSON. Every failure goes through the shared
// ErrorHandler, which answers with an RFC 7807 problem document carrying a
// stable error_code.
//
// # Routes
//
//	GET  /                 status message
//	GET  /kpis             revenue KPIs
//	GET  /inventory-kpis   stock scatter and summary
//	GET  /logistics-kpis   shipping KPIs per carrier and transport mode
//	GET  /ai-insights      canned overview
//	POST /ai-query         free-text question, body {"question": "..."}
//	GET  /dashboard        all three KPI groups from one load
//	GET  /health/live      liveness
//	GET  /health/ready     data source readiness
//	GET  /version          build information
//	GET  /metrics          Prometheus exposition
package http
