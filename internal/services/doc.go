// Package services implements the business layer between the HTTP handlers
// and the dataset pipeline.
//
// # Refresh policy
//
// SupplyChainService holds no table between calls. Every operation fetches
// the raw table from its injected dataset.Source, cleans it and computes
// the requested aggregates, so concurrent requests share no mutable state.
// Dashboard loads once and computes the three KPI groups concurrently.
//
// # Error Handling
//
// Loader and cleaner errors are returned unchanged so the HTTP layer can map
// their apperrors type to a problem response:
//
//	- CONFIG for missing credentials, configuration or required columns
//	- DATA_UNAVAILABLE for unreachable sources or unreadable files
//	- SCHEMA for duplicate columns after normalization
//
// An empty dataset is not an error; the KPI payloads carry empty=true.
//
// # Available Services
//
//	- SupplyChainService: KPI groups, insights and question answering
//	- HealthService: liveness, readiness and version information
package services
