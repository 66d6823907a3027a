// Package app wires the supply chain API together: configuration, logging,
// OpenTelemetry, the configured data source, services, middleware and HTTP
// handlers.
//
// # Initialization Flow
//
//  1. Load configuration from environment and an optional YAML file
//  2. Initialize logging and observability
//  3. Build the data source (sheets, csv or xlsx) behind the retry policy
//  4. Create the supply chain and health services
//  5. Mount middleware and handlers on a chi router
//  6. Start the HTTP server and wait for SIGINT/SIGTERM
//
// # Usage
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    slog.Error("Failed to initialize application", slog.String("error", err.Error()))
//	    os.Exit(1)
//	}
//	if err := application.Run(); err != nil {
//	    os.Exit(1)
//	}
package app
