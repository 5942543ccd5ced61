// Package api provides the HTTP API layer for the cookbook service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// the cookbook registry and the recipe summary resolver via REST API.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/devdonalds/cookbook/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Creating the in-memory cookbook and seeding it when configured
//   - Setting up route handlers (e.g., /v1/entry)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /v1/parse   - Normalize a free-text recipe name
//   - POST /v1/entry   - Add an ingredient or recipe to the cookbook
//   - GET  /v1/summary - Resolve a recipe into base ingredients and cook time
//   - POST /v1/clear   - Remove every cookbook entry
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Seeding
//
// When the COOKBOOK_SEED environment variable names a YAML seed file, its
// entries are loaded into the cookbook before the server starts accepting
// requests. See pkg/seed for the file format.
package api
