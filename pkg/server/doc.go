// Copyright (c) 2025, DevDonalds. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements a reusable HTTP server shell: routing, the
// middleware chain, and lifecycle management for the handlers mounted on it.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for request correlation
//   - API version negotiation via vendor Accept headers
//   - Prometheus RED metrics and a /metrics endpoint
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes
//
// # Usage
//
//	routes := map[string]http.HandlerFunc{
//	    "/v1/summary": handler.HandleSummary,
//	}
//
//	s := server.New(
//	    server.WithName("cookbook-server"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	)
//
//	if err := s.Run(ctx); err != nil {
//	    slog.Error("server exited with error", "error", err)
//	}
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format).
// If not provided, the server generates one automatically. The request ID is
// returned in the X-Request-Id response header and included in all error
// responses for tracing.
//
// A rate-limited request returns 429 with a Retry-After header and the
// configured limit and burst in the error details.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "entry \"pancake\" not found",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
package server
