// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package server provides the HTTP server shared by linearmouse services.
//
// Handlers are mounted behind a middleware chain that records Prometheus
// metrics, negotiates the API version, assigns request IDs, recovers panics
// and applies a token-bucket rate limit (golang.org/x/time/rate).
//
// # Usage
//
//	s := server.New(
//	    server.WithName("lmconfigd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/distance": config.HandleDistance,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
//   - GET /health: liveness probe, always 200 while the process runs
//   - GET /ready: readiness probe, 503 until the listener is started
//   - GET /metrics: Prometheus metrics
//
// # Errors
//
// Every error body is an ErrorResponse:
//
//	{
//	  "code": "INVALID_VALUE",
//	  "message": "invalid distance \"12mm\"",
//	  "details": {"value": "12mm"},
//	  "requestId": "5b1c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps pkg/errors codes to HTTP status codes, so handlers
// can return parsing errors unchanged.
//
// # API Versioning
//
// Clients may request a version with Accept: application/vnd.linearmouse.v1+json.
// The negotiated version is echoed in the X-API-Version header.
//
// # Configuration
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the listen port and the graceful
// shutdown timeout.
package server
