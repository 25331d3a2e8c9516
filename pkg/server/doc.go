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

// Package server provides the HTTP server used by devkitd.
//
// The server wraps every API handler in a fixed middleware chain:
//
//   - Prometheus RED metrics (devkit_http_*)
//   - API version negotiation through the Accept header
//     (application/vnd.nvidia.devkit.v1+json) reported in X-API-Version
//   - Request IDs taken from X-Request-Id or generated as UUIDs
//   - Panic recovery returning a structured 500
//   - Token bucket rate limiting (golang.org/x/time/rate) with
//     X-RateLimit-* headers and 429 + Retry-After on rejection
//   - Debug request logging through log/slog
//
// System endpoints are registered without the chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until Start has been called
//	GET /metrics  Prometheus metrics
//
// Usage:
//
//	s := server.New(
//	    server.WithName("devkitd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/versions/compare": api.HandleCompare,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Configuration defaults come from NewConfig and may be overridden with the
// PORT and SHUTDOWN_TIMEOUT_SECONDS environment variables.
//
// Errors are written as ErrorResponse JSON. WriteErrorFromErr maps
// pkg/errors codes to HTTP status codes:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "missing query parameter",
//	  "details": {"param": "v1"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T15:04:05Z",
//	  "retryable": false
//	}
package server
