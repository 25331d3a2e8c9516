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

// Package api wires the devkitd HTTP API onto pkg/server.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/devicekit/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/versions/parse?version=17.4.1
//   - GET  /v1/versions/compare?v1=1.2&v2=1.10
//   - GET  /v1/versions/at-least?target=15.0&current=17.4
//   - POST /v1/profile - device profile from a host snapshot (JSON or YAML)
//
// System endpoints:
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// Version endpoints never fail on malformed input: version strings are read
// permissively and the parse endpoint reports a warning when the input is
// not strictly well formed. Missing query parameters return 400.
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/profile \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary @snapshot.yaml
//
// # Configuration
//
// The server reads PORT, SHUTDOWN_TIMEOUT_SECONDS and LOG_LEVEL from the
// environment. Version information is set at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/devicekit/pkg/api.buildVersion=1.0.0'"
package api
