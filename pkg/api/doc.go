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

// Package api wires the linearmouse configuration handlers into the shared
// HTTP server and runs it as lmconfigd.
//
// # Usage
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
//   - GET /v1/distance?value=12.5px[&native=true]: decode a distance token
//   - POST /v1/config/validate: validate a JSON or YAML configuration document
//
// System endpoints:
//   - GET /health, GET /ready, GET /metrics
//
// Example:
//
//	curl -s "localhost:8080/v1/distance?value=12.5px"
//	{"input":"12.5px","kind":"pixels","canonical":"12.5px","encoded":"12.5px","pixels":"12.5"}
//
//	curl -s -X POST -H "Content-Type: application/yaml" \
//	    --data-binary @linearmouse.yaml localhost:8080/v1/config/validate
//
// Build information is injected with ldflags:
//
//	-X github.com/appinteractive/linearmouse/pkg/api.version=1.0.0
//	-X github.com/appinteractive/linearmouse/pkg/api.commit=$(git rev-parse HEAD)
//	-X github.com/appinteractive/linearmouse/pkg/api.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
package api
