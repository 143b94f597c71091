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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/appinteractive/linearmouse/pkg/config"
	"github.com/appinteractive/linearmouse/pkg/defaults"
	"github.com/appinteractive/linearmouse/pkg/logging"
	"github.com/appinteractive/linearmouse/pkg/server"
)

const (
	name           = "lmconfigd"
	versionDefault = "dev"

	// Route paths
	RouteDistance = "/v1/distance"
	RouteValidate = "/v1/config/validate"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/appinteractive/linearmouse/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the API handlers keyed by path, each bounded by its
// handler timeout.
func Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteDistance: withTimeout(config.HandleDistance, defaults.DistanceHandlerTimeout),
		RouteValidate: withTimeout(config.HandleValidate, defaults.ValidateHandlerTimeout),
	}
}

func withTimeout(h http.HandlerFunc, timeout time.Duration) http.HandlerFunc {
	return http.TimeoutHandler(h, timeout, `{"code":"TIMEOUT","message":"Request timed out","retryable":true}`).ServeHTTP
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
