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

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// routeUnmatched labels requests that reached a handler outside the mux.
const routeUnmatched = "unmatched"

// Handlers answer in milliseconds; buckets stop at the validate timeout.
var handlerBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 5, 30}

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lm_http_requests_total",
		Help: "HTTP requests served, by route pattern, method and status code.",
	}, []string{"route", "method", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lm_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests, by route pattern.",
		Buckets: handlerBuckets,
	}, []string{"route", "method"})

	httpRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lm_http_requests_in_flight",
		Help: "HTTP requests currently being served.",
	})

	rateLimitRejects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lm_rate_limit_rejects_total",
		Help: "Requests rejected by the rate limiter, by route pattern.",
	}, []string{"route"})

	panicRecoveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lm_panic_recoveries_total",
		Help: "Handler panics turned into 500 responses, by route pattern.",
	}, []string{"route"})
)

// routeLabel returns the ServeMux pattern that matched r, never the raw path.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return routeUnmatched
	}
	return r.Pattern
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		route := routeLabel(r)
		rw := newResponseWriter(w)
		start := time.Now()

		next.ServeHTTP(rw, r)

		httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rw.Status())).Inc()
	}
}
