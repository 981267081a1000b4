// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics owns the Prometheus collectors of the API.

Collectors are registered on the default registry at package init through
promauto and exposed by [Register] on the configured path.

  - persona_http_request_duration_seconds: latency by method, route pattern and status.
  - persona_access_guard_decisions_total: guard outcomes (authorized, missing_header, expired, ...).
  - persona_tokens_issued_total: issued tokens by kind (access, refresh).
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "persona"

var (
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	guardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_guard_decisions_total",
		Help:      "Access guard decisions by outcome.",
	}, []string{"outcome"})

	tokensIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Signed tokens by kind.",
	}, []string{"kind"})
)

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router chi.Router, path string) {
	router.Method(http.MethodGet, path, promhttp.Handler())
}

// GuardDecision counts one access guard outcome.
func GuardDecision(outcome string) {
	guardDecisions.WithLabelValues(outcome).Inc()
}

// TokenIssued counts one signed token of the given kind.
func TokenIssued(kind string) {
	tokensIssued.WithLabelValues(kind).Inc()
}

// # HTTP Instrumentation

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (writer *statusWriter) WriteHeader(code int) {
	writer.status = code
	writer.ResponseWriter.WriteHeader(code)
}

// Instrument records request latency. The route label is the chi pattern
// ("/api/users/{id}"), never the raw path, to keep cardinality bounded.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		recorder := &statusWriter{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request)

		route := "unmatched"
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		httpDuration.
			WithLabelValues(request.Method, route, strconv.Itoa(recorder.status)).
			Observe(time.Since(start).Seconds())
	})
}
