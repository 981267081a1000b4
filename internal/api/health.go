// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/persona/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(context.Context) error

	// CheckCache pings Redis. Nil when the refresh-token denylist is disabled.
	CheckCache func(context.Context) error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// readinessTimeout bounds each dependency ping.
const readinessTimeout = 2 * time.Second

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, "OK", map[string]string{"status": "ok"})
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (handler *healthHandler) check(request *http.Request, name string, ping func(context.Context) error) checkResult {
	context, cancel := context.WithTimeout(request.Context(), readinessTimeout)
	defer cancel()

	result := checkResult{Name: name, IsOK: true}
	if err := ping(context); err != nil {
		result.IsOK = false
		result.Error = err.Error()
		handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
	}
	return result
}

// readiness handles GET /ready (Readiness probe).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 2)

	if handler.dependencies.CheckDatabase != nil {
		results = append(results, handler.check(request, "postgres", handler.dependencies.CheckDatabase))
	}

	if handler.dependencies.CheckCache != nil {
		results = append(results, handler.check(request, "redis", handler.dependencies.CheckCache))
	}

	isSystemReady := true
	for _, result := range results {
		isSystemReady = isSystemReady && result.IsOK
	}

	payload := map[string]any{"status": "ready", "checks": results}
	if !isSystemReady {
		payload["status"] = "degraded"
		respond.JSON(writer, http.StatusServiceUnavailable, respond.Envelope{Message: "Service Unavailable", Data: payload})
		return
	}

	respond.OK(writer, "OK", payload)
}
