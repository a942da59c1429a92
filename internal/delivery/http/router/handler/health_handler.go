package handler

import (
	"log/slog"
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the connectivity machine over HTTP.
type HealthHandler struct {
	uc     usecase.ConnectivityUsecase
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(uc usecase.ConnectivityUsecase, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		uc:     uc,
		logger: logger,
	}
}

// HealthCheck probes the backend and reports 200 when reachable, 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	state := h.uc.Check(c.Request().Context())
	if state.Phase == entity.ConnectivityReady && state.Connected {
		return response.Success(c, http.StatusOK, state, "Service is healthy")
	}

	return response.Error(c, http.StatusServiceUnavailable, "BACKEND_UNREACHABLE", "Service is degraded", state.Err)
}

// GetConnectivityState returns the current snapshot without probing.
func (h *HealthHandler) GetConnectivityState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.State(), "Connectivity state retrieved successfully")
}

// Reconnect forces a fresh probe after a failure.
func (h *HealthHandler) Reconnect(c echo.Context) error {
	state := h.uc.Reconnect(c.Request().Context())

	return response.Success(c, http.StatusOK, state, "Reconnect attempted")
}
