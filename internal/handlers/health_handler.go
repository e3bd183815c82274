package handlers

import (
	"net/http"

	"sync-backend/internal/health"
	"sync-backend/pkg/utils"
)

type HealthHandler struct {
	checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	utils.JSON(w, code, status)
}
