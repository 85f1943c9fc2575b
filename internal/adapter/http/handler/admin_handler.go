package handler

import (
	"net/http"

	"settlement-ledger/internal/adapter/http/dto"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles operational endpoints: limiter resets and the
// dealer path cache.
type AdminHandler struct {
	limiter ports.RateLimiter
	paths   ports.LedgerPathResolver
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(limiter ports.RateLimiter, paths ports.LedgerPathResolver) *AdminHandler {
	return &AdminHandler{limiter: limiter, paths: paths}
}

// ResetRateLimit handles POST /api/v1/admin/ratelimits/reset. It
// clears the named rule's counters for one wallet.
func (h *AdminHandler) ResetRateLimit(c *gin.Context) {
	var req dto.RateLimitResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.limiter.Reset(c.Request.Context(), req.Rule, req.WalletID); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// InvalidateDealerCache handles POST /api/v1/admin/dealer-cache/invalidate.
// The next dealer path resolution performs a fresh lookup.
func (h *AdminHandler) InvalidateDealerCache(c *gin.Context) {
	h.paths.Invalidate()
	c.Status(http.StatusNoContent)
}

// HealthCheck returns a handler that pings every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
