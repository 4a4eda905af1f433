package analytics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xplorium/internal/shared/utils/response"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetDashboard(c *gin.Context)
	GetDailyStats(c *gin.Context)
	GetForecast(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetDashboard returns the full admin dashboard stats
func (ctrl *controller) GetDashboard(c *gin.Context) {
	stats, err := ctrl.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Dashboard stats retrieved successfully", stats, nil)
}

// GetDailyStats returns per-day booking counts, ?days=N (default 30)
func (ctrl *controller) GetDailyStats(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "days must be between 1 and 365", nil, nil)
			return
		}
		days = parsed
	}

	stats, err := ctrl.service.GetDailyStats(c.Request.Context(), days)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Daily stats retrieved successfully", stats, nil)
}

// GetForecast returns the 3-month revenue projection
func (ctrl *controller) GetForecast(c *gin.Context) {
	forecast, err := ctrl.service.GetForecast(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotEnoughData) {
			response.RespondJSON(c, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Revenue forecast retrieved successfully", forecast, nil)
}
