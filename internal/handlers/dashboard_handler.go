package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "salonbook/internal/errors"
	"salonbook/internal/services"
)

// DashboardHandler handles the aggregate reporting view.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the dashboard snapshot
// @Summary     Dashboard snapshot
// @Description Today's and tomorrow's appointments plus day/week/month revenue sums
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       date query string false "Snapshot date (YYYY-MM-DD, defaults to today)"
// @Success     200 {object} services.DashboardSnapshot "Dashboard snapshot"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	asOf := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date, use YYYY-MM-DD"))
			return
		}
		asOf = parsed
	}

	snapshot, err := h.dashboardService.Snapshot(asOf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
