package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to payment reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	registerValidators()
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/statistics", h.getStatistics)
		reportingGroup.GET("/active-debts", h.getActiveDebts)
		reportingGroup.GET("/debt-statistics", h.getDebtStatistics)
		reportingGroup.GET("/daily", h.getDailyReport)
	}
}

// getStatistics godoc
// @Summary Payment statistics
// @Description General stats, totals by mode and type, the last 12 months and the top 10 patients.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day (inclusive), YYYY-MM-DD"
// @Success 200 {object} domain.PaymentStatistics
// @Failure 400 {object} errorResponse "Invalid input"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 500 {object} errorResponse "Failed to generate report"
// @Router /reports/statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	stats, err := h.reportingService.GetStatistics(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getActiveDebts godoc
// @Summary Patients in debt
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Success 200 {array} domain.ActiveDebt
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 500 {object} errorResponse "Failed to generate report"
// @Router /reports/active-debts [get]
func (h *reportingHandler) getActiveDebts(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	debts, err := h.reportingService.GetActiveDebts(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, debts)
}

// getDebtStatistics godoc
// @Summary Debt statistics
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Success 200 {object} domain.DebtStatistics
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 500 {object} errorResponse "Failed to generate report"
// @Router /reports/debt-statistics [get]
func (h *reportingHandler) getDebtStatistics(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	stats, err := h.reportingService.GetDebtStatistics(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getDailyReport godoc
// @Summary Daily report
// @Description Every payment of one day with per-mode subtotals.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param date query string false "Day, YYYY-MM-DD" default(today)
// @Success 200 {object} domain.DailyReport
// @Failure 400 {object} errorResponse "Invalid input"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 500 {object} errorResponse "Failed to generate report"
// @Router /reports/daily [get]
func (h *reportingHandler) getDailyReport(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var params dto.DailyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	report, err := h.reportingService.GetDailyReport(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, report)
}
