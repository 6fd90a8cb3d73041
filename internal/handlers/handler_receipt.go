package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// RegisterReceiptRoutes registers routes related to receipt codes.
func RegisterReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	registerValidators()
	h := &receiptHandler{receiptService: receiptService}

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.generateReceipt)
		receipts.GET("/counters", h.listCounters)
	}
}

// generateReceipt godoc
// @Summary Issue a receipt code
// @Description Issues the next code for the exam type. Falls back to a TMP code when counters are unavailable.
// @Tags receipts
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param request body dto.GenerateReceiptRequest true "Exam type"
// @Success 201 {object} domain.IssuedReceipt
// @Failure 400 {object} errorResponse "Validation error"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Router /receipts [post]
func (h *receiptHandler) generateReceipt(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var req dto.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	issued, err := h.receiptService.GenerateReceipt(c.Request.Context(), tenantID, req.PaymentType)
	if err != nil {
		respondError(c, err, "Failed to issue receipt code")
		return
	}

	c.JSON(http.StatusCreated, issued)
}

// listCounters godoc
// @Summary List receipt counters
// @Tags receipts
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param year query int false "Two-digit year"
// @Success 200 {array} domain.ReceiptCounter
// @Failure 400 {object} errorResponse "Validation error"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 500 {object} errorResponse "Failed to list counters"
// @Router /receipts/counters [get]
func (h *receiptHandler) listCounters(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var params dto.ListCountersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	counters, err := h.receiptService.ListCounters(c.Request.Context(), tenantID, params.Year)
	if err != nil {
		respondError(c, err, "Failed to list counters")
		return
	}

	c.JSON(http.StatusOK, counters)
}
