package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/SscSPs/anapath_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// RegisterPaymentRoutes registers routes related to payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	registerValidators()
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.POST("/partial", h.createPartialPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:paymentID", h.getPayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a cash, installment or partial payment and updates the patient balance atomically.
// @Description A receipt code is issued when none is supplied.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentCreatedResponse
// @Failure 400 {object} errorResponse "Validation error"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 404 {object} errorResponse "Patient not found"
// @Failure 409 {object} errorResponse "Receipt code already used"
// @Failure 500 {object} errorResponse "Failed to record payment"
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to record payment",
		slog.Int64("patient_id", req.PatientID),
		slog.String("payment_mode", req.PaymentMode))

	outcome, err := h.paymentService.RecordPayment(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentCreatedResponse(outcome))
}

// createPartialPayment godoc
// @Summary Record a partial payment
// @Description Records a payment against existing debt. The balance never goes above zero.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param payment body dto.PartialPaymentRequest true "Partial payment details"
// @Success 201 {object} dto.PaymentCreatedResponse
// @Failure 400 {object} errorResponse "Validation error"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 404 {object} errorResponse "Patient not found"
// @Failure 500 {object} errorResponse "Failed to record payment"
// @Router /payments/partial [post]
func (h *paymentHandler) createPartialPayment(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var req dto.PartialPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	outcome, err := h.paymentService.RecordPartialPayment(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentCreatedResponse(outcome))
}

// listPayments godoc
// @Summary List payments
// @Description Lists the tenant's payments newest first, with optional filters.
// @Tags payments
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Param patientId query int false "Patient ID"
// @Param dateFrom query string false "First day, YYYY-MM-DD"
// @Param dateTo query string false "Last day (inclusive), YYYY-MM-DD"
// @Param paymentMode query string false "cash, installment or partial"
// @Param paymentType query string false "Exam type"
// @Success 200 {object} domain.PaymentPage
// @Failure 400 {object} errorResponse "Validation error"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 500 {object} errorResponse "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.paymentService.ListPayments(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, page)
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param paymentID path int true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 400 {object} errorResponse "Invalid payment ID"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 404 {object} errorResponse "Payment not found"
// @Failure 500 {object} errorResponse "Failed to retrieve payment"
// @Router /payments/{paymentID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	paymentID, ok := idParam(c, "paymentID")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), tenantID, paymentID)
	if err != nil {
		respondError(c, err, "Failed to retrieve payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Deletes a payment and rebalances its patient in the same transaction.
// @Tags payments
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param paymentID path int true "Payment ID"
// @Success 200 {object} dto.DeletePaymentResponse
// @Failure 400 {object} errorResponse "Invalid payment ID"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 404 {object} errorResponse "Payment not found"
// @Failure 500 {object} errorResponse "Failed to delete payment"
// @Router /payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	paymentID, ok := idParam(c, "paymentID")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), tenantID, paymentID); err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}

	c.JSON(http.StatusOK, dto.DeletePaymentResponse{Message: "Payment deleted"})
}
