package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// patientHandler handles HTTP requests related to patients.
type patientHandler struct {
	patientService portssvc.PatientSvcFacade
}

func newPatientHandler(ps portssvc.PatientSvcFacade) *patientHandler {
	return &patientHandler{
		patientService: ps,
	}
}

// RegisterPatientRoutes registers routes related to patients.
func RegisterPatientRoutes(rg *gin.RouterGroup, patientService portssvc.PatientSvcFacade) {
	registerValidators()
	h := newPatientHandler(patientService)

	patients := rg.Group("/patients")
	{
		patients.POST("", h.createPatient)
		patients.GET("/:patientID", h.getPatient)
		patients.GET("/:patientID/payments", h.getPaymentHistory)
		patients.GET("/:patientID/payment-summary", h.getPaymentSummary)
	}
}

// createPatient godoc
// @Summary Register a patient
// @Tags patients
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param patient body dto.CreatePatientRequest true "Patient details"
// @Success 201 {object} domain.Patient
// @Failure 400 {object} errorResponse "Validation error"
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 500 {object} errorResponse "Failed to create patient"
// @Router /patients [post]
func (h *patientHandler) createPatient(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}

	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, err, "Failed to create patient")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// getPatient godoc
// @Summary Get a patient
// @Tags patients
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param patientID path int true "Patient ID"
// @Success 200 {object} domain.Patient
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 404 {object} errorResponse "Patient not found"
// @Router /patients/{patientID} [get]
func (h *patientHandler) getPatient(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	patientID, ok := idParam(c, "patientID")
	if !ok {
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), tenantID, patientID)
	if err != nil {
		respondError(c, err, "Failed to retrieve patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// getPaymentHistory godoc
// @Summary Payment history of a patient
// @Tags patients
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param patientID path int true "Patient ID"
// @Success 200 {object} domain.PatientHistory
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 404 {object} errorResponse "Patient not found"
// @Router /patients/{patientID}/payments [get]
func (h *patientHandler) getPaymentHistory(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	patientID, ok := idParam(c, "patientID")
	if !ok {
		return
	}

	history, err := h.patientService.GetPaymentHistory(c.Request.Context(), tenantID, patientID)
	if err != nil {
		respondError(c, err, "Failed to retrieve payment history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// getPaymentSummary godoc
// @Summary Payment summary of a patient
// @Description Totals, counts per mode, current balance and installment plans.
// @Tags patients
// @Produce json
// @Param X-User-ID header string true "Tenant identifier"
// @Param patientID path int true "Patient ID"
// @Success 200 {object} domain.PatientSummary
// @Failure 401 {object} errorResponse "Missing tenant"
// @Failure 404 {object} errorResponse "Patient not found"
// @Router /patients/{patientID}/payment-summary [get]
func (h *patientHandler) getPaymentSummary(c *gin.Context) {
	tenantID, ok := tenantFromRequest(c)
	if !ok {
		return
	}
	patientID, ok := idParam(c, "patientID")
	if !ok {
		return
	}

	summary, err := h.patientService.GetPaymentSummary(c.Request.Context(), tenantID, patientID)
	if err != nil {
		respondError(c, err, "Failed to retrieve payment summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
