package dto

import (
	"strings"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
)

// CreatePatientRequest defines the data needed to register a patient.
type CreatePatientRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Age     *int   `json:"age" binding:"omitempty,gte=0,lte=150"`
	Sex     string `json:"sex" binding:"omitempty,max=20"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

// ToDomain converts the request into a new patient of the tenant with a zero balance.
func (r CreatePatientRequest) ToDomain(tenantID string) domain.Patient {
	return domain.Patient{
		TenantID: tenantID,
		Name:     strings.TrimSpace(r.Name),
		Age:      r.Age,
		Sex:      strings.TrimSpace(r.Sex),
		Phone:    strings.TrimSpace(r.Phone),
		Address:  strings.TrimSpace(r.Address),
	}
}
