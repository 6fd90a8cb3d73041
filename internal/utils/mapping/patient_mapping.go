package mapping

import (
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/SscSPs/anapath_backend/internal/models"
)

// ToModelPatient converts a domain Patient to a model Patient
func ToModelPatient(d domain.Patient) models.Patient {
	m := models.Patient{
		ID:        d.ID,
		UserID:    d.TenantID,
		Nom:       d.Name,
		Sexe:      nullableString(d.Sex),
		Telephone: nullableString(d.Phone),
		Adresse:   nullableString(d.Address),
		Solde:     d.Balance,
		CreatedAt: d.CreatedAt,
	}
	if d.Age != nil {
		age := int32(*d.Age)
		m.Age = &age
	}
	return m
}

// ToDomainPatient converts a model Patient to a domain Patient
func ToDomainPatient(m models.Patient) domain.Patient {
	d := domain.Patient{
		ID:        m.ID,
		TenantID:  m.UserID,
		Name:      m.Nom,
		Sex:       stringValue(m.Sexe),
		Phone:     stringValue(m.Telephone),
		Address:   stringValue(m.Adresse),
		Balance:   m.Solde,
		CreatedAt: m.CreatedAt,
	}
	if m.Age != nil {
		age := int(*m.Age)
		d.Age = &age
	}
	return d
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
