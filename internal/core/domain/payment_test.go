package domain_test

import (
	"testing"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.PaymentMode
		wantErr bool
	}{
		{"cash", domain.PaymentModeCash, false},
		{"ESPECE", domain.PaymentModeCash, false},
		{"installment", domain.PaymentModeInstallment, false},
		{" a_terme ", domain.PaymentModeInstallment, false},
		{"partial", domain.PaymentModePartial, false},
		{"paiement_partiel", domain.PaymentModePartial, false},
		{"cheque", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParsePaymentMode(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownPaymentMode)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestPayment_RemainingDue(t *testing.T) {
	total := decimal.NewFromInt(3000)

	installment := domain.Payment{Mode: domain.PaymentModeInstallment, Amount: decimal.NewFromInt(1000), TotalAmount: &total}
	assert.True(t, decimal.NewFromInt(2000).Equal(installment.RemainingDue()))

	cash := domain.Payment{Mode: domain.PaymentModeCash, Amount: decimal.NewFromInt(1000), TotalAmount: &total}
	assert.True(t, cash.RemainingDue().IsZero())
}

func TestPatient_InDebt(t *testing.T) {
	assert.True(t, domain.Patient{Balance: decimal.NewFromInt(-1)}.InDebt())
	assert.False(t, domain.Patient{Balance: decimal.Zero}.InDebt())
}
