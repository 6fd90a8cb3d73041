package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient is a lab patient owned by exactly one tenant.
// A negative Balance means the patient owes money.
type Patient struct {
	ID        int64           `json:"id"`
	TenantID  string          `json:"-"`
	Name      string          `json:"name"`
	Age       *int            `json:"age,omitempty"`
	Sex       string          `json:"sex,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

// InDebt reports whether the patient currently owes money.
func (p Patient) InDebt() bool {
	return p.Balance.IsNegative()
}
