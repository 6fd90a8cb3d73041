package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient mirrors a row of the patients table.
type Patient struct {
	ID        int64           `db:"id"`
	UserID    string          `db:"user_id"` // Tenant
	Nom       string          `db:"nom"`
	Age       *int32          `db:"age"`       // Nullable
	Sexe      *string         `db:"sexe"`      // Nullable
	Telephone *string         `db:"telephone"` // Nullable
	Adresse   *string         `db:"adresse"`   // Nullable
	Solde     decimal.Decimal `db:"solde"`
	CreatedAt time.Time       `db:"created_at"`
}
