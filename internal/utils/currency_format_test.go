package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2000.00 DA", FormatAmount(decimal.NewFromInt(2000)))
	assert.Equal(t, "12.35 DA", FormatAmount(decimal.RequireFromString("12.3456")))
	assert.Equal(t, "-300.50 DA", FormatAmount(decimal.RequireFromString("-300.5")))
}

func TestRoundAmount(t *testing.T) {
	assert.True(t, decimal.RequireFromString("10.01").Equal(RoundAmount(decimal.RequireFromString("10.005"))))
}
