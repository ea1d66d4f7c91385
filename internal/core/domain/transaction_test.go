package domain_test

import (
	"testing"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveTransactionType(t *testing.T) {
	testCases := []struct {
		name     string
		amount   decimal.Decimal
		expected domain.TransactionType
	}{
		{"positive amount is income", decimal.NewFromFloat(150.00), domain.TransactionIncome},
		{"negative amount is expense", decimal.NewFromFloat(-20.00), domain.TransactionExpense},
		{"zero amount is income", decimal.Zero, domain.TransactionIncome},
		{"small negative fraction is expense", decimal.NewFromFloat(-0.01), domain.TransactionExpense},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.DeriveTransactionType(tc.amount))
		})
	}
}
