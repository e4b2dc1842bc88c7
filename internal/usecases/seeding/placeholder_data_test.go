package seeding

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderDataset(t *testing.T) {
	dataset := PlaceholderDataset()

	require.Len(t, dataset.Users, 1)
	require.Len(t, dataset.Customers, 6)
	require.Len(t, dataset.Invoices, 13)
	require.Len(t, dataset.Revenue, 12)

	emails := make(map[string]bool)
	for _, user := range dataset.Users {
		assert.False(t, emails[user.Email], "email duplicado: %s", user.Email)
		emails[user.Email] = true
		assert.NoError(t, uuid.Validate(user.ID))
		assert.NotEmpty(t, user.Password)
	}

	customers := make(map[string]bool)
	for _, customer := range dataset.Customers {
		assert.NoError(t, uuid.Validate(customer.ID))
		customers[customer.ID] = true
	}

	for _, invoice := range dataset.Invoices {
		assert.Positive(t, invoice.Amount)
		assert.True(t, invoice.Status.IsValid(), "status inválido: %s", invoice.Status)
		assert.True(t, customers[invoice.CustomerID], "fatura referencia cliente inexistente: %s", invoice.CustomerID)
		assert.Empty(t, invoice.ID, "o banco gera o ID das faturas")
	}

	months := make(map[string]bool)
	for _, revenue := range dataset.Revenue {
		assert.False(t, months[revenue.Month], "mês duplicado: %s", revenue.Month)
		assert.LessOrEqual(t, len(revenue.Month), 4)
		months[revenue.Month] = true
	}
}

func TestPlaceholderDataset_ReturnsFreshCopy(t *testing.T) {
	first := PlaceholderDataset()
	first.Users[0].Password = "alterada"

	assert.Equal(t, "123456", PlaceholderDataset().Users[0].Password)
}
