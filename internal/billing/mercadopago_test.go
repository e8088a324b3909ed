package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanAmountMonthly(t *testing.T) {
	amount, err := PlanAmount("growth", "monthly")
	require.NoError(t, err)
	assert.Equal(t, 99.0, amount)
}

func TestPlanAmountAnnualHasDiscount(t *testing.T) {
	// anual = 12 meses pelo preço de 10
	amount, err := PlanAmount("clinic", "annual")
	require.NoError(t, err)
	assert.Equal(t, 1990.0, amount)
}

func TestPlanAmountUnknownPlan(t *testing.T) {
	_, err := PlanAmount("platinum", "monthly")
	assert.Error(t, err)
}

func TestNewWithoutTokenDisablesBilling(t *testing.T) {
	client, err := New("")
	require.NoError(t, err)
	assert.Nil(t, client)
}
