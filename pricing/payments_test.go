package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPaidStatus(t *testing.T) {
	for _, status := range []string{"Paid", "paid", "succeeded", "completed"} {
		assert.True(t, IsPaidStatus(status), status)
	}
	for _, status := range []string{"pending", "failed", "refunded", "PAID", ""} {
		assert.False(t, IsPaidStatus(status), status)
	}
}

func TestTotalPaidSkipsUnsettled(t *testing.T) {
	payments := []PaymentRecord{
		{Amount: 1250, Status: "succeeded"},
		{Amount: 500, Status: "pending"},
		{Amount: 100, Status: "Paid"},
		{Amount: 75, Status: "failed"},
	}
	assert.Equal(t, 1350.0, TotalPaid(payments))
	assert.Equal(t, 0.0, TotalPaid(nil))
}

func TestOutstandingBalance(t *testing.T) {
	assert.Equal(t, 1250.0, OutstandingBalance(2500, 1250))
	assert.Equal(t, 0.0, OutstandingBalance(2500, 2500))
	// overpayment never goes negative
	assert.Equal(t, 0.0, OutstandingBalance(2500, 3000))
}

func TestPaymentSchedule(t *testing.T) {
	t.Run("nothing paid owes the deposit", func(t *testing.T) {
		s := PaymentSchedule(2500, 0)
		assert.Equal(t, 1250.0, s.Deposit)
		assert.Equal(t, 1250.0, s.DueNow)
		assert.Equal(t, 2500.0, s.Outstanding)
		assert.False(t, s.IsDepositPaid)
		assert.False(t, s.IsFullyPaid)
	})

	t.Run("partial deposit owes the remainder of the deposit", func(t *testing.T) {
		s := PaymentSchedule(2500, 500)
		assert.Equal(t, 750.0, s.DueNow)
		assert.False(t, s.IsDepositPaid)
	})

	t.Run("deposit met owes the outstanding balance", func(t *testing.T) {
		s := PaymentSchedule(2500, 1250)
		assert.True(t, s.IsDepositPaid)
		assert.Equal(t, 1250.0, s.DueNow)
		assert.False(t, s.IsFullyPaid)
	})

	t.Run("fully paid", func(t *testing.T) {
		s := PaymentSchedule(2500, 2500)
		assert.Equal(t, 0.0, s.DueNow)
		assert.Equal(t, 0.0, s.Outstanding)
		assert.True(t, s.IsFullyPaid)
	})

	t.Run("zero total is not fully paid", func(t *testing.T) {
		s := PaymentSchedule(0, 0)
		assert.False(t, s.IsFullyPaid)
		assert.Equal(t, 0.0, s.DueNow)
	})
}

func TestDepositAmountRounds(t *testing.T) {
	assert.Equal(t, 1250.0, DepositAmount(2500))
	assert.Equal(t, 1250.13, DepositAmount(2500.25))
}
