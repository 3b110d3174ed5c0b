package pricing

// PaymentRecord is the slice of a payment row the math cares about.
type PaymentRecord struct {
	Amount float64
	Status string
}

// Processor statuses that count as money received. Both our own "Paid"
// casing and the raw Stripe statuses appear in historical rows.
var paidStatuses = map[string]bool{
	"Paid":      true,
	"paid":      true,
	"succeeded": true,
	"completed": true,
}

// IsPaidStatus reports whether a payment status counts toward the balance.
func IsPaidStatus(status string) bool {
	return paidStatuses[status]
}

// TotalPaid sums the successfully collected payments.
func TotalPaid(payments []PaymentRecord) float64 {
	var total float64
	for _, p := range payments {
		if IsPaidStatus(p.Status) {
			total += p.Amount
		}
	}
	return total
}

// OutstandingBalance is what remains owed, floored at zero.
func OutstandingBalance(totalOwed, totalPaid float64) float64 {
	balance := totalOwed - totalPaid
	if balance < 0 {
		return 0
	}
	return balance
}

// DepositAmount is half the total, rounded to cents.
func DepositAmount(total float64) float64 {
	return Round2(total / 2)
}

// Schedule summarizes where a lead stands against a 50% deposit plan.
type Schedule struct {
	TotalOwed     float64 `json:"totalOwed"`
	TotalPaid     float64 `json:"totalPaid"`
	Deposit       float64 `json:"deposit"`
	Outstanding   float64 `json:"outstanding"`
	DueNow        float64 `json:"dueNow"`
	IsDepositPaid bool    `json:"isDepositPaid"`
	IsFullyPaid   bool    `json:"isFullyPaid"`
}

// PaymentSchedule computes the deposit plan. Until the deposit is
// covered only the remainder of the deposit is due now; after that the
// full outstanding balance is.
func PaymentSchedule(totalOwed, totalPaid float64) Schedule {
	deposit := DepositAmount(totalOwed)
	outstanding := OutstandingBalance(totalOwed, totalPaid)

	s := Schedule{
		TotalOwed:     totalOwed,
		TotalPaid:     totalPaid,
		Deposit:       deposit,
		Outstanding:   outstanding,
		IsDepositPaid: totalPaid >= deposit,
		IsFullyPaid:   outstanding == 0 && totalOwed > 0,
	}
	if s.IsDepositPaid {
		s.DueNow = outstanding
	} else {
		s.DueNow = Round2(deposit - totalPaid)
	}
	return s
}
