package engine

import "math"

// balanceEpsilon absorbs float residue on the final payment so a fully
// amortized loan reads exactly zero.
const balanceEpsilon = 1e-6

// AnnualPayment returns the fixed annual payment for a loan amortized over
// termYears at the given annual rate, via the standard annuity formula.
func AnnualPayment(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(termYears)
	}
	pow := math.Pow(1+annualRate, float64(termYears))
	return principal * annualRate * pow / (pow - 1)
}

// mortgage tracks one fixed-rate loan on an annual amortization schedule.
// The payment is computed once at purchase and never changes.
type mortgage struct {
	payment   float64
	balance   float64
	rate      float64
	termYears int
}

func newMortgage(principal, annualRate float64, termYears int) mortgage {
	return mortgage{
		payment:   AnnualPayment(principal, annualRate, termYears),
		balance:   principal,
		rate:      annualRate,
		termYears: termYears,
	}
}

// step advances the schedule by one year and returns the payment made.
// yearsElapsed is the number of years since purchase including this one;
// once it reaches the term the balance is exactly zero and no further
// payments are made.
func (m *mortgage) step(yearsElapsed int) float64 {
	if m.balance <= 0 {
		m.balance = 0
		return 0
	}

	interest := m.balance * m.rate
	principal := m.payment - interest
	payment := m.payment

	if principal >= m.balance || yearsElapsed >= m.termYears {
		// Final payment clears the remaining balance.
		payment = interest + m.balance
		m.balance = 0
		return payment
	}

	m.balance -= principal
	if m.balance < balanceEpsilon {
		m.balance = 0
	}
	return payment
}
