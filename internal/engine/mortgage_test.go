package engine

import (
	"math"
	"testing"
)

func TestAnnualPayment_OneYearLoan(t *testing.T) {
	// A one-year loan is repaid in a single payment of principal plus one
	// year of interest.
	got := AnnualPayment(1000, 0.10, 1)
	if math.Abs(got-1100) > 1e-9 {
		t.Errorf("AnnualPayment = %v, want 1100", got)
	}
}

func TestAnnualPayment_ZeroRate(t *testing.T) {
	got := AnnualPayment(120000, 0, 30)
	if math.Abs(got-4000) > 1e-9 {
		t.Errorf("AnnualPayment = %v, want 4000", got)
	}
}

func TestAnnualPayment_ZeroPrincipal(t *testing.T) {
	if got := AnnualPayment(0, 0.05, 20); got != 0 {
		t.Errorf("AnnualPayment = %v, want 0", got)
	}
}

func TestMortgage_AmortizesToZeroAtTerm(t *testing.T) {
	m := newMortgage(200000, 0.035, 20)

	var totalPaid float64
	for year := 1; year <= 20; year++ {
		totalPaid += m.step(year)
	}

	if m.balance != 0 {
		t.Errorf("balance after full term = %v, want exactly 0", m.balance)
	}
	if totalPaid <= 200000 {
		t.Errorf("total paid %v should exceed principal (interest accrues)", totalPaid)
	}

	// No further payments after the term.
	if p := m.step(21); p != 0 {
		t.Errorf("payment after term = %v, want 0", p)
	}
	if m.balance != 0 {
		t.Errorf("balance after term = %v, want 0", m.balance)
	}
}

func TestMortgage_PrincipalShareGrows(t *testing.T) {
	m := newMortgage(100000, 0.05, 10)

	prevBalance := m.balance
	prevPrincipal := 0.0
	for year := 1; year <= 10; year++ {
		m.step(year)
		principal := prevBalance - m.balance
		if year > 1 && principal <= prevPrincipal {
			t.Fatalf("year %d principal %v not greater than prior %v", year, principal, prevPrincipal)
		}
		prevPrincipal = principal
		prevBalance = m.balance
	}
}
