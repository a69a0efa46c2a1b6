package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses. Reserved rows are present in the export but not yet
// booked by the bank; their date column carries a marker instead of a date.
const (
	StatusBooked   = "Booked"
	StatusReserved = "Reserved"
	StatusPending  = "Pending"
)

// Transaction is one normalized bank-statement row. Amounts are decimal so
// that statement sums never drift; negative amounts are outflows.
type Transaction struct {
	ID          string
	Bank        string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Balance     decimal.Decimal
	Currency    string
	Status      string
	Category    string
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
