package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyStats holds income and spending totals for one calendar month.
type MonthlyStats struct {
	Month        time.Time // first day of the month, local time
	Income       decimal.Decimal
	Expenses     decimal.Decimal // positive magnitude
	Net          decimal.Decimal
	Transactions int
}

// CategoryTotal holds spending attributed to one category over a time range.
type CategoryTotal struct {
	Category     string
	Total        decimal.Decimal // positive magnitude
	Transactions int
	SharePercent float64
}

// SpendSummary holds aggregate totals over a time range.
type SpendSummary struct {
	Transactions  int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal // positive magnitude
	Net           decimal.Decimal
	Months        int
}
