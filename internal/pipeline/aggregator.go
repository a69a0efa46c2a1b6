// Package pipeline orchestrates statement loading, caching, and aggregation.
package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finplan/internal/model"
)

// Aggregate computes summary totals from transactions within [since, until).
func Aggregate(txs []model.Transaction, since, until time.Time) model.SpendSummary {
	filtered := FilterByTime(txs, since, until)

	var stats model.SpendSummary
	months := make(map[string]struct{})

	for _, t := range filtered {
		stats.Transactions++
		if t.IsExpense() {
			stats.TotalExpenses = stats.TotalExpenses.Sub(t.Amount)
		} else {
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
		}
		if !t.Date.IsZero() {
			months[t.Date.Format("2006-01")] = struct{}{}
		}
	}

	stats.Net = stats.TotalIncome.Sub(stats.TotalExpenses)
	stats.Months = len(months)
	return stats
}

// AggregateMonths computes per-month income and spending totals.
// Months between the oldest and newest transaction with no activity are
// filled in as zeros so charts show the gaps.
func AggregateMonths(txs []model.Transaction, since, until time.Time) []model.MonthlyStats {
	filtered := FilterByTime(txs, since, until)

	monthMap := make(map[string]*model.MonthlyStats)
	var oldest, newest time.Time

	for _, t := range filtered {
		if t.Date.IsZero() {
			continue
		}
		key := t.Date.Format("2006-01")
		ms, ok := monthMap[key]
		if !ok {
			ms = &model.MonthlyStats{Month: monthStart(t.Date)}
			monthMap[key] = ms
		}
		ms.Transactions++
		if t.IsExpense() {
			ms.Expenses = ms.Expenses.Sub(t.Amount)
		} else {
			ms.Income = ms.Income.Add(t.Amount)
		}

		if oldest.IsZero() || t.Date.Before(oldest) {
			oldest = t.Date
		}
		if t.Date.After(newest) {
			newest = t.Date
		}
	}

	if !oldest.IsZero() {
		for m := monthStart(oldest); !m.After(monthStart(newest)); m = m.AddDate(0, 1, 0) {
			key := m.Format("2006-01")
			if _, ok := monthMap[key]; !ok {
				monthMap[key] = &model.MonthlyStats{Month: m}
			}
		}
	}

	months := make([]model.MonthlyStats, 0, len(monthMap))
	for _, ms := range monthMap {
		ms.Net = ms.Income.Sub(ms.Expenses)
		months = append(months, *ms)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.After(months[j].Month)
	})
	return months
}

// AggregateCategories computes per-category spending totals, sorted by total
// descending. Only expenses count; income rows are ignored.
func AggregateCategories(txs []model.Transaction, since, until time.Time) []model.CategoryTotal {
	filtered := FilterByTime(txs, since, until)

	catMap := make(map[string]*model.CategoryTotal)
	total := decimal.Zero

	for _, t := range filtered {
		if !t.IsExpense() {
			continue
		}
		ct, ok := catMap[t.Category]
		if !ok {
			ct = &model.CategoryTotal{Category: t.Category}
			catMap[t.Category] = ct
		}
		ct.Transactions++
		ct.Total = ct.Total.Sub(t.Amount)
		total = total.Sub(t.Amount)
	}

	categories := make([]model.CategoryTotal, 0, len(catMap))
	for _, ct := range catMap {
		if total.IsPositive() {
			share, _ := ct.Total.Div(total).Mul(decimal.NewFromInt(100)).Float64()
			ct.SharePercent = share
		}
		categories = append(categories, *ct)
	}
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}

// AverageMonthlyExpenses returns the mean monthly spend across all months
// with activity, as a float for seeding scenario defaults.
func AverageMonthlyExpenses(txs []model.Transaction) float64 {
	months := AggregateMonths(txs, time.Time{}, time.Time{})

	total := decimal.Zero
	active := 0
	for _, m := range months {
		if m.Transactions == 0 {
			continue
		}
		total = total.Add(m.Expenses)
		active++
	}
	if active == 0 {
		return 0
	}
	avg, _ := total.Div(decimal.NewFromInt(int64(active))).Float64()
	return avg
}

// FilterByTime returns transactions whose booking date falls within
// [since, until). Dateless rows are dropped when a bound is set.
func FilterByTime(txs []model.Transaction, since, until time.Time) []model.Transaction {
	if since.IsZero() && until.IsZero() {
		return txs
	}

	var result []model.Transaction
	for _, t := range txs {
		if t.Date.IsZero() {
			continue
		}
		if !since.IsZero() && t.Date.Before(since) {
			continue
		}
		if !until.IsZero() && !t.Date.Before(until) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// FilterByCategory returns transactions matching the category substring.
func FilterByCategory(txs []model.Transaction, category string) []model.Transaction {
	if category == "" {
		return txs
	}
	var result []model.Transaction
	for _, t := range txs {
		if strings.Contains(strings.ToLower(t.Category), strings.ToLower(category)) {
			result = append(result, t)
		}
	}
	return result
}

// FilterByBank returns transactions from the given bank.
func FilterByBank(txs []model.Transaction, bank string) []model.Transaction {
	if bank == "" {
		return txs
	}
	var result []model.Transaction
	for _, t := range txs {
		if t.Bank == bank {
			result = append(result, t)
		}
	}
	return result
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
