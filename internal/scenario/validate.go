// Package scenario loads, saves, and validates scenario documents.
package scenario

import (
	"fmt"

	"finplan/internal/model"
)

// ConfigError reports an invalid scenario field. It is the only error the
// projection path can produce: once validation passes, projecting cannot
// fail.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid scenario: %s: %s", e.Field, e.Reason)
}

func errf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks a scenario config against the constraints the projection
// engine assumes. Monetary fields must be non-negative; cost-side rates must
// be non-negative; share-style fractions must lie in [0, 1]. Market
// assumption rates (returns, appreciation, income growth) may be negative to
// model downturns.
func Validate(cfg *model.ScenarioConfig) error {
	if cfg.HorizonYears <= 0 {
		return errf("horizon_years", "must be positive, got %d", cfg.HorizonYears)
	}
	if cfg.GeneralAnnualInflationRate < 0 {
		return errf("general_annual_inflation_rate", "must not be negative")
	}
	if cfg.InitialCashOnHand < 0 {
		return errf("initial_cash_on_hand", "must not be negative")
	}
	if cfg.BaseAnnualLivingExpenses < 0 {
		return errf("base_annual_living_expenses", "must not be negative")
	}

	for i, h := range cfg.CashHoldings {
		field := fmt.Sprintf("cash_holdings[%d]", i)
		if h.InitialAmount < 0 {
			return errf(field+".initial_amount", "must not be negative")
		}
		if h.AnnualInterestRate < 0 {
			return errf(field+".annual_interest_rate", "must not be negative")
		}
	}

	for i, s := range cfg.StockInvestments {
		field := fmt.Sprintf("stock_investments[%d]", i)
		if s.InitialInvestment < 0 {
			return errf(field+".initial_investment", "must not be negative")
		}
		if s.AnnualContribution < 0 {
			return errf(field+".annual_contribution", "must not be negative")
		}
	}

	for i, p := range cfg.RealEstateInvestments {
		if err := validateProperty(fmt.Sprintf("real_estate_investments[%d]", i), p); err != nil {
			return err
		}
	}

	for i, src := range cfg.IncomeSources {
		if src.InitialAnnualIncome < 0 {
			return errf(fmt.Sprintf("income_sources[%d].initial_annual_income", i), "must not be negative")
		}
	}

	for i, e := range cfg.MajorExpenses {
		field := fmt.Sprintf("major_expenses[%d]", i)
		if e.Amount < 0 {
			return errf(field+".amount", "must not be negative")
		}
		if e.YearOfExpense < 0 || e.YearOfExpense > cfg.HorizonYears {
			return errf(field+".year_of_expense",
				"must lie within [0, %d], got %d", cfg.HorizonYears, e.YearOfExpense)
		}
	}

	return nil
}

func validateProperty(field string, p model.RealEstateInvestment) error {
	if p.PurchasePrice < 0 {
		return errf(field+".purchase_price", "must not be negative")
	}
	if p.DownPaymentPct < 0 || p.DownPaymentPct > 1 {
		return errf(field+".down_payment_pct", "must lie within [0, 1], got %g", p.DownPaymentPct)
	}
	if p.MortgageInterestRateAnnual < 0 {
		return errf(field+".mortgage_interest_rate_annual", "must not be negative")
	}
	if p.LoanAmount() > 0 && p.MortgageTermYears <= 0 {
		return errf(field+".mortgage_term_years", "must be positive when a loan is financed")
	}
	if p.PropertyTaxAnnualPctValue < 0 {
		return errf(field+".property_tax_annual_pct_value", "must not be negative")
	}
	if p.InsuranceAnnualFixed < 0 {
		return errf(field+".insurance_annual_fixed", "must not be negative")
	}
	if p.MaintenanceAnnualPctValue < 0 {
		return errf(field+".maintenance_annual_pct_value", "must not be negative")
	}
	if p.MonthlyRentIncome < 0 {
		return errf(field+".monthly_rent_income", "must not be negative")
	}
	if p.VacancyRatePct < 0 || p.VacancyRatePct > 1 {
		return errf(field+".vacancy_rate_pct", "must lie within [0, 1], got %g", p.VacancyRatePct)
	}
	if p.ManagementFeePct < 0 || p.ManagementFeePct > 1 {
		return errf(field+".management_fee_pct_rent", "must lie within [0, 1], got %g", p.ManagementFeePct)
	}
	if p.EquivalentMonthlyRentSaved < 0 {
		return errf(field+".equivalent_monthly_rent_saved", "must not be negative")
	}
	if p.SellingCostsPct < 0 || p.SellingCostsPct > 1 {
		return errf(field+".selling_costs_pct", "must lie within [0, 1], got %g", p.SellingCostsPct)
	}
	return nil
}
