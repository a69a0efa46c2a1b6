// Package model defines the domain types for finplan scenarios, projections,
// and bank transactions.
package model

// CurrentSchemaVersion is written into saved scenario documents. Loaders
// accept documents with no version field and treat them as version 1.
const CurrentSchemaVersion = 1

// ScenarioConfig is a complete set of financial assumptions to project
// forward. It is loaded once per run and never mutated; the projection
// engine only reads it. All rate fields are fractions (0.07 = 7%).
type ScenarioConfig struct {
	SchemaVersion int    `json:"schema_version,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	HorizonYears  int    `json:"horizon_years"`
	BaseCurrency  string `json:"base_currency,omitempty"`

	GeneralAnnualInflationRate float64 `json:"general_annual_inflation_rate"`
	InitialCashOnHand          float64 `json:"initial_cash_on_hand"`
	BaseAnnualLivingExpenses   float64 `json:"base_annual_living_expenses"`

	CashHoldings          []CashHolding          `json:"cash_holdings"`
	StockInvestments      []StockInvestment      `json:"stock_investments"`
	RealEstateInvestments []RealEstateInvestment `json:"real_estate_investments"`
	IncomeSources         []IncomeSource         `json:"income_sources"`
	MajorExpenses         []MajorExpense         `json:"major_expenses"`
}

// CashHolding is an interest-bearing cash account. The first holding
// receives each year's net cash flow.
type CashHolding struct {
	Name               string  `json:"name"`
	InitialAmount      float64 `json:"initial_amount"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
}

// StockInvestment grows at its expected return; the annual contribution is
// added after growth so growth compounds only on the prior balance.
type StockInvestment struct {
	Name                 string  `json:"name"`
	InitialInvestment    float64 `json:"initial_investment"`
	AnnualContribution   float64 `json:"annual_contribution"`
	ExpectedAnnualReturn float64 `json:"expected_annual_return"`
}

// RealEstateInvestment is a property purchased at year 0 with a fixed-rate
// mortgage amortized on an annual schedule.
type RealEstateInvestment struct {
	Name               string  `json:"name"`
	IsPrimaryResidence bool    `json:"is_primary_residence,omitempty"`
	PurchasePrice      float64 `json:"purchase_price"`
	DownPaymentPct     float64 `json:"down_payment_pct"`

	MortgageTermYears          int     `json:"mortgage_term_years"`
	MortgageInterestRateAnnual float64 `json:"mortgage_interest_rate_annual"`

	PropertyTaxAnnualPctValue float64 `json:"property_tax_annual_pct_value"`
	InsuranceAnnualFixed      float64 `json:"insurance_annual_fixed"`
	MaintenanceAnnualPctValue float64 `json:"maintenance_annual_pct_value"`

	ExpectedAnnualAppreciation float64 `json:"expected_annual_appreciation"`

	IsRental          bool    `json:"is_rental,omitempty"`
	MonthlyRentIncome float64 `json:"monthly_rent_income,omitempty"`
	VacancyRatePct    float64 `json:"vacancy_rate_pct,omitempty"`
	ManagementFeePct  float64 `json:"management_fee_pct_rent,omitempty"`

	EquivalentMonthlyRentSaved float64 `json:"equivalent_monthly_rent_saved,omitempty"`

	SellingCostsPct float64 `json:"selling_costs_pct,omitempty"`
}

// LoanAmount returns the financed portion of the purchase price.
func (r RealEstateInvestment) LoanAmount() float64 {
	return r.PurchasePrice * (1 - r.DownPaymentPct)
}

// IncomeSource is an annual income stream growing at a fixed rate.
type IncomeSource struct {
	Name                     string  `json:"name"`
	InitialAnnualIncome      float64 `json:"initial_annual_income"`
	ExpectedAnnualGrowthRate float64 `json:"expected_annual_growth_rate"`
}

// MajorExpense is a one-time expense applied in a specific projection year.
// YearOfExpense must lie within [0, horizon_years].
type MajorExpense struct {
	Name          string  `json:"name"`
	YearOfExpense int     `json:"year_of_expense"`
	Amount        float64 `json:"amount"`
}
