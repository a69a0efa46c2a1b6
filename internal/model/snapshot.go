package model

// HoldingBalance is the balance of one cash holding at the end of a year.
type HoldingBalance struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// InvestmentValue is the value of one stock investment at the end of a year.
type InvestmentValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PropertyState is the state of one real-estate investment at the end of a
// year. RentSaved is informational only: it never enters cash flow or net
// worth, the UI layer decides what to do with it.
type PropertyState struct {
	Name            string  `json:"name"`
	Value           float64 `json:"value"`
	MortgageBalance float64 `json:"mortgage_balance"`
	Equity          float64 `json:"equity"`
	MortgagePayment float64 `json:"mortgage_payment"`
	CarryingCost    float64 `json:"carrying_cost"`
	NetRentalIncome float64 `json:"net_rental_income"`
	RentSaved       float64 `json:"rent_saved,omitempty"`
}

// YearlySnapshot is the complete financial state of a scenario at one
// simulated year. Snapshots are produced in increasing year order and never
// mutated after creation; each depends only on the prior snapshot and the
// static config.
type YearlySnapshot struct {
	Year int `json:"year"`

	Cash        []HoldingBalance  `json:"cash"`
	Investments []InvestmentValue `json:"investments"`
	Properties  []PropertyState   `json:"properties"`

	TotalIncome      float64 `json:"total_income"`
	RentalIncome     float64 `json:"rental_income"`
	LivingExpenses   float64 `json:"living_expenses"`
	CarryingCosts    float64 `json:"carrying_costs"`
	MortgagePayments float64 `json:"mortgage_payments"`
	MajorExpenses    float64 `json:"major_expenses"`
	TotalExpenses    float64 `json:"total_expenses"`
	NetCashFlow      float64 `json:"net_cash_flow"`

	TotalCash           float64 `json:"total_cash"`
	TotalInvestments    float64 `json:"total_investments"`
	TotalPropertyEquity float64 `json:"total_property_equity"`
	NetWorth            float64 `json:"net_worth"`
	NetWorthReal        float64 `json:"net_worth_real"`
}

// PropertySale estimates the net proceeds of selling a property at the end
// of the horizon: final value minus selling costs minus remaining mortgage.
type PropertySale struct {
	Name            string  `json:"name"`
	GrossValue      float64 `json:"gross_value"`
	SellingCosts    float64 `json:"selling_costs"`
	MortgageBalance float64 `json:"mortgage_balance"`
	NetProceeds     float64 `json:"net_proceeds"`
}

// Summary holds the headline outcomes of a projection.
type Summary struct {
	ScenarioName       string         `json:"scenario_name"`
	HorizonYears       int            `json:"horizon_years"`
	EndingNetWorth     float64        `json:"ending_net_worth"`
	EndingNetWorthReal float64        `json:"ending_net_worth_real"`
	PeakNetWorth       float64        `json:"peak_net_worth"`
	PeakYear           int            `json:"peak_year"`
	DeficitYears       int            `json:"deficit_years"`
	PropertySales      []PropertySale `json:"property_sales,omitempty"`
}
