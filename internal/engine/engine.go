// Package engine projects a scenario configuration into a year-indexed
// sequence of financial snapshots. The projection is a pure left-fold over
// years 0..horizon: deterministic, single-threaded, no shared state.
// Independent callers may project concurrently without coordination.
package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"finplan/internal/model"
	"finplan/internal/scenario"
)

// surplusHoldingName is used for the implicit accumulator that absorbs net
// cash flow when a scenario configures no cash holdings at all.
const surplusHoldingName = "Surplus"

// Result wraps the snapshot sequence with run metadata and headline
// outcomes. Snapshots are identical across runs of the same config; only the
// metadata differs.
type Result struct {
	RunID        string                 `json:"run_id"`
	ScenarioName string                 `json:"scenario_name"`
	BaseCurrency string                 `json:"base_currency,omitempty"`
	StartedAt    time.Time              `json:"started_at"`
	DurationMs   int64                  `json:"duration_ms"`
	Snapshots    []model.YearlySnapshot `json:"snapshots"`
	Summary      model.Summary          `json:"summary"`
}

// Project validates cfg and produces snapshots for years 0..horizon
// inclusive. The only possible error is a *scenario.ConfigError; once
// validation passes the projection cannot fail.
func Project(cfg *model.ScenarioConfig) (*Result, error) {
	if err := scenario.Validate(cfg); err != nil {
		return nil, err
	}

	started := time.Now()
	snapshots := project(cfg)
	elapsed := time.Since(started)

	return &Result{
		RunID:        uuid.New().String(),
		ScenarioName: cfg.Name,
		BaseCurrency: cfg.BaseCurrency,
		StartedAt:    started.UTC(),
		DurationMs:   elapsed.Milliseconds(),
		Snapshots:    snapshots,
		Summary:      summarize(cfg, snapshots),
	}, nil
}

// state is the mutable fold accumulator. Everything a year's snapshot needs
// lives here or in the static config.
type state struct {
	cashNames []string
	cash      []float64
	stocks    []float64
	propVals  []float64
	mortgages []mortgage
	incomes   []float64
	living    float64
}

func newState(cfg *model.ScenarioConfig) *state {
	s := &state{living: cfg.BaseAnnualLivingExpenses}

	if len(cfg.CashHoldings) == 0 {
		s.cashNames = []string{surplusHoldingName}
		s.cash = []float64{0}
	} else {
		for _, h := range cfg.CashHoldings {
			s.cashNames = append(s.cashNames, h.Name)
			s.cash = append(s.cash, h.InitialAmount)
		}
	}

	for _, inv := range cfg.StockInvestments {
		s.stocks = append(s.stocks, inv.InitialInvestment)
	}
	for _, p := range cfg.RealEstateInvestments {
		s.propVals = append(s.propVals, p.PurchasePrice)
		s.mortgages = append(s.mortgages, newMortgage(p.LoanAmount(), p.MortgageInterestRateAnnual, p.MortgageTermYears))
	}
	for _, src := range cfg.IncomeSources {
		s.incomes = append(s.incomes, src.InitialAnnualIncome)
	}
	return s
}

func project(cfg *model.ScenarioConfig) []model.YearlySnapshot {
	s := newState(cfg)
	snapshots := make([]model.YearlySnapshot, 0, cfg.HorizonYears+1)

	// Year 0 reproduces initial amounts: no growth, income, or recurring
	// expense flow. A major expense scheduled at year 0 is the only flow.
	snapshots = append(snapshots, s.emit(cfg, 0, yearFlows{major: majorExpensesDue(cfg, 0)}))

	for year := 1; year <= cfg.HorizonYears; year++ {
		flows := s.advance(cfg, year)
		snapshots = append(snapshots, s.emit(cfg, year, flows))
	}
	return snapshots
}

// yearFlows holds one year's income and expense components before
// aggregation into a snapshot.
type yearFlows struct {
	income    float64
	rental    float64
	living    float64
	carrying  float64
	mortgage  float64
	major     float64
	payments  []float64 // per-property mortgage payment
	carryings []float64 // per-property carrying cost
	rentals   []float64 // per-property net rental income
}

// advance applies the per-year update to every holding, investment, and
// property, then returns the year's flow components. Cash flow is applied to
// the first holding by emit, after its interest growth.
func (s *state) advance(cfg *model.ScenarioConfig, year int) yearFlows {
	flows := yearFlows{
		payments:  make([]float64, len(cfg.RealEstateInvestments)),
		carryings: make([]float64, len(cfg.RealEstateInvestments)),
		rentals:   make([]float64, len(cfg.RealEstateInvestments)),
	}

	for i, h := range cfg.CashHoldings {
		s.cash[i] *= 1 + h.AnnualInterestRate
	}

	// Growth compounds only on the prior balance; the contribution lands
	// after.
	for i, inv := range cfg.StockInvestments {
		s.stocks[i] = s.stocks[i]*(1+inv.ExpectedAnnualReturn) + inv.AnnualContribution
	}

	for i, p := range cfg.RealEstateInvestments {
		s.propVals[i] *= 1 + p.ExpectedAnnualAppreciation
		value := s.propVals[i]

		payment := s.mortgages[i].step(year)
		carrying := value*p.PropertyTaxAnnualPctValue + value*p.MaintenanceAnnualPctValue + p.InsuranceAnnualFixed

		flows.payments[i] = payment
		flows.carryings[i] = carrying
		flows.mortgage += payment
		flows.carrying += carrying

		if p.IsRental {
			gross := p.MonthlyRentIncome * 12 * (1 - p.VacancyRatePct)
			net := gross - gross*p.ManagementFeePct
			flows.rentals[i] = net
			flows.rental += net
		}
	}

	for i, src := range cfg.IncomeSources {
		s.incomes[i] *= 1 + src.ExpectedAnnualGrowthRate
		flows.income += s.incomes[i]
	}

	s.living *= 1 + cfg.GeneralAnnualInflationRate
	flows.living = s.living
	flows.major = majorExpensesDue(cfg, year)

	return flows
}

// majorExpensesDue sums one-time expenses scheduled for the given year.
// Amounts are nominal: not inflated, not amortized, not recurring.
func majorExpensesDue(cfg *model.ScenarioConfig, year int) float64 {
	var total float64
	for _, e := range cfg.MajorExpenses {
		if e.YearOfExpense == year {
			total += e.Amount
		}
	}
	return total
}

// emit aggregates the year's flows, applies net cash flow to the first cash
// holding, and produces the snapshot. Negative balances are allowed: a
// shortfall is recorded, not forbidden.
func (s *state) emit(cfg *model.ScenarioConfig, year int, flows yearFlows) model.YearlySnapshot {
	totalIncome := flows.income + flows.rental
	totalExpenses := flows.living + flows.carrying + flows.mortgage + flows.major
	netCashFlow := totalIncome - totalExpenses

	s.cash[0] += netCashFlow

	snap := model.YearlySnapshot{
		Year:             year,
		TotalIncome:      totalIncome,
		RentalIncome:     flows.rental,
		LivingExpenses:   flows.living,
		CarryingCosts:    flows.carrying,
		MortgagePayments: flows.mortgage,
		MajorExpenses:    flows.major,
		TotalExpenses:    totalExpenses,
		NetCashFlow:      netCashFlow,
	}

	snap.Cash = make([]model.HoldingBalance, len(s.cash))
	for i, name := range s.cashNames {
		snap.Cash[i] = model.HoldingBalance{Name: name, Balance: s.cash[i]}
		snap.TotalCash += s.cash[i]
	}

	snap.Investments = make([]model.InvestmentValue, len(s.stocks))
	for i, inv := range cfg.StockInvestments {
		snap.Investments[i] = model.InvestmentValue{Name: inv.Name, Value: s.stocks[i]}
		snap.TotalInvestments += s.stocks[i]
	}

	snap.Properties = make([]model.PropertyState, len(cfg.RealEstateInvestments))
	for i, p := range cfg.RealEstateInvestments {
		value := s.propVals[i]
		balance := s.mortgages[i].balance
		ps := model.PropertyState{
			Name:            p.Name,
			Value:           value,
			MortgageBalance: balance,
			Equity:          value - balance,
			RentSaved:       p.EquivalentMonthlyRentSaved * 12,
		}
		if flows.payments != nil {
			ps.MortgagePayment = flows.payments[i]
			ps.CarryingCost = flows.carryings[i]
			ps.NetRentalIncome = flows.rentals[i]
		}
		snap.Properties[i] = ps
		snap.TotalPropertyEquity += ps.Equity
	}

	snap.NetWorth = snap.TotalCash + snap.TotalInvestments + snap.TotalPropertyEquity
	snap.NetWorthReal = discount(snap.NetWorth, cfg.GeneralAnnualInflationRate, year)
	return snap
}

// discount converts a nominal year-N amount to present value.
func discount(value, inflation float64, years int) float64 {
	if years == 0 || inflation == 0 {
		return value
	}
	return value / math.Pow(1+inflation, float64(years))
}

func summarize(cfg *model.ScenarioConfig, snapshots []model.YearlySnapshot) model.Summary {
	final := snapshots[len(snapshots)-1]

	sum := model.Summary{
		ScenarioName:       cfg.Name,
		HorizonYears:       cfg.HorizonYears,
		EndingNetWorth:     final.NetWorth,
		EndingNetWorthReal: final.NetWorthReal,
		PeakNetWorth:       snapshots[0].NetWorth,
		PeakYear:           0,
	}

	for _, snap := range snapshots {
		if snap.NetWorth > sum.PeakNetWorth {
			sum.PeakNetWorth = snap.NetWorth
			sum.PeakYear = snap.Year
		}
		if snap.Year > 0 && snap.NetCashFlow < 0 {
			sum.DeficitYears++
		}
	}

	for i, p := range cfg.RealEstateInvestments {
		fp := final.Properties[i]
		costs := fp.Value * p.SellingCostsPct
		sum.PropertySales = append(sum.PropertySales, model.PropertySale{
			Name:            p.Name,
			GrossValue:      fp.Value,
			SellingCosts:    costs,
			MortgageBalance: fp.MortgageBalance,
			NetProceeds:     fp.Value - costs - fp.MortgageBalance,
		})
	}

	return sum
}
