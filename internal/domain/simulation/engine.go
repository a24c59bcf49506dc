package simulation

import (
	"fmt"
	"math"
	"sort"
)

// Engine defines the calculator operations.
type Engine interface {
	// Calculate runs the calculator selected by the input's kind.
	//
	// Returns ErrInvalidKind for a nil input and ErrInvalidInput when the
	// inputs cannot produce a finite result.
	Calculate(input Input) (Result, error)
}

// defaultEngine is the standard implementation of the Engine interface
type defaultEngine struct {
	params *Params
}

// NewDefaultEngine creates a new engine with default parameters
func NewDefaultEngine() Engine {
	return &defaultEngine{
		params: NewDefaultParams(),
	}
}

// NewEngineWithParams creates a new engine with custom parameters
func NewEngineWithParams(params *Params) Engine {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultEngine{
		params: params,
	}
}

// Calculate implements Engine.
func (e *defaultEngine) Calculate(input Input) (Result, error) {
	switch in := input.(type) {
	case CompoundInterestInput:
		return e.compoundInterest(in)
	case SimpleInterestInput:
		return e.simpleInterest(in)
	case EMIInput:
		return e.emi(in)
	case SIPInput:
		return e.sip(in)
	case BudgetInput:
		return e.budget(in)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidKind, input)
	}
}

func (e *defaultEngine) round(x float64) float64 {
	return Round(x, e.params.DecimalPlaces)
}

// compoundInterest computes amount = P·(1 + r/F)^(F·T).
//
// A zero Frequency falls back to the default compounding frequency; a
// negative one is rejected. The return percentage is 0 when the principal is
// not positive.
func (e *defaultEngine) compoundInterest(in CompoundInterestInput) (Result, error) {
	frequency := in.Frequency
	if frequency == 0 {
		frequency = e.params.DefaultCompoundingFrequency
	}
	if frequency < 0 {
		return nil, fmt.Errorf("%w: frequency must be positive", ErrInvalidInput)
	}

	rate := in.Rate / 100
	amount := in.Principal * math.Pow(1+rate/frequency, frequency*in.Time)
	interest := amount - in.Principal

	var returnPct float64
	if in.Principal > 0 {
		returnPct = interest / in.Principal * 100
	}

	if err := checkFinite(amount, interest, returnPct); err != nil {
		return nil, err
	}

	return CompoundInterestResult{
		FinalAmount:           e.round(amount),
		InterestEarned:        e.round(interest),
		Principal:             in.Principal,
		TotalReturnPercentage: e.round(returnPct),
	}, nil
}

func (e *defaultEngine) simpleInterest(in SimpleInterestInput) (Result, error) {
	interest := in.Principal * (in.Rate / 100) * in.Time
	amount := in.Principal + interest

	if err := checkFinite(amount, interest); err != nil {
		return nil, err
	}

	return SimpleInterestResult{
		FinalAmount:    e.round(amount),
		InterestEarned: e.round(interest),
		Principal:      in.Principal,
	}, nil
}

// emi computes the equated monthly installment of a loan.
//
// With a positive monthly rate r the annuity formula P·r·(1+r)^M/((1+r)^M−1)
// is used. Otherwise the principal is split evenly over the months. A tenure
// of zero months yields an installment of 0 in both branches, and a
// non-positive tenure yields 0 in the even-split branch.
func (e *defaultEngine) emi(in EMIInput) (Result, error) {
	monthlyRate := in.Rate / 100 / e.params.MonthsPerYear

	var installment float64
	switch {
	case in.Months == 0:
		installment = 0
	case monthlyRate > 0:
		growth := math.Pow(1+monthlyRate, in.Months)
		installment = in.Principal * monthlyRate * growth / (growth - 1)
	case in.Months > 0:
		installment = in.Principal / in.Months
	default:
		installment = 0
	}

	totalPayment := installment * in.Months
	totalInterest := totalPayment - in.Principal

	if err := checkFinite(installment, totalPayment, totalInterest); err != nil {
		return nil, err
	}

	return EMIResult{
		EMI:           e.round(installment),
		TotalPayment:  e.round(totalPayment),
		TotalInterest: e.round(totalInterest),
		Principal:     in.Principal,
	}, nil
}

// sip computes the future value of a monthly investment paid at the start of
// each period: A·(((1+r)^M − 1)/r)·(1+r). A non-positive rate degrades to the
// plain sum of contributions.
func (e *defaultEngine) sip(in SIPInput) (Result, error) {
	monthlyRate := in.Rate / 100 / e.params.MonthsPerYear

	var futureValue float64
	if monthlyRate > 0 {
		growth := math.Pow(1+monthlyRate, in.Months)
		futureValue = in.MonthlyInvestment * ((growth - 1) / monthlyRate) * (1 + monthlyRate)
	} else {
		futureValue = in.MonthlyInvestment * in.Months
	}

	totalInvested := in.MonthlyInvestment * in.Months
	returns := futureValue - totalInvested

	var returnPct float64
	if totalInvested > 0 {
		returnPct = returns / totalInvested * 100
	}

	if err := checkFinite(futureValue, totalInvested, returns, returnPct); err != nil {
		return nil, err
	}

	return SIPResult{
		FutureValue:      e.round(futureValue),
		TotalInvested:    e.round(totalInvested),
		Returns:          e.round(returns),
		ReturnPercentage: e.round(returnPct),
	}, nil
}

func (e *defaultEngine) budget(in BudgetInput) (Result, error) {
	// Sum in category order so the float total does not depend on map
	// iteration order.
	categories := make([]string, 0, len(in.Expenses))
	for category := range in.Expenses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var totalExpenses float64
	for _, category := range categories {
		totalExpenses += in.Expenses[category]
	}

	savings := in.Income - totalExpenses

	var savingsRate float64
	if in.Income > 0 {
		savingsRate = savings / in.Income * 100
	}

	if err := checkFinite(totalExpenses, savings, savingsRate); err != nil {
		return nil, err
	}

	status := BudgetStatusSurplus
	if savings < 0 {
		status = BudgetStatusDeficit
	}

	return BudgetResult{
		Income:        in.Income,
		TotalExpenses: e.round(totalExpenses),
		Savings:       e.round(savings),
		SavingsRate:   e.round(savingsRate),
		Status:        status,
	}, nil
}
