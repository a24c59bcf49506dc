package simulation

// Input is the tagged variant of calculator inputs. Each supported Kind has
// exactly one implementation; the unexported marker keeps the set closed.
type Input interface {
	// Kind returns the calculator this input is meant for.
	Kind() Kind

	isInput()
}

// CompoundInterestInput holds the inputs of the compound interest calculator.
type CompoundInterestInput struct {
	// Principal is the initial amount invested.
	Principal float64 `json:"principal"`
	// Rate is the annual interest rate in percent.
	Rate float64 `json:"rate"`
	// Time is the investment horizon in years.
	Time float64 `json:"time"`
	// Frequency is the number of compounding periods per year.
	Frequency float64 `json:"frequency"`
}

// SimpleInterestInput holds the inputs of the simple interest calculator.
type SimpleInterestInput struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Time      float64 `json:"time"`
}

// EMIInput holds the inputs of the loan installment calculator.
type EMIInput struct {
	// Principal is the loan amount.
	Principal float64 `json:"principal"`
	// Rate is the annual interest rate in percent.
	Rate float64 `json:"rate"`
	// Months is the repayment tenure.
	Months float64 `json:"months"`
}

// SIPInput holds the inputs of the systematic investment plan calculator.
type SIPInput struct {
	MonthlyInvestment float64 `json:"monthly_investment"`
	// Rate is the expected annual return in percent.
	Rate   float64 `json:"rate"`
	Months float64 `json:"months"`
}

// BudgetInput holds the inputs of the budget builder.
type BudgetInput struct {
	Income float64 `json:"income"`
	// Expenses maps an expense category to its monthly amount.
	Expenses map[string]float64 `json:"expenses"`
}

func (CompoundInterestInput) Kind() Kind { return KindCompoundInterest }
func (SimpleInterestInput) Kind() Kind   { return KindSimpleInterest }
func (EMIInput) Kind() Kind              { return KindEMI }
func (SIPInput) Kind() Kind              { return KindSIP }
func (BudgetInput) Kind() Kind           { return KindBudget }

func (CompoundInterestInput) isInput() {}
func (SimpleInterestInput) isInput()   {}
func (EMIInput) isInput()              {}
func (SIPInput) isInput()              {}
func (BudgetInput) isInput()           {}
