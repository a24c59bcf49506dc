package simulation

// BudgetStatus classifies a budget by the sign of its savings.
type BudgetStatus string

// Budget statuses.
const (
	BudgetStatusSurplus BudgetStatus = "surplus"
	BudgetStatusDeficit BudgetStatus = "deficit"
)

// Result is the output of a calculator. Implementations marshal to the named
// output fields of their kind.
type Result interface {
	Kind() Kind

	isResult()
}

// CompoundInterestResult is the output of the compound interest calculator.
type CompoundInterestResult struct {
	FinalAmount           float64 `json:"final_amount"`
	InterestEarned        float64 `json:"interest_earned"`
	Principal             float64 `json:"principal"`
	TotalReturnPercentage float64 `json:"total_return_percentage"`
}

// SimpleInterestResult is the output of the simple interest calculator.
type SimpleInterestResult struct {
	FinalAmount    float64 `json:"final_amount"`
	InterestEarned float64 `json:"interest_earned"`
	Principal      float64 `json:"principal"`
}

// EMIResult is the output of the loan installment calculator.
type EMIResult struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
	Principal     float64 `json:"principal"`
}

// SIPResult is the output of the SIP calculator.
type SIPResult struct {
	FutureValue      float64 `json:"future_value"`
	TotalInvested    float64 `json:"total_invested"`
	Returns          float64 `json:"returns"`
	ReturnPercentage float64 `json:"return_percentage"`
}

// BudgetResult is the output of the budget builder.
type BudgetResult struct {
	Income        float64      `json:"income"`
	TotalExpenses float64      `json:"total_expenses"`
	Savings       float64      `json:"savings"`
	SavingsRate   float64      `json:"savings_rate"`
	Status        BudgetStatus `json:"status"`
}

func (CompoundInterestResult) Kind() Kind { return KindCompoundInterest }
func (SimpleInterestResult) Kind() Kind   { return KindSimpleInterest }
func (EMIResult) Kind() Kind              { return KindEMI }
func (SIPResult) Kind() Kind              { return KindSIP }
func (BudgetResult) Kind() Kind           { return KindBudget }

func (CompoundInterestResult) isResult() {}
func (SimpleInterestResult) isResult()   {}
func (EMIResult) isResult()              {}
func (SIPResult) isResult()              {}
func (BudgetResult) isResult()           {}
