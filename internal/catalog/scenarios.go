package catalog

import "fmt"

// Defaults applied when a scenario request omits income or age.
const (
	DefaultIncome = 50000.0
	DefaultAge    = 20
)

// Scenario types with dedicated advice.
const (
	ScenarioStudent     = "student"
	ScenarioFirstJob    = "first_job"
	ScenarioTaxPlanning = "tax_planning"
)

// Scenario is a block of advice for a life situation.
type Scenario struct {
	Title            string   `json:"title"`
	Advice           []string `json:"advice"`
	SuggestedActions []string `json:"suggested_actions,omitempty"`
	Disclaimer       string   `json:"disclaimer,omitempty"`
}

// LookupScenario returns the advice for scenarioType, personalized with the
// caller's income where the advice refers to it. Unknown types fall back to
// the student scenario. Age is accepted for future personalization and does
// not currently change the advice.
func LookupScenario(scenarioType string, income float64, age int) Scenario {
	_ = age

	switch scenarioType {
	case ScenarioFirstJob:
		return firstJobScenario(income)
	case ScenarioTaxPlanning:
		return taxPlanningScenario()
	default:
		return studentScenario()
	}
}

// ScenarioTypes lists the scenario types with dedicated advice.
func ScenarioTypes() []string {
	return []string{ScenarioStudent, ScenarioFirstJob, ScenarioTaxPlanning}
}

func studentScenario() Scenario {
	return Scenario{
		Title: "Student Financial Scenario",
		Advice: []string{
			"Focus on building emergency fund (3 months expenses)",
			"Start with small savings habit (10-20% of any income)",
			"Avoid unnecessary debt, especially consumer loans",
			"Learn about compound interest early",
		},
		SuggestedActions: []string{
			"Open a basic savings account",
			"Track all expenses for one month",
			"Set up automatic savings transfer",
		},
	}
}

func firstJobScenario(income float64) Scenario {
	return Scenario{
		Title: "First Job Financial Scenario",
		Advice: []string{
			"Build 6-month emergency fund",
			"Start retirement savings immediately (even small amounts)",
			"Avoid lifestyle inflation",
			fmt.Sprintf("Save at least 20%% of income: ₹%.2f", income*0.2),
		},
		SuggestedActions: []string{
			"Set up automatic investment (SIP) of ₹500-1000/month",
			"Get health insurance",
			"Create and follow a budget",
		},
	}
}

func taxPlanningScenario() Scenario {
	return Scenario{
		Title: "Legal Tax Planning",
		Advice: []string{
			"Utilize Section 80C deductions (up to ₹1.5 lakh)",
			"Consider PPF, ELSS, or EPF contributions",
			"Keep records of all tax-saving investments",
			"File returns on time to avoid penalties",
		},
		Disclaimer: "This is educational information only. Consult a tax professional for personalized advice. Never engage in tax evasion - it is illegal.",
	}
}
