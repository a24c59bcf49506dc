package simulation

// Kind identifies one of the supported calculators.
type Kind string

// Supported simulation kinds.
const (
	KindCompoundInterest Kind = "compound_interest"
	KindSimpleInterest   Kind = "simple_interest"
	KindEMI              Kind = "emi_calculator"
	KindSIP              Kind = "sip_calculator"
	KindBudget           Kind = "budget_builder"
)

// Kinds returns all supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindCompoundInterest,
		KindSimpleInterest,
		KindEMI,
		KindSIP,
		KindBudget,
	}
}

// IsValid reports whether k is a supported kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindCompoundInterest, KindSimpleInterest, KindEMI, KindSIP, KindBudget:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
