package simulation

// Params defines the constants used by the calculators.
type Params struct {
	// DefaultCompoundingFrequency is used when a compound interest input
	// leaves Frequency unset.
	DefaultCompoundingFrequency float64

	// MonthsPerYear converts annual rates into monthly rates for EMI and SIP.
	MonthsPerYear float64

	// DecimalPlaces is the precision of monetary and percentage outputs.
	DecimalPlaces int32
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		DefaultCompoundingFrequency: 12,
		MonthsPerYear:               12,
		DecimalPlaces:               2,
	}
}
