// Package simulation implements the financial calculator engine: compound
// and simple interest, loan EMI, SIP future value and budget allocation.
//
// The engine is pure. It maps a typed Input (one struct per Kind) to a typed
// Result and performs no I/O; persistence of simulation history happens in
// the service layer. Raw request payloads are resolved into Inputs at the
// boundary by DecodeInput, so formulas never see untyped maps.
//
// Monetary outputs are rounded to two decimal places, half away from zero,
// on the shortest decimal representation of the computed float. Derived
// values are calculated from unrounded intermediates and rounded once on
// output.
package simulation
