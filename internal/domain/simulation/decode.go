package simulation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeInput resolves a raw kind tag and its JSON inputs into a typed Input.
//
// Absent or null fields default to 0, except the compound interest frequency
// which defaults to the engine's default compounding frequency (left as 0 so
// the engine applies it). A field present with a non-numeric value, or an
// explicit non-positive frequency, yields ErrInvalidInput. An unknown kind
// yields ErrInvalidKind. Unknown fields are ignored.
func DecodeInput(kind string, raw json.RawMessage) (Input, error) {
	k := Kind(kind)
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	fields, err := decodeFields(raw)
	if err != nil {
		return nil, err
	}

	d := &fieldDecoder{fields: fields}

	var input Input
	switch k {
	case KindCompoundInterest:
		in := CompoundInterestInput{
			Principal: d.number("principal"),
			Rate:      d.number("rate"),
			Time:      d.number("time"),
		}
		if d.has("frequency") {
			in.Frequency = d.number("frequency")
			if d.err == nil && in.Frequency <= 0 {
				d.err = fmt.Errorf("%w: frequency must be positive", ErrInvalidInput)
			}
		}
		input = in
	case KindSimpleInterest:
		input = SimpleInterestInput{
			Principal: d.number("principal"),
			Rate:      d.number("rate"),
			Time:      d.number("time"),
		}
	case KindEMI:
		input = EMIInput{
			Principal: d.number("principal"),
			Rate:      d.number("rate"),
			Months:    d.number("months"),
		}
	case KindSIP:
		input = SIPInput{
			MonthlyInvestment: d.number("monthly_investment"),
			Rate:              d.number("rate"),
			Months:            d.number("months"),
		}
	case KindBudget:
		input = BudgetInput{
			Income:   d.number("income"),
			Expenses: d.numberMap("expenses"),
		}
	}

	if d.err != nil {
		return nil, d.err
	}
	return input, nil
}

func decodeFields(raw json.RawMessage) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || isNull(trimmed) {
		return map[string]json.RawMessage{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: inputs must be a JSON object", ErrInvalidInput)
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// fieldDecoder reads named fields and keeps the first error it encounters.
type fieldDecoder struct {
	fields map[string]json.RawMessage
	err    error
}

func (d *fieldDecoder) has(name string) bool {
	raw, ok := d.fields[name]
	return ok && !isNull(raw)
}

func (d *fieldDecoder) number(name string) float64 {
	if d.err != nil || !d.has(name) {
		return 0
	}
	var v float64
	if err := json.Unmarshal(d.fields[name], &v); err != nil {
		d.err = fmt.Errorf("%w: %s must be a number", ErrInvalidInput, name)
		return 0
	}
	return v
}

func (d *fieldDecoder) numberMap(name string) map[string]float64 {
	values := map[string]float64{}
	if d.err != nil || !d.has(name) {
		return values
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(d.fields[name], &entries); err != nil {
		d.err = fmt.Errorf("%w: %s must be an object", ErrInvalidInput, name)
		return values
	}

	for key, raw := range entries {
		if isNull(raw) {
			values[key] = 0
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			d.err = fmt.Errorf("%w: %s.%s must be a number", ErrInvalidInput, name, key)
			return values
		}
		values[key] = v
	}
	return values
}
