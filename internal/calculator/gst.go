package calculator

import "fmt"

// GSTMode selects how an amount relates to tax.
type GSTMode string

const (
	// ModeExclusive treats the amount as the pre-tax base: tax is added on top.
	ModeExclusive GSTMode = "exclusive"
	// ModeInclusive treats the amount as the final total already containing
	// tax: the tax portion is back-calculated out of it.
	ModeInclusive GSTMode = "inclusive"
)

// ParseGSTMode converts a wire string into a GSTMode.
func ParseGSTMode(s string) (GSTMode, error) {
	switch GSTMode(s) {
	case ModeExclusive, ModeInclusive:
		return GSTMode(s), nil
	}
	return "", fmt.Errorf("unknown GST mode %q", s)
}

// GSTBreakdown is the result of a GST calculation.
//
// Note the mode asymmetry: in exclusive mode TotalAmount is amount plus tax,
// in inclusive mode TotalAmount echoes the input amount (it already contained
// the tax). This is the defined contract of the calculator tool.
type GSTBreakdown struct {
	TaxAmount   float64
	TotalAmount float64
}

// GST computes the tax and total for an amount at the given percentage rate.
//
// Exclusive: tax = amount * rate/100, total = amount * (1 + rate/100).
// Inclusive: total = amount, tax = amount - amount * (100 / (100 + rate)).
//
// A rate of -100 is rejected: inclusive mode would divide by zero.
func GST(amount, rate float64, mode GSTMode) (GSTBreakdown, error) {
	if rate == -100 {
		return GSTBreakdown{}, fmt.Errorf("rate must be greater than -100")
	}
	switch mode {
	case ModeExclusive:
		return GSTBreakdown{
			TaxAmount:   amount * rate / 100,
			TotalAmount: amount * (1 + rate/100),
		}, nil
	case ModeInclusive:
		return GSTBreakdown{
			TaxAmount:   amount - amount*(100/(100+rate)),
			TotalAmount: amount,
		}, nil
	}
	return GSTBreakdown{}, fmt.Errorf("unknown GST mode %q", mode)
}
