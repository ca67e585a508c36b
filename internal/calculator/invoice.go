// Package calculator holds the pure billing math: line totals, invoice
// aggregates and the standalone GST tool. Nothing here touches state or
// performs validation; callers are expected to reject out-of-range input
// (negative rates, discounts outside [0, 100]) before calling in.
package calculator

// ItemTotal computes the total for one invoice line:
//
//	quantity * rate * (1 - discount/100)
//
// discount is a percentage; pass 0 when the line carries no discount.
// The result is not clamped.
func ItemTotal(quantity, rate, discount float64) float64 {
	return quantity * rate * (1 - discount/100)
}

// InvoiceTotals is the derived aggregate of an invoice.
type InvoiceTotals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// Totals recomputes the invoice aggregate from scratch given the line totals
// and the GST percentage. It must always be fed the full line collection;
// incremental updates drift and are not supported.
func Totals(lineTotals []float64, gstRate float64) InvoiceTotals {
	var subtotal float64
	for _, t := range lineTotals {
		subtotal += t
	}
	tax := subtotal * gstRate / 100
	return InvoiceTotals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax,
	}
}
