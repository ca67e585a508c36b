package calculator

import (
	"math"
	"testing"
)

func TestItemTotal(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		rate     float64
		discount float64
		want     float64
	}{
		{
			name:     "no discount",
			quantity: 4,
			rate:     25.5,
			discount: 0,
			want:     102.0,
		},
		{
			name:     "half discount",
			quantity: 2,
			rate:     100,
			discount: 50,
			want:     100.0,
		},
		{
			name:     "full discount zeroes the line",
			quantity: 3,
			rate:     40,
			discount: 100,
			want:     0.0,
		},
		{
			name:     "fractional quantity",
			quantity: 1.5,
			rate:     80,
			discount: 10,
			want:     108.0,
		},
		{
			name:     "zero quantity",
			quantity: 0,
			rate:     500,
			discount: 20,
			want:     0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemTotal(tt.quantity, tt.rate, tt.discount)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("ItemTotal(%v, %v, %v) = %v, want %v",
					tt.quantity, tt.rate, tt.discount, got, tt.want)
			}
			if tt.quantity >= 0 && tt.rate >= 0 && tt.discount >= 0 && tt.discount <= 100 && got < 0 {
				t.Errorf("ItemTotal(%v, %v, %v) = %v, want non-negative",
					tt.quantity, tt.rate, tt.discount, got)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name       string
		lineTotals []float64
		gstRate    float64
		want       InvoiceTotals
	}{
		{
			name:       "single line at 18 percent",
			lineTotals: []float64{100},
			gstRate:    18,
			want:       InvoiceTotals{Subtotal: 100, TaxAmount: 18, Total: 118},
		},
		{
			name:       "multiple lines",
			lineTotals: []float64{250, 125.5, 24.5},
			gstRate:    5,
			want:       InvoiceTotals{Subtotal: 400, TaxAmount: 20, Total: 420},
		},
		{
			name:       "zero rate",
			lineTotals: []float64{99.99},
			gstRate:    0,
			want:       InvoiceTotals{Subtotal: 99.99, TaxAmount: 0, Total: 99.99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Totals(tt.lineTotals, tt.gstRate)
			if math.Abs(got.Subtotal-tt.want.Subtotal) > 0.001 {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.want.Subtotal)
			}
			if math.Abs(got.TaxAmount-tt.want.TaxAmount) > 0.001 {
				t.Errorf("TaxAmount = %v, want %v", got.TaxAmount, tt.want.TaxAmount)
			}
			if math.Abs(got.Total-tt.want.Total) > 0.001 {
				t.Errorf("Total = %v, want %v", got.Total, tt.want.Total)
			}
			// Invariant: total is exactly subtotal + tax.
			if got.Total != got.Subtotal+got.TaxAmount {
				t.Errorf("Total = %v, want Subtotal+TaxAmount = %v",
					got.Total, got.Subtotal+got.TaxAmount)
			}
		})
	}
}
