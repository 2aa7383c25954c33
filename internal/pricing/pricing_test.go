package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorales/aguaruta-visits/internal/pricing"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name                              string
		qtyFardo, qtyBotellon             int
		unitPriceFardo, unitPriceBotellon float64
		want                              float64
	}{
		{"both products", 2, 1, 5, 10, 20},
		{"zero quantities", 0, 0, 5, 10, 0},
		{"zero prices", 3, 4, 0, 0, 0},
		{"fardos only", 7, 0, 2.5, 10, 17.5},
		{"botellones only", 0, 3, 5, 1.25, 3.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Subtotal(tt.qtyFardo, tt.qtyBotellon, tt.unitPriceFardo, tt.unitPriceBotellon)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubtotalIsTotalOverNegativeInput(t *testing.T) {
	// validation lives in the API layer; the calculator never rejects input
	assert.Equal(t, -10.0, pricing.Subtotal(-2, 0, 5, 10))
}
