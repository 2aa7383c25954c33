// Package pricing computes visit subtotals from the unit prices snapshotted
// at visit creation.
package pricing

// Subtotal returns the amount owed for one visit. Plain float64 arithmetic,
// no rounding or currency rules.
func Subtotal(qtyFardo, qtyBotellon int, unitPriceFardo, unitPriceBotellon float64) float64 {
	return float64(qtyFardo)*unitPriceFardo + float64(qtyBotellon)*unitPriceBotellon
}
