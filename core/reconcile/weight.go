package reconcile

// ComputeRemaining converts a remaining percentage into grams.
func ComputeRemaining(percent, fullWeight int) float64 {
	return float64(fullWeight) * float64(percent) / 100
}

// ValidPercent reports whether percent is a usable remaining value.
// Printers report -1 when the remaining amount is unknown.
func ValidPercent(percent int) bool {
	return percent >= 0 && percent <= 100
}
