// Package intmath holds integer helpers shared by the rules engine
package intmath

// FloorDiv divides a by b rounding toward negative infinity.
// b must not be zero.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
