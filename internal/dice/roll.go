package dice

import "strconv"

// Roll is the result of rolling a single die
type Roll struct {
	value int

	// Hidden rolls are not counted in totals
	hidden bool
}

// NewRoll creates a visible roll
func NewRoll(value int) Roll {
	return Roll{value: value}
}

// Value returns the roll's contribution to a total, 0 when hidden
func (r Roll) Value() int {
	if r.hidden {
		return 0
	}
	return r.value
}

// Raw returns the face value regardless of visibility
func (r Roll) Raw() int {
	return r.value
}

// Hidden reports whether the roll is excluded from totals
func (r Roll) Hidden() bool {
	return r.hidden
}

// Hide excludes the roll from totals
func (r *Roll) Hide() {
	r.hidden = true
}

// Show includes the roll in totals
func (r *Roll) Show() {
	r.hidden = false
}

func (r Roll) String() string {
	if r.hidden {
		return "_" + strconv.Itoa(r.value)
	}
	return strconv.Itoa(r.value)
}
