package intmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dnd-rules/internal/pkg/intmath"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{name: "exact positive", a: 8, b: 2, want: 4},
		{name: "positive remainder", a: 7, b: 2, want: 3},
		{name: "negative dividend", a: -7, b: 2, want: -4},
		{name: "negative divisor", a: 7, b: -2, want: -4},
		{name: "both negative", a: -7, b: -2, want: 3},
		{name: "exact negative", a: -8, b: 2, want: -4},
		{name: "zero dividend", a: 0, b: 5, want: 0},
		{name: "minus one halves down", a: -1, b: 2, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intmath.FloorDiv(tt.a, tt.b))
		})
	}
}
