package dice

import (
	"fmt"

	"github.com/KirkDiggler/dnd-rules/internal/errors"
	"github.com/KirkDiggler/dnd-rules/internal/pkg/intmath"
)

// Modifier is an operation over a roll set's rolls once they are known.
//
// Apply receives every die group. It either returns a total (ok true), which
// ends evaluation of the chain, or changes roll visibility in place and
// returns ok false so the next modifier runs.
type Modifier interface {
	// ID names the operation
	ID() string

	// Symbol is the operator for arithmetic modifiers
	Symbol() (string, bool)

	Apply(groups []Group) (total int, ok bool)
}

// IsArithmetic reports whether m is an arithmetic operation
func IsArithmetic(m Modifier) bool {
	_, ok := m.Symbol()
	return ok
}

// Op is an arithmetic operator
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

var opIDs = map[Op]string{
	OpAdd: "OPERATIONS::ADD",
	OpSub: "OPERATIONS::SUB",
	OpMul: "OPERATIONS::MUL",
	OpDiv: "OPERATIONS::DIV",
}

var opSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// Arithmetic sums every visible roll and applies a constant operation
type Arithmetic struct {
	op      Op
	operand int
}

// NewArithmetic creates an arithmetic modifier. Division by zero is rejected
// here so evaluation can never fail.
func NewArithmetic(op Op, operand int) (*Arithmetic, error) {
	id, ok := opIDs[op]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown arithmetic operator %d", op)
	}
	if op == OpDiv && operand == 0 {
		return nil, errors.DivisionByZero(id)
	}
	return &Arithmetic{op: op, operand: operand}, nil
}

// Add adds c to the total
func Add(c int) *Arithmetic {
	return &Arithmetic{op: OpAdd, operand: c}
}

// Sub subtracts c from the total
func Sub(c int) *Arithmetic {
	return &Arithmetic{op: OpSub, operand: c}
}

// Mul multiplies the total by c
func Mul(c int) *Arithmetic {
	return &Arithmetic{op: OpMul, operand: c}
}

// Div floor-divides the total by c
func Div(c int) (*Arithmetic, error) {
	return NewArithmetic(OpDiv, c)
}

// Op returns the operator
func (a *Arithmetic) Op() Op {
	return a.op
}

// Operand returns the constant the total is combined with
func (a *Arithmetic) Operand() int {
	return a.operand
}

// ID implements Modifier.ID
func (a *Arithmetic) ID() string {
	return opIDs[a.op]
}

// Symbol implements Modifier.Symbol
func (a *Arithmetic) Symbol() (string, bool) {
	return opSymbols[a.op], true
}

// Apply implements Modifier.Apply
func (a *Arithmetic) Apply(groups []Group) (int, bool) {
	subtotal := sumVisible(groups)

	switch a.op {
	case OpAdd:
		return subtotal + a.operand, true
	case OpSub:
		return subtotal - a.operand, true
	case OpMul:
		return subtotal * a.operand, true
	default:
		return intmath.FloorDiv(subtotal, a.operand), true
	}
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("%s%d", opSymbols[a.op], a.operand)
}

// ModifierFunc adapts a function into a custom Modifier
type ModifierFunc struct {
	id string
	fn func(groups []Group) (int, bool)
}

// NewModifierFunc creates a custom modifier with a unique id
func NewModifierFunc(id string, fn func(groups []Group) (int, bool)) (*ModifierFunc, error) {
	if id == "" {
		return nil, errors.InvalidArgument("modifier id is required")
	}
	if fn == nil {
		return nil, errors.InvalidArgumentf("modifier %s has no function", id)
	}
	return &ModifierFunc{id: id, fn: fn}, nil
}

// ID implements Modifier.ID
func (m *ModifierFunc) ID() string {
	return m.id
}

// Symbol implements Modifier.Symbol
func (m *ModifierFunc) Symbol() (string, bool) {
	return "", false
}

// Apply implements Modifier.Apply
func (m *ModifierFunc) Apply(groups []Group) (int, bool) {
	return m.fn(groups)
}
