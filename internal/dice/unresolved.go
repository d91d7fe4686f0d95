package dice

import (
	stderrors "errors"

	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

const unresolvedMessage = "no modifier produced a total"

// UnresolvedError is returned by RollSet.Apply when the chain ran out without
// a total. Set is the evaluated roll set, handed back to the caller.
type UnresolvedError struct {
	Set *RollSet
}

func (e *UnresolvedError) Error() string {
	return unresolvedMessage
}

// Unwrap exposes the coded error so errors.IsUnresolvedRollSet works
func (e *UnresolvedError) Unwrap() error {
	return errors.New(errors.CodeUnresolvedRollSet, unresolvedMessage)
}

// Unresolved extracts the roll set carried by an unresolved Apply
func Unresolved(err error) (*RollSet, bool) {
	var unresolved *UnresolvedError
	if stderrors.As(err, &unresolved) {
		return unresolved.Set, true
	}
	return nil, false
}
