package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

// maxDiceCount caps a single term so a typo can't roll a million dice
const maxDiceCount = 1000

var (
	termRegex     = regexp.MustCompile(`[+-]?[^+-]+`)
	diceTermRegex = regexp.MustCompile(`^(\d*)d(\d+)$`)
	constantRegex = regexp.MustCompile(`^\d+$`)
)

// Term is one group of identical dice in an expression, e.g. 2d6
type Term struct {
	Count int
	Die   Die
}

func (t Term) String() string {
	return fmt.Sprintf("%d%s", t.Count, t.Die)
}

// Expression is parsed dice notation such as "2d6+1d4+3"
type Expression struct {
	Terms []Term

	// Bonus is the sum of every constant term
	Bonus int
}

// Parse reads dice notation: dice terms (NdM or dM) and integer constants
// joined by + or -. Constants are folded into a single bonus because an
// arithmetic modifier ends evaluation of the chain.
func Parse(notation string) (*Expression, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(notation), ""))
	if compact == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	tokens := termRegex.FindAllString(compact, -1)
	if strings.Join(tokens, "") != compact {
		return nil, errors.InvalidArgumentf("invalid dice notation: %s", notation)
	}

	expr := &Expression{}
	for _, token := range tokens {
		negative := strings.HasPrefix(token, "-")
		body := strings.TrimLeft(token, "+-")

		if constantRegex.MatchString(body) {
			value, err := strconv.Atoi(body)
			if err != nil {
				return nil, errors.InvalidArgumentf("invalid constant %q in notation: %s", body, notation)
			}
			if negative {
				value = -value
			}
			expr.Bonus += value
			continue
		}

		matches := diceTermRegex.FindStringSubmatch(body)
		if len(matches) != 3 {
			return nil, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY+Z)", notation)
		}
		if negative {
			return nil, errors.InvalidArgumentf("dice terms cannot be subtracted: %s", notation)
		}

		count := 1
		if matches[1] != "" {
			parsed, err := strconv.Atoi(matches[1])
			if err != nil {
				return nil, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
			}
			count = parsed
		}
		if count < 1 || count > maxDiceCount {
			return nil, errors.InvalidArgumentf("dice count must be between 1 and %d: %s", maxDiceCount, notation)
		}

		sides, err := strconv.Atoi(matches[2])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
		}
		die, err := New(sides)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid dice notation %s", notation)
		}

		expr.Terms = append(expr.Terms, Term{Count: count, Die: die})
	}

	if len(expr.Terms) == 0 {
		return nil, errors.InvalidArgumentf("dice notation has no dice: %s", notation)
	}

	return expr, nil
}

// Roll rolls every term into one roll set, attaching the bonus as a single
// arithmetic modifier when it is non-zero
func (e *Expression) Roll(src Source) *RollSet {
	set := NewRollSet()
	for _, term := range e.Terms {
		set.Extend(term.Die.RollWith(src, term.Count))
	}

	switch {
	case e.Bonus > 0:
		set.Then(Add(e.Bonus))
	case e.Bonus < 0:
		set.Then(Sub(-e.Bonus))
	}

	return set
}

func (e *Expression) String() string {
	parts := make([]string, len(e.Terms))
	for i, term := range e.Terms {
		parts[i] = term.String()
	}

	out := strings.Join(parts, "+")
	switch {
	case e.Bonus > 0:
		out += fmt.Sprintf("+%d", e.Bonus)
	case e.Bonus < 0:
		out += fmt.Sprintf("%d", e.Bonus)
	}
	return out
}
