package dice

import "fmt"

const (
	AdvantageID    = "5E::ADVANTAGE"
	DisadvantageID = "5E::DISADVANTAGE"
)

// Keep narrows the group of a target die down to one roll and hides every
// roll from other dice. Every roll of the group is a candidate, hidden or not;
// on a tie the earliest roll wins.
type Keep struct {
	die     Die
	highest bool
}

// Advantage keeps the highest roll of die
func Advantage(die Die) *Keep {
	return &Keep{die: die, highest: true}
}

// Disadvantage keeps the lowest roll of die
func Disadvantage(die Die) *Keep {
	return &Keep{die: die, highest: false}
}

// Die returns the targeted die
func (k *Keep) Die() Die {
	return k.die
}

// ID implements Modifier.ID
func (k *Keep) ID() string {
	if k.highest {
		return AdvantageID
	}
	return DisadvantageID
}

// Symbol implements Modifier.Symbol
func (k *Keep) Symbol() (string, bool) {
	return "", false
}

// Apply implements Modifier.Apply
func (k *Keep) Apply(groups []Group) (int, bool) {
	for _, g := range groups {
		if g.Sides != k.die.Sides() {
			for i := range g.Rolls {
				g.Rolls[i].Hide()
			}
			continue
		}

		kept := -1
		for i := range g.Rolls {
			g.Rolls[i].Hide()
			if kept < 0 || k.better(g.Rolls[i].Raw(), g.Rolls[kept].Raw()) {
				kept = i
			}
		}
		if kept >= 0 {
			g.Rolls[kept].Show()
		}
	}

	return 0, false
}

func (k *Keep) better(candidate, current int) bool {
	if k.highest {
		return candidate > current
	}
	return candidate < current
}

func (k *Keep) String() string {
	if k.highest {
		return fmt.Sprintf("ADVANTAGE(%s)", k.die)
	}
	return fmt.Sprintf("DISADVANTAGE(%s)", k.die)
}
