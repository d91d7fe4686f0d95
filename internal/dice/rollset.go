package dice

import (
	"fmt"
	"sort"
	"strings"
)

// Group is the view of one die group handed to modifiers. Rolls shares
// storage with the roll set, so visibility changes made by a modifier stick.
// Modifiers may change elements but never the length of Rolls.
type Group struct {
	Sides int
	Rolls []Roll
}

// RollSet collects rolls grouped by the side count of the die that produced
// them, plus the ordered chain of modifiers to evaluate over them.
// The zero value is an empty set ready to use.
type RollSet struct {
	groups    map[int][]Roll
	modifiers []Modifier
}

// NewRollSet creates an empty roll set
func NewRollSet() *RollSet {
	return &RollSet{
		groups: make(map[int][]Roll),
	}
}

// Add appends rolls to the group for d, creating the group if needed.
// Insertion order within a group is preserved.
func (s *RollSet) Add(d Die, rolls ...Roll) *RollSet {
	if s.groups == nil {
		s.groups = make(map[int][]Roll)
	}

	group, exists := s.groups[d.Sides()]
	if !exists {
		group = []Roll{}
	}
	s.groups[d.Sides()] = append(group, rolls...)

	return s
}

// AddValues appends visible rolls with the given face values
func (s *RollSet) AddValues(d Die, values ...int) *RollSet {
	rolls := make([]Roll, len(values))
	for i, v := range values {
		rolls[i] = NewRoll(v)
	}
	return s.Add(d, rolls...)
}

// Then appends a modifier to the chain. Modifiers run in the order attached.
func (s *RollSet) Then(m Modifier) *RollSet {
	s.modifiers = append(s.modifiers, m)
	return s
}

// Extend merges other into s: colliding groups are concatenated (s first)
// and other's modifiers run after s's. other is emptied, it must not be
// used afterwards.
func (s *RollSet) Extend(other *RollSet) *RollSet {
	if other == nil {
		return s
	}

	source := other
	if other == s {
		source = s.clone()
	}

	if s.groups == nil {
		s.groups = make(map[int][]Roll)
	}

	for _, sides := range source.sortedSides() {
		rolls := source.groups[sides]
		group, exists := s.groups[sides]
		if !exists {
			group = make([]Roll, 0, len(rolls))
		}
		s.groups[sides] = append(group, rolls...)
	}
	s.modifiers = append(s.modifiers, source.modifiers...)

	if other != s {
		other.groups = make(map[int][]Roll)
		other.modifiers = nil
	}

	return s
}

// Combine merges sets in order into a new roll set
func Combine(sets ...*RollSet) *RollSet {
	combined := NewRollSet()
	for _, set := range sets {
		combined.Extend(set)
	}
	return combined
}

// Get returns a copy of the rolls produced by dice with d's side count.
// The result is empty, never nil, when there are none.
func (s *RollSet) Get(d Die) []Roll {
	group := s.groups[d.Sides()]
	rolls := make([]Roll, len(group))
	copy(rolls, group)
	return rolls
}

// Groups returns a copy of every group ordered by side count
func (s *RollSet) Groups() []Group {
	return s.clone().view()
}

// Modifiers returns the modifier chain in evaluation order
func (s *RollSet) Modifiers() []Modifier {
	modifiers := make([]Modifier, len(s.modifiers))
	copy(modifiers, s.modifiers)
	return modifiers
}

// Len returns the number of rolls across all groups
func (s *RollSet) Len() int {
	count := 0
	for _, rolls := range s.groups {
		count += len(rolls)
	}
	return count
}

// Peek evaluates the chain against a copy of the rolls. When no modifier
// produces a total the visible rolls are summed. The set is left untouched.
func (s *RollSet) Peek() int {
	c := s.clone()
	view := c.view()
	if total, ok := evaluate(view, c.modifiers); ok {
		return total
	}
	return sumVisible(view)
}

// Total is the total of the set, falling back to summing visible rolls
func (s *RollSet) Total() int {
	return s.Peek()
}

// Apply evaluates the chain against the set itself. Visibility changes made
// by modifiers remain on the set. If no modifier produces a total an
// *UnresolvedError carrying the set is returned so the caller can attach
// more modifiers or fall back to Total.
func (s *RollSet) Apply() (int, error) {
	if total, ok := evaluate(s.view(), s.modifiers); ok {
		return total, nil
	}
	return 0, &UnresolvedError{Set: s}
}

// Natural returns the visible face values for d once the modifier chain has
// run, e.g. the kept d20 of an advantage roll
func (s *RollSet) Natural(d Die) []int {
	c := s.clone()
	evaluate(c.view(), c.modifiers)

	values := []int{}
	for _, r := range c.groups[d.Sides()] {
		if !r.Hidden() {
			values = append(values, r.Raw())
		}
	}
	return values
}

// Critical reports whether a kept d20 shows a natural 20
func (s *RollSet) Critical() bool {
	for _, v := range s.Natural(D20) {
		if v == D20.Sides() {
			return true
		}
	}
	return false
}

// Fumble reports whether a kept d20 shows a natural 1
func (s *RollSet) Fumble() bool {
	for _, v := range s.Natural(D20) {
		if v == 1 {
			return true
		}
	}
	return false
}

func (s *RollSet) String() string {
	parts := make([]string, 0, len(s.groups)+len(s.modifiers))
	for _, g := range s.view() {
		rolls := make([]string, len(g.Rolls))
		for i, r := range g.Rolls {
			rolls[i] = r.String()
		}
		parts = append(parts, fmt.Sprintf("d%d[%s]", g.Sides, strings.Join(rolls, " ")))
	}

	for _, m := range s.modifiers {
		if stringer, ok := m.(fmt.Stringer); ok {
			parts = append(parts, stringer.String())
			continue
		}
		parts = append(parts, m.ID())
	}

	return strings.Join(parts, " ")
}

func (s *RollSet) clone() *RollSet {
	c := &RollSet{
		groups:    make(map[int][]Roll, len(s.groups)),
		modifiers: make([]Modifier, len(s.modifiers)),
	}
	for sides, rolls := range s.groups {
		copied := make([]Roll, len(rolls))
		copy(copied, rolls)
		c.groups[sides] = copied
	}
	copy(c.modifiers, s.modifiers)
	return c
}

func (s *RollSet) sortedSides() []int {
	sides := make([]int, 0, len(s.groups))
	for k := range s.groups {
		sides = append(sides, k)
	}
	sort.Ints(sides)
	return sides
}

// view exposes the groups to modifiers without copying the rolls
func (s *RollSet) view() []Group {
	groups := make([]Group, 0, len(s.groups))
	for _, sides := range s.sortedSides() {
		groups = append(groups, Group{Sides: sides, Rolls: s.groups[sides]})
	}
	return groups
}

// evaluate runs modifiers in order and stops at the first one producing a total
func evaluate(groups []Group, modifiers []Modifier) (int, bool) {
	for _, m := range modifiers {
		if total, ok := m.Apply(groups); ok {
			return total, true
		}
	}
	return 0, false
}

func sumVisible(groups []Group) int {
	total := 0
	for _, g := range groups {
		for _, r := range g.Rolls {
			total += r.Value()
		}
	}
	return total
}
