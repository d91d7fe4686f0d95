package rulebook

// Check is anything a creature can roll a check for: an ability, or a skill
// backed by an ability
type Check interface {
	Identity
	Name() string

	// Base is the ability whose modifier applies to the check
	Base() *Ability
}

// Ability is one of the six core abilities
type Ability struct {
	id    string
	key   string
	name  string
	short string
}

func (a *Ability) ID() string {
	return a.id
}

// Key is the lowercase registry key, e.g. "dexterity"
func (a *Ability) Key() string {
	return a.key
}

func (a *Ability) Name() string {
	return a.name
}

// Short is the three letter abbreviation, e.g. "Dex"
func (a *Ability) Short() string {
	return a.short
}

// Base returns the ability itself, an ability check uses its own modifier
func (a *Ability) Base() *Ability {
	return a
}

func (a *Ability) String() string {
	return a.name
}

// Skill is a check backed by an ability
type Skill struct {
	id   string
	key  string
	name string
	base *Ability
}

func (s *Skill) ID() string {
	return s.id
}

// Key is the lowercase registry key, e.g. "sleight-of-hand"
func (s *Skill) Key() string {
	return s.key
}

func (s *Skill) Name() string {
	return s.name
}

// Base returns the ability backing the skill
func (s *Skill) Base() *Ability {
	return s.base
}

func (s *Skill) String() string {
	return s.name
}
