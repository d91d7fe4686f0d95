package dice

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

type toolkitSource struct {
	roller toolkitdice.Roller
}

// NewToolkitSource draws from an rpg-toolkit roller. A nil roller uses the
// toolkit's default.
func NewToolkitSource(roller toolkitdice.Roller) Source {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}
	return &toolkitSource{roller: roller}
}

// Intn panics if the roller fails, a Source has no error path
func (s *toolkitSource) Intn(n int) int {
	face, err := s.roller.Roll(n)
	if err != nil {
		panic(errors.Wrapf(err, "failed to roll d%d", n))
	}
	if face < 1 || face > n {
		panic(errors.InvalidDie(n).WithMeta("face", face))
	}
	return face - 1
}
