package stack

import (
	"context"
	"fmt"

	"github.com/dagjomar/gitstack/internal/git"
)

// Report is the result of an integrity check: either the whole chain is
// healthy, or the first broken link scanning from the root outward.
type Report struct {
	Healthy bool

	// Child and Parent identify the first broken link: Child must be a
	// descendant of Parent but is not. Parent is the trunk when
	// TrunkBroken is set.
	Child  string
	Parent string

	// TrunkBroken is set when the root branch does not descend from the
	// trunk, meaning the whole stack floats independent of it. This is a
	// distinct condition from an interior break.
	TrunkBroken bool
}

// Check walks the stack's chain links root to tip and reports the first
// broken one. Links past the first break are not evaluated: repairing an
// earlier link can change the validity of every later one, so only the
// earliest break is authoritative.
func Check(ctx context.Context, runner git.Runner, s *Stack) (Report, error) {
	trunk, err := Trunk(runner)
	if err != nil {
		return Report{}, err
	}

	root := s.Branches[0]
	ok, err := runner.IsAncestor(ctx, trunk, root.Name)
	if err != nil {
		return Report{}, fmt.Errorf("failed to check ancestry of %s: %w", root.Name, err)
	}
	if !ok {
		return Report{Child: root.Name, Parent: trunk, TrunkBroken: true}, nil
	}

	for i := 1; i < len(s.Branches); i++ {
		parent := s.Branches[i-1]
		child := s.Branches[i]
		ok, err := runner.IsAncestor(ctx, parent.Name, child.Name)
		if err != nil {
			return Report{}, fmt.Errorf("failed to check ancestry of %s: %w", child.Name, err)
		}
		if !ok {
			return Report{Child: child.Name, Parent: parent.Name}, nil
		}
	}

	return Report{Healthy: true}, nil
}
