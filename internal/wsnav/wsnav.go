// Package wsnav picks the next workspace to activate when cycling through
// workspaces on a multi-output desktop, skipping those already shown on
// another output.
package wsnav

// Direction is the way to walk a sequence of workspaces.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ParseDirection maps a monitor layout token to the direction that moves
// rightwards across outputs. "left" means the outputs are enumerated right to
// left, so the direction is reversed. Anything else is Forward.
func ParseDirection(layout string) Direction {
	if layout == "left" {
		return Backward
	}
	return Forward
}

// Next returns the index of the workspace to activate.
//
// It first looks strictly beyond active, in direction d and without wrapping,
// for a workspace not in elsewhere. Failing that, it starts again from the
// first (Forward) or last (Backward) workspace. If every workspace is in
// elsewhere, active is returned unchanged.
//
// groupings must be non-empty and active must index into it.
func Next[T comparable](groupings []T, active int, elsewhere map[T]bool, d Direction) int {
	n := len(groupings)
	if d == Backward {
		for i := active - 1; i >= 0; i-- {
			if !elsewhere[groupings[i]] {
				return i
			}
		}
		for i := n - 1; i >= 0; i-- {
			if !elsewhere[groupings[i]] {
				return i
			}
		}
		return active
	}
	for i := active + 1; i < n; i++ {
		if !elsewhere[groupings[i]] {
			return i
		}
	}
	for i := 0; i < n; i++ {
		if !elsewhere[groupings[i]] {
			return i
		}
	}
	return active
}

// Step moves i one place in direction d around a ring of n elements.
func Step(i, n int, d Direction) int {
	if n <= 0 {
		return i
	}
	if d == Forward {
		return (i + 1) % n
	}
	return (i + n - 1) % n
}
