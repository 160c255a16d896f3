package wsnav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func TestNext(t *testing.T) {
	four := []string{"W1", "W2", "W3", "W4"}
	five := []string{"W1", "W2", "W3", "W4", "W5"}

	tests := []struct {
		name      string
		groupings []string
		active    int
		elsewhere map[string]bool
		dir       Direction
		want      int
	}{
		{"skips run of visible", four, 0, set("W2", "W3"), Forward, 3},
		{"fallback wraps to active", []string{"W1", "W2"}, 0, set("W2"), Forward, 0},
		{"single workspace", []string{"W1"}, 0, set(), Forward, 0},
		{"single workspace backward", []string{"W1"}, 0, set(), Backward, 0},
		{"all visible forward", four, 1, set("W1", "W2", "W3", "W4"), Forward, 1},
		{"all visible backward", four, 2, set("W1", "W2", "W3", "W4"), Backward, 2},
		{"plain next", four, 1, set(), Forward, 2},
		{"plain prev", four, 1, set(), Backward, 0},
		{"wraps from last", four, 3, set(), Forward, 0},
		{"wraps from first backward", four, 0, set(), Backward, 3},
		{"forward from last skips visible at start", four, 3, set("W1"), Forward, 1},
		{"backward nothing before active", four, 0, set("W2", "W3"), Backward, 3},
		{"backward from last skips run", four, 3, set("W2", "W3"), Backward, 0},
		{"middle forward", five, 2, set("W2", "W4"), Forward, 4},
		{"middle backward", five, 2, set("W2", "W4"), Backward, 0},
		{"backward fallback", []string{"W1", "W2"}, 1, set("W1"), Backward, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.groupings, tt.active, tt.elsewhere, tt.dir)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNextBackwardIsMirror(t *testing.T) {
	groupings := []string{"W1", "W2", "W3", "W4", "W5"}
	elsewhere := set("W2", "W4")
	reversed := make([]string, len(groupings))
	for i, g := range groupings {
		reversed[len(groupings)-1-i] = g
	}
	last := len(groupings) - 1
	for active := range groupings {
		back := Next(groupings, active, elsewhere, Backward)
		fwd := Next(reversed, last-active, elsewhere, Forward)
		// The mirrored search lands on the same workspace, but its index is
		// reported in the input ordering.
		require.Equal(t, groupings[back], reversed[fwd])
		require.Equal(t, last-fwd, back)
	}

	// Forward on a reversed copy, taken at face value, names the wrong slot.
	require.Equal(t, 3, Next([]string{"W1", "W2", "W3", "W4"}, 0, set("W2", "W3"), Backward))
	require.Equal(t, 0, Next([]string{"W4", "W3", "W2", "W1"}, 3, set("W2", "W3"), Forward))
}

func TestNextEmpty(t *testing.T) {
	require.Equal(t, 0, Next([]string(nil), 0, nil, Forward))
	require.Equal(t, 0, Next([]string(nil), 0, nil, Backward))
}

func TestNextComparableIdentity(t *testing.T) {
	type ws struct{ idx int }
	a, b, c := ws{0}, ws{1}, ws{2}
	got := Next([]ws{a, b, c}, 0, map[ws]bool{b: true}, Forward)
	require.Equal(t, 2, got)
}

func TestDirection(t *testing.T) {
	require.Equal(t, Backward, Forward.Reverse())
	require.Equal(t, Forward, Backward.Reverse())
	require.Equal(t, Backward, ParseDirection("left"))
	require.Equal(t, Forward, ParseDirection("right"))
	require.Equal(t, Forward, ParseDirection(""))
	require.Equal(t, Forward, ParseDirection("up"))
	require.Equal(t, "backward", Backward.String())
}

func TestStep(t *testing.T) {
	require.Equal(t, 1, Step(0, 3, Forward))
	require.Equal(t, 0, Step(2, 3, Forward))
	require.Equal(t, 2, Step(0, 3, Backward))
	require.Equal(t, 0, Step(0, 1, Backward))
	require.Equal(t, 5, Step(5, 0, Forward))
}
