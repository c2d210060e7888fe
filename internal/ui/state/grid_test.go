package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songbinder/internal/domain"
)

func testBinders(n int) []domain.Binder {
	binders := make([]domain.Binder, n)
	for i := range binders {
		binders[i] = domain.Binder{ID: int64(i + 1), Number: int64(i + 1)}
	}
	return binders
}

func TestGridMovement(t *testing.T) {
	g := NewGridState(testBinders(10), 4)

	g.MoveHorizontal(1)
	assert.Equal(t, 1, g.Selected)
	g.MoveVertical(1)
	assert.Equal(t, 5, g.Selected)
	g.MoveVertical(1)
	// Target row 2 col 1 is index 9, in range.
	assert.Equal(t, 9, g.Selected)
	g.MoveVertical(1)
	assert.Equal(t, 9, g.Selected)
	g.MoveHorizontal(1)
	assert.Equal(t, 9, g.Selected)
}

func TestGridSetBindersFollowsFocus(t *testing.T) {
	g := NewGridState(testBinders(5), 4)
	g.Selected = 2

	// Binder 3 moved to the end after a renumber.
	reordered := []domain.Binder{
		{ID: 1, Number: 1}, {ID: 2, Number: 2}, {ID: 4, Number: 4}, {ID: 5, Number: 5}, {ID: 3, Number: 9},
	}
	g.SetBinders(reordered, 3)
	assert.Equal(t, 4, g.Selected)

	// Without a focus id the cursor only re-clamps.
	g.SetBinders(testBinders(2), 0)
	assert.Equal(t, 1, g.Selected)
}

func TestGridNextNumber(t *testing.T) {
	g := NewGridState([]domain.Binder{{ID: 1, Number: 3}, {ID: 2, Number: 7}}, 4)
	assert.Equal(t, int64(8), g.NextNumber())

	empty := NewGridState(nil, 4)
	assert.Equal(t, int64(1), empty.NextNumber())
}

func TestCycleWrapsBothWays(t *testing.T) {
	binders := testBinders(3)

	next, ok := Cycle(binders, 3, 1)
	require.True(t, ok)
	assert.Equal(t, int64(1), next.ID)

	prev, ok := Cycle(binders, 1, -1)
	require.True(t, ok)
	assert.Equal(t, int64(3), prev.ID)

	_, ok = Cycle(nil, 1, 1)
	assert.False(t, ok)
}
