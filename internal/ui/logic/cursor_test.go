package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, ClampIndex(0, 0))
	assert.Equal(t, 0, ClampIndex(5, 0))
	assert.Equal(t, 0, ClampIndex(-1, 3))
	assert.Equal(t, 2, ClampIndex(2, 3))
	assert.Equal(t, 2, ClampIndex(7, 3))
}

func TestMoveIndexNoWraparound(t *testing.T) {
	assert.Equal(t, 0, MoveIndex(0, -1, 5))
	assert.Equal(t, 4, MoveIndex(4, 1, 5))
	assert.Equal(t, 3, MoveIndex(2, 1, 5))
	assert.Equal(t, 4, MoveIndex(1, PageStep, 5))
	assert.Equal(t, 0, MoveIndex(3, -PageStep, 5))
	assert.Equal(t, 0, MoveIndex(2, 1, 0))
}

func TestGridMoveHorizontal(t *testing.T) {
	// Stays put at the edges.
	assert.Equal(t, 0, GridMoveHorizontal(0, -1, 10))
	assert.Equal(t, 9, GridMoveHorizontal(9, 1, 10))
	assert.Equal(t, 5, GridMoveHorizontal(4, 1, 10))
}

func TestGridMoveVertical(t *testing.T) {
	// 4-column grid of 10 cells.
	assert.Equal(t, 6, GridMoveVertical(2, 1, 4, 10))
	assert.Equal(t, 2, GridMoveVertical(6, -1, 4, 10))
	// Below-range target keeps the cursor in place.
	assert.Equal(t, 7, GridMoveVertical(7, 1, 4, 10))
	assert.Equal(t, 1, GridMoveVertical(1, -1, 4, 10))
}

func TestCycleIndexWraps(t *testing.T) {
	assert.Equal(t, 0, CycleIndex(4, 1, 5))
	assert.Equal(t, 4, CycleIndex(0, -1, 5))
	assert.Equal(t, 2, CycleIndex(1, 1, 5))
	assert.Equal(t, 0, CycleIndex(3, 1, 0))
}
