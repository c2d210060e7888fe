package logic

// PageStep is how many rows PageUp/PageDown move the cursor.
const PageStep = 5

// ClampIndex forces an index into [0, length-1]. An empty list clamps to 0,
// the canonical resting position.
func ClampIndex(index, length int) int {
	if length == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}

// MoveIndex shifts the cursor by delta and clamps. No wraparound: moving up
// from the first row or down from the last is a no-op.
func MoveIndex(index, delta, length int) int {
	return ClampIndex(index+delta, length)
}

// GridMoveHorizontal moves one cell left or right within a flat grid,
// only when the target stays in range.
func GridMoveHorizontal(index, delta, length int) int {
	target := index + delta
	if target < 0 || target >= length {
		return index
	}
	return target
}

// GridMoveVertical moves one row up or down in a grid with the given column
// count, only when the target cell exists.
func GridMoveVertical(index, delta, columns, length int) int {
	target := index + delta*columns
	if target < 0 || target >= length {
		return index
	}
	return target
}

// CycleIndex advances by delta with wraparound, for binder Tab cycling.
// The result is always in [0, length) for non-empty lists.
func CycleIndex(index, delta, length int) int {
	if length == 0 {
		return 0
	}
	next := (index + delta) % length
	if next < 0 {
		next += length
	}
	return next
}
