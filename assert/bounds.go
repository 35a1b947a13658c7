package assert

// IsWithinArrayBounds raises a bounds violation unless 0 <= index < length.
// length must itself be non-negative.
func IsWithinArrayBounds(index, length int) {
	if BoundsChecks && !withinBounds(index, length) {
		raiseBounds(index, length)
	}
}

// withinBounds uses one unsigned comparison: a negative index wraps to a
// value no valid length can exceed.
func withinBounds(index, length int) bool {
	return length >= 0 && uint(index) < uint(length)
}

//go:noinline
func raiseBounds(index, length int) {
	if length < 0 {
		raise(KindBounds, "length %d is negative", length)
	}
	raise(KindBounds, "%d is out of range (length %d)", index, length)
}
