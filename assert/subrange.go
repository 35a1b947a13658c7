package assert

// IsValidSubarray raises a subrange violation unless [index, index+count)
// lies within [0, length). An empty subarray may start at length, matching
// s[len(s):].
func IsValidSubarray(index, count, length int) {
	if SubarrayChecks && !validSubarray(index, count, length) {
		raiseSubarray(index, count, length)
	}
}

// validSubarray never forms index+count, so it cannot overflow.
func validSubarray(index, count, length int) bool {
	return length >= 0 &&
		count >= 0 &&
		uint(index) <= uint(length) &&
		count <= length-index
}

//go:noinline
func raiseSubarray(index, count, length int) {
	switch {
	case length < 0:
		raise(KindSubrange, "length %d is negative", length)
	case count < 0:
		raise(KindSubrange, "count %d is negative", count)
	case uint(index) > uint(length):
		raise(KindSubrange, "index %d is out of range (length %d)", index, length)
	default:
		raise(KindSubrange, "index %d + count %d is larger than length %d", index, count, length)
	}
}

// SubarraysDoNotOverlap raises a subrange violation if the half-open ranges
// [firstIndex, firstIndex+firstCount) and [secondIndex, secondIndex+secondCount)
// share an element. Ranges that only touch do not overlap.
func SubarraysDoNotOverlap(firstIndex, secondIndex, firstCount, secondCount int) {
	if SubarrayChecks && !rangesDisjoint(firstIndex, secondIndex, firstCount, secondCount) {
		raiseOverlap(firstIndex, secondIndex, firstCount, secondCount)
	}
}

func rangesDisjoint(firstIndex, secondIndex, firstCount, secondCount int) bool {
	if firstCount < 0 || secondCount < 0 {
		return false
	}
	lo, loCount, hi, _ := orderRanges(firstIndex, secondIndex, firstCount, secondCount)
	// hi >= lo, so the unsigned difference is the exact distance.
	return uint(loCount) <= uint(hi)-uint(lo)
}

// orderRanges picks the range that starts first. On equal starts the
// shorter range goes first, which keeps the check symmetric.
func orderRanges(firstIndex, secondIndex, firstCount, secondCount int) (lo, loCount, hi, hiCount int) {
	if secondIndex < firstIndex || (secondIndex == firstIndex && secondCount < firstCount) {
		return secondIndex, secondCount, firstIndex, firstCount
	}
	return firstIndex, firstCount, secondIndex, secondCount
}

//go:noinline
func raiseOverlap(firstIndex, secondIndex, firstCount, secondCount int) {
	switch {
	case firstCount < 0:
		raise(KindSubrange, "count %d of subarray at %d is negative", firstCount, firstIndex)
	case secondCount < 0:
		raise(KindSubrange, "count %d of subarray at %d is negative", secondCount, secondIndex)
	}
	lo, loCount, hi, hiCount := orderRanges(firstIndex, secondIndex, firstCount, secondCount)
	raise(KindSubrange, "subarray [%d, %d) overlaps with subarray [%d, %d)",
		lo, lo+loCount, hi, hi+hiCount)
}
