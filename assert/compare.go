package assert

import (
	"cmp"

	"fortio.org/safecast"
)

// Integer is any integer type, signed or unsigned.
type Integer interface {
	safecast.Integer
}

// Number is any integer or floating-point type.
type Number interface {
	safecast.Number
}

// Zero is neither positive nor negative. NaN fails every sign check.

// IsPositive raises a range violation unless value > 0.
func IsPositive[T Number](value T) {
	if CompareChecks && !(value > 0) {
		raise(KindRange, "%v was expected to be positive", value)
	}
}

// IsNegative raises a range violation unless value < 0.
func IsNegative[T Number](value T) {
	if CompareChecks && !(value < 0) {
		raise(KindRange, "%v was expected to be negative", value)
	}
}

// IsNonNegative raises a range violation unless value >= 0.
func IsNonNegative[T Number](value T) {
	if CompareChecks && !(value >= 0) {
		raise(KindRange, "%v was expected to be positive or equal to zero", value)
	}
}

// IsNotPositive raises a range violation unless value <= 0.
func IsNotPositive[T Number](value T) {
	if CompareChecks && !(value <= 0) {
		raise(KindRange, "%v was expected to be negative or equal to zero", value)
	}
}

// AreEqual raises a range violation unless a == b. Comparing interface
// values whose dynamic type is not comparable panics as == does.
func AreEqual[T comparable](a, b T) {
	if CompareChecks && a != b {
		raise(KindRange, "%v was expected to be equal to %v", a, b)
	}
}

// AreNotEqual raises a range violation if a == b.
func AreNotEqual[T comparable](a, b T) {
	if CompareChecks && a == b {
		raise(KindRange, "%v was expected not to be equal to %v", a, b)
	}
}

// The ordered checks below use cmp.Compare, under which NaN sorts before
// every other value. The Func variants accept any three-way comparison
// (negative, zero, positive), such as time.Time.Compare or big.Int.Cmp.

// IsBetween raises a range violation unless lo <= value <= hi.
func IsBetween[T cmp.Ordered](value, lo, hi T) {
	IsBetweenFunc(value, lo, hi, cmp.Compare[T])
}

// IsBetweenFunc is IsBetween ordered by compare.
func IsBetweenFunc[T any](value, lo, hi T, compare func(a, b T) int) {
	if CompareChecks && (compare(value, lo) < 0 || compare(value, hi) > 0) {
		raise(KindRange, "Min: %v, Max: %v, Value: %v", lo, hi, value)
	}
}

// IsSmaller raises a range violation unless value < limit.
func IsSmaller[T cmp.Ordered](value, limit T) {
	IsSmallerFunc(value, limit, cmp.Compare[T])
}

// IsSmallerFunc is IsSmaller ordered by compare.
func IsSmallerFunc[T any](value, limit T, compare func(a, b T) int) {
	if CompareChecks && compare(value, limit) >= 0 {
		raise(KindRange, "%v was expected to be smaller than %v", value, limit)
	}
}

// IsSmallerOrEqual raises a range violation unless value <= limit.
func IsSmallerOrEqual[T cmp.Ordered](value, limit T) {
	IsSmallerOrEqualFunc(value, limit, cmp.Compare[T])
}

// IsSmallerOrEqualFunc is IsSmallerOrEqual ordered by compare.
func IsSmallerOrEqualFunc[T any](value, limit T, compare func(a, b T) int) {
	if CompareChecks && compare(value, limit) > 0 {
		raise(KindRange, "%v was expected to be smaller than or equal to %v", value, limit)
	}
}

// IsGreater raises a range violation unless value > limit.
func IsGreater[T cmp.Ordered](value, limit T) {
	IsGreaterFunc(value, limit, cmp.Compare[T])
}

// IsGreaterFunc is IsGreater ordered by compare.
func IsGreaterFunc[T any](value, limit T, compare func(a, b T) int) {
	if CompareChecks && compare(value, limit) <= 0 {
		raise(KindRange, "%v was expected to be greater than %v", value, limit)
	}
}

// IsGreaterOrEqual raises a range violation unless value >= limit.
func IsGreaterOrEqual[T cmp.Ordered](value, limit T) {
	IsGreaterOrEqualFunc(value, limit, cmp.Compare[T])
}

// IsGreaterOrEqualFunc is IsGreaterOrEqual ordered by compare.
func IsGreaterOrEqualFunc[T any](value, limit T, compare func(a, b T) int) {
	if CompareChecks && compare(value, limit) < 0 {
		raise(KindRange, "%v was expected to be greater than or equal to %v", value, limit)
	}
}

// IsNotSmaller raises a range violation only when value < limit.
func IsNotSmaller[T cmp.Ordered](value, limit T) {
	IsNotSmallerFunc(value, limit, cmp.Compare[T])
}

// IsNotSmallerFunc is IsNotSmaller ordered by compare.
func IsNotSmallerFunc[T any](value, limit T, compare func(a, b T) int) {
	if CompareChecks && compare(value, limit) < 0 {
		raise(KindRange, "%v was expected not to be smaller than %v", value, limit)
	}
}

// IsNotGreater raises a range violation only when value > limit.
func IsNotGreater[T cmp.Ordered](value, limit T) {
	IsNotGreaterFunc(value, limit, cmp.Compare[T])
}

// IsNotGreaterFunc is IsNotGreater ordered by compare.
func IsNotGreaterFunc[T any](value, limit T, compare func(a, b T) int) {
	if CompareChecks && compare(value, limit) > 0 {
		raise(KindRange, "%v was expected not to be greater than %v", value, limit)
	}
}
