package assert

import (
	"unsafe"

	"fortio.org/safecast"
)

// IsSafeBoolean raises an undefined-behavior violation if the byte backing
// x is neither 0 nor 1. Go only produces such a bool through unsafe
// reinterpretation of foreign memory, but nothing in the type system stops
// that, and branches on it may then disagree with each other.
func IsSafeBoolean(x bool) {
	if ArithmeticChecks {
		checkBoolByte(*(*uint8)(unsafe.Pointer(&x)))
	}
}

// IsSafeBooleanPtr is IsSafeBoolean for a bool read in place.
func IsSafeBooleanPtr(p *bool) {
	if ArithmeticChecks {
		if p == nil {
			raise(KindNullness, "expected non-nil *bool")
		}
		checkBoolByte(*(*uint8)(unsafe.Pointer(p)))
	}
}

func checkBoolByte(b uint8) {
	if b > 1 {
		raise(KindUndefinedBehavior, "the numerical value of the bool is %d, which can lead to undefined behavior", b)
	}
}

// IsDefinedBitShift raises an undefined-behavior violation unless
// 0 <= amount < the bit width of T. Go defines over-wide shifts (they yield
// 0 or -1) and panics on negative ones, but either is almost always a bug in
// code that ports bit tricks from C.
func IsDefinedBitShift[T Integer](amount int) {
	if ArithmeticChecks && !definedShift[T](amount) {
		var zero T
		raise(KindUndefinedBehavior, "shifting a %T by %d results in undefined behavior", zero, amount)
	}
}

// IsDefinedBitShiftUnsigned is IsDefinedBitShift for an unsigned amount.
func IsDefinedBitShiftUnsigned[T Integer](amount uint) {
	if !ArithmeticChecks {
		return
	}
	n, err := safecast.Conv[int](amount)
	if err != nil {
		var zero T
		raise(KindUndefinedBehavior, "shifting a %T by %d results in undefined behavior: %v", zero, amount, err)
	}
	IsDefinedBitShift[T](n)
}

// definedShift compares once, unsigned, so negative amounts fail too.
func definedShift[T Integer](amount int) bool {
	var zero T
	return uint(amount) < uint(unsafe.Sizeof(zero))*8
}
