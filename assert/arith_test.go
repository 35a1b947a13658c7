package assert

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// boolFromByte reinterprets b as a bool the way foreign memory would be.
//
//go:noinline
func boolFromByte(b *uint8) bool {
	return *(*bool)(unsafe.Pointer(b))
}

func TestIsSafeBoolean(t *testing.T) {
	t.Parallel()

	expectPass(t, func() { IsSafeBoolean(true) })
	expectPass(t, func() { IsSafeBoolean(false) })

	raw := []uint8{0, 1, 2, 255}
	for i, b := range raw {
		p := &raw[i]
		f := func() { IsSafeBooleanPtr((*bool)(unsafe.Pointer(p))) }
		if b <= 1 {
			expectPass(t, f)
			continue
		}
		v := expectViolation(t, ArithmeticChecks, KindUndefinedBehavior, f)
		if v != nil {
			require.Contains(t, v.Msg, "numerical value of the bool is")
		}
	}
}

func TestIsSafeBoolean_ByValue(t *testing.T) {
	t.Parallel()

	raw := uint8(2)
	b := boolFromByte(&raw)
	expectViolation(t, ArithmeticChecks, KindUndefinedBehavior, func() { IsSafeBoolean(b) })
}

func TestIsSafeBooleanPtr_Nil(t *testing.T) {
	t.Parallel()

	expectViolation(t, ArithmeticChecks, KindNullness, func() { IsSafeBooleanPtr(nil) })
}

func TestIsDefinedBitShift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func()
		ok   bool
	}{
		{"int32 by 0", func() { IsDefinedBitShift[int32](0) }, true},
		{"int32 by 31", func() { IsDefinedBitShift[int32](31) }, true},
		{"int32 by 32", func() { IsDefinedBitShift[int32](32) }, false},
		{"int32 by -1", func() { IsDefinedBitShift[int32](-1) }, false},
		{"uint8 by 7", func() { IsDefinedBitShift[uint8](7) }, true},
		{"uint8 by 8", func() { IsDefinedBitShift[uint8](8) }, false},
		{"int16 by 15", func() { IsDefinedBitShift[int16](15) }, true},
		{"uint64 by 63", func() { IsDefinedBitShift[uint64](63) }, true},
		{"uint64 by 64", func() { IsDefinedBitShift[uint64](64) }, false},
		{"int64 by min int", func() { IsDefinedBitShift[int64](math.MinInt) }, false},
		{"unsigned uint32 by 31", func() { IsDefinedBitShiftUnsigned[uint32](31) }, true},
		{"unsigned uint32 by 32", func() { IsDefinedBitShiftUnsigned[uint32](32) }, false},
		{"unsigned int8 by max uint", func() { IsDefinedBitShiftUnsigned[int8](math.MaxUint) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.ok {
				expectPass(t, tt.f)
				return
			}
			expectViolation(t, ArithmeticChecks, KindUndefinedBehavior, tt.f)
		})
	}
}

func TestIsDefinedBitShift_Message(t *testing.T) {
	t.Parallel()

	v := expectViolation(t, ArithmeticChecks, KindUndefinedBehavior, func() { IsDefinedBitShift[int32](32) })
	if v != nil {
		require.Equal(t, "shifting a int32 by 32 results in undefined behavior", v.Msg)
	}
}

func TestDefinedShift_Widths(t *testing.T) {
	t.Parallel()

	require.True(t, definedShift[int8](7))
	require.False(t, definedShift[int8](8))
	require.True(t, definedShift[uint16](15))
	require.False(t, definedShift[uint16](16))
	require.True(t, definedShift[int32](31))
	require.False(t, definedShift[int32](32))
	require.False(t, definedShift[int32](-1))
	require.True(t, definedShift[uint64](63))
	require.False(t, definedShift[uint64](64))

	width := int(unsafe.Sizeof(uint(0))) * 8
	require.True(t, definedShift[uint](width-1))
	require.False(t, definedShift[uint](width))
}
