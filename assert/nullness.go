package assert

import (
	"reflect"
	"unsafe"
)

// IsNull raises a nullness violation unless ref is nil. A typed nil stored
// in the interface (a nil *T, map, slice, chan, func or unsafe.Pointer)
// counts as nil.
func IsNull(ref any) {
	if NullChecks && !isNil(ref) {
		raise(KindNullness, "expected nil, got non-nil %T", ref)
	}
}

// IsNotNull raises a nullness violation if ref is nil, including a typed nil.
func IsNotNull(ref any) {
	if NullChecks && isNil(ref) {
		raise(KindNullness, "expected non-nil, got nil %T", ref)
	}
}

// IsNullPtr raises a nullness violation unless p is nil. p is never
// dereferenced.
func IsNullPtr(p unsafe.Pointer) {
	if NullChecks && p != nil {
		raise(KindNullness, "expected nil address, got %p", p)
	}
}

// IsNotNullPtr raises a nullness violation if p is nil.
func IsNotNullPtr(p unsafe.Pointer) {
	if NullChecks && p == nil {
		raise(KindNullness, "expected non-nil address")
	}
}

func isNil(ref any) bool {
	if ref == nil {
		return true
	}
	v := reflect.ValueOf(ref)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
