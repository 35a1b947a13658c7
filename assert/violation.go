package assert

import (
	"errors"
	"fmt"

	"github.com/sufield/devcheck/internal/debug"
)

// Kind identifies which family of checks raised a Violation.
type Kind uint8

const (
	KindCondition Kind = iota
	KindNullness
	KindResourceMissing
	KindBounds
	KindSubrange
	KindRange
	KindUndefinedBehavior
)

var kindNames = [...]string{
	KindCondition:         "condition",
	KindNullness:          "nullness",
	KindResourceMissing:   "resource missing",
	KindBounds:            "bounds",
	KindSubrange:          "subrange",
	KindRange:             "range",
	KindUndefinedBehavior: "undefined behavior",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sentinel errors, one per Kind. A *Violation unwraps to the sentinel of its
// kind, so hosts can match with errors.Is.
var (
	ErrCondition         = errors.New("condition violation")
	ErrNullness          = errors.New("nullness violation")
	ErrResourceMissing   = errors.New("resource missing violation")
	ErrBounds            = errors.New("bounds violation")
	ErrSubrange          = errors.New("subrange violation")
	ErrRange             = errors.New("range violation")
	ErrUndefinedBehavior = errors.New("undefined behavior violation")
)

var kindErrs = [...]error{
	KindCondition:         ErrCondition,
	KindNullness:          ErrNullness,
	KindResourceMissing:   ErrResourceMissing,
	KindBounds:            ErrBounds,
	KindSubrange:          ErrSubrange,
	KindRange:             ErrRange,
	KindUndefinedBehavior: ErrUndefinedBehavior,
}

// Violation is the value a failed check panics with.
type Violation struct {
	Kind Kind
	Msg  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("INVARIANT VIOLATION [%s]: %s", v.Kind, v.Msg)
}

// Unwrap returns the sentinel error for the violation's kind.
func (v *Violation) Unwrap() error {
	if int(v.Kind) < len(kindErrs) {
		return kindErrs[v.Kind]
	}
	return nil
}

// raise builds the violation and panics with it. It is kept out of line so
// the checks themselves stay small enough to inline.
//
//go:noinline
func raise(kind Kind, format string, args ...any) {
	v := &Violation{Kind: kind, Msg: fmt.Sprintf(format, args...)}
	debug.LogViolation(v.Error())
	panic(v)
}

// Capture runs f and returns the Violation it raised, or nil if f returned
// normally. Panics that are not violations are re-raised unchanged.
func Capture(f func()) (v *Violation) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if got, ok := r.(*Violation); ok {
			v = got
			return
		}
		panic(r)
	}()
	f()
	return nil
}
