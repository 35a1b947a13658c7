package assert

import (
	"errors"
	"fmt"
)

// Category is a group of checks that is switched on or off as a unit at
// build time.
type Category uint8

const (
	Condition Category = iota
	Nullness
	ResourcePath
	Bounds
	Subrange
	Comparison
	ArithmeticLogic
)

// ErrUnknownCategory is returned by ParseCategory for names it does not know.
var ErrUnknownCategory = errors.New("unknown check category")

type categoryInfo struct {
	name    string
	tag     string
	enabled bool
	kind    Kind
}

var categories = [...]categoryInfo{
	Condition:       {"condition", "condition", ConditionChecks, KindCondition},
	Nullness:        {"nullness", "null", NullChecks, KindNullness},
	ResourcePath:    {"resource-path", "filepath", FilePathChecks, KindResourceMissing},
	Bounds:          {"bounds", "bounds", BoundsChecks, KindBounds},
	Subrange:        {"subrange", "subarray", SubarrayChecks, KindSubrange},
	Comparison:      {"comparison", "compare", CompareChecks, KindRange},
	ArithmeticLogic: {"arithmetic-logic", "arith", ArithmeticChecks, KindUndefinedBehavior},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory accepts either a category name ("bounds", "resource-path")
// or its short tag suffix ("filepath", "arith").
func ParseCategory(s string) (Category, error) {
	for i, c := range categories {
		if s == c.name || s == c.tag {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownCategory, s)
}

func (c Category) valid() bool { return int(c) < len(categories) }

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categories[c].name
}

// Tag is the build tag that enables the category on its own.
func (c Category) Tag() string {
	if !c.valid() {
		return ""
	}
	return "check_" + categories[c].tag
}

// OptOutTag is the build tag that disables the category in a debug build.
func (c Category) OptOutTag() string {
	if !c.valid() {
		return ""
	}
	return "nocheck_" + categories[c].tag
}

// Enabled reports whether the category was compiled in.
func (c Category) Enabled() bool {
	return c.valid() && categories[c].enabled
}

// Kind is the violation kind raised by checks in the category.
func (c Category) Kind() Kind {
	if !c.valid() {
		return Kind(255)
	}
	return categories[c].kind
}
