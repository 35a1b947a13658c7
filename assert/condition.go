package assert

// IsTrue raises a condition violation unless condition is true.
func IsTrue(condition bool) {
	if ConditionChecks && !condition {
		raise(KindCondition, "expected 'true'")
	}
}

// IsFalse raises a condition violation unless condition is false.
func IsFalse(condition bool) {
	if ConditionChecks && condition {
		raise(KindCondition, "expected 'false'")
	}
}
