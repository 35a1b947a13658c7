package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// expectViolation runs f and checks that it raised a violation of kind when
// the owning category is compiled in, and that it did nothing otherwise.
func expectViolation(t *testing.T, enabled bool, kind Kind, f func()) *Violation {
	t.Helper()

	v := Capture(f)
	if !enabled {
		require.Nil(t, v, "disabled check must be a no-op")
		return nil
	}
	require.NotNil(t, v, "expected a %s violation", kind)
	require.Equal(t, kind, v.Kind, "unexpected kind for %q", v.Msg)
	return v
}

// expectPass runs f and checks that it raised nothing.
func expectPass(t *testing.T, f func()) {
	t.Helper()
	require.Nil(t, Capture(f))
}
