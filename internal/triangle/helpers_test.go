package triangle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// approx compares floats to nine decimal places.
var approx = cmpopts.EquateApprox(0, 1e-9)

func mustSolve(t *testing.T, spec Spec) Solution {
	t.Helper()
	sol, err := Solve(spec)
	require.NoError(t, err, "spec %+v", spec)
	return sol
}

func assertSolved(t *testing.T, want Solved, got Solved) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("solved triangle mismatch (-want +got):\n%s", diff)
	}
}
