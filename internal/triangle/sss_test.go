package triangle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSS_RightTriangle(t *testing.T) {
	sol := mustSolve(t, Spec{Schema: SSS, A: 3, B: 4, C: 5})

	assertSolved(t, Solved{A: 3, B: 4, C: 5, Alpha: 36.86989764584401, Beta: 53.13010235415599, Gamma: 90}, sol.Solved)
	assert.Equal(t, Classification{Scalene, Right}, sol.Classification)
}

func TestSSS_Equilateral(t *testing.T) {
	sol := mustSolve(t, Spec{Schema: SSS, A: 5, B: 5, C: 5})

	assert.InDelta(t, 60, sol.Alpha, 1e-9)
	assert.InDelta(t, 60, sol.Beta, 1e-9)
	assert.InDelta(t, 60, sol.Gamma, 1e-9)
	assert.Equal(t, Classification{Equilateral, Acute}, sol.Classification)
}

func TestSSS_Rejects(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"degenerate 1 1 3", Spec{Schema: SSS, A: 1, B: 1, C: 3}, ErrTriangleInequalityViolated},
		{"collinear 1 2 3", Spec{Schema: SSS, A: 1, B: 2, C: 3}, ErrTriangleInequalityViolated},
		{"long first side", Spec{Schema: SSS, A: 10, B: 2, C: 3}, ErrTriangleInequalityViolated},
		{"two sides", Spec{Schema: SSS, A: 1, B: 2}, ErrSchemaCardinalityMismatch},
		{"angle supplied", Spec{Schema: SSS, A: 3, B: 4, C: 5, Gamma: 90}, ErrSchemaCardinalityMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSSS_InequalityMessageIsDistinct(t *testing.T) {
	_, ineq := Solve(Spec{Schema: SSS, A: 1, B: 1, C: 3})
	_, card := Solve(Spec{Schema: SSS, A: 1, B: 1})

	require.Error(t, ineq)
	require.Error(t, card)
	assert.NotEqual(t, ineq.Error(), card.Error())
	assert.Contains(t, ineq.Error(), "triangle inequality")
}

func TestSSS_SliverStaysFinite(t *testing.T) {
	// Almost flat; the law of cosines lands at the edge of acos's domain.
	sol := mustSolve(t, Spec{Schema: SSS, A: 1, B: 1, C: 1.9999})
	assert.Greater(t, sol.Alpha, 0.0)
	assert.Greater(t, sol.Gamma, 178.0)
	assert.Equal(t, Obtuse, sol.Angles)
}
