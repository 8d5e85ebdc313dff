package triangle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWSW_Golden(t *testing.T) {
	sol := mustSolve(t, Spec{Schema: WSW, Alpha: 40, Beta: 70, C: 4.8})

	assert.InDelta(t, 70.0, sol.Gamma, 1e-9)
	assert.InDelta(t, 3.2833933759264196, sol.A, 1e-9)
	assert.InDelta(t, 4.8, sol.B, 1e-9)
	assert.Equal(t, Classification{Isosceles, Acute}, sol.Classification)
}

func TestWSW_Variants(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want Solved
	}{
		{
			name: "side a between beta and gamma",
			spec: Spec{Schema: WSW, Beta: 60, Gamma: 60, A: 2},
			want: Solved{A: 2, B: 2, C: 2, Alpha: 60, Beta: 60, Gamma: 60},
		},
		{
			name: "side b between alpha and gamma",
			spec: Spec{Schema: WSW, Alpha: 30, Gamma: 90, B: 2},
			want: Solved{A: 1.1547005383792515, B: 2, C: 2.3094010767585034, Alpha: 30, Beta: 60, Gamma: 90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := mustSolve(t, tt.spec)
			assertSolved(t, tt.want, sol.Solved)
		})
	}
}

func TestWSW_Rejects(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"side not between the angles", Spec{Schema: WSW, Alpha: 40, Beta: 70, A: 3}, ErrSchemaCardinalityMismatch},
		{"three angles", Spec{Schema: WSW, Alpha: 40, Beta: 70, Gamma: 70, C: 3}, ErrSchemaCardinalityMismatch},
		{"two sides", Spec{Schema: WSW, Alpha: 40, B: 3, C: 3}, ErrSchemaCardinalityMismatch},
		{"angles fill 180", Spec{Schema: WSW, Alpha: 100, Beta: 80, C: 3}, ErrNoGeometricSolution},
		{"angles exceed 180", Spec{Schema: WSW, Alpha: 120, Beta: 80, C: 3}, ErrNoGeometricSolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
