package triangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   Solved
		want Classification
	}{
		{
			name: "equilateral",
			in:   Solved{A: 2, B: 2, C: 2, Alpha: 60, Beta: 60, Gamma: 60},
			want: Classification{Equilateral, Acute},
		},
		{
			name: "equilateral within tolerance",
			in:   Solved{A: 2, B: 2.005, C: 1.996, Alpha: 60, Beta: 60.2, Gamma: 59.8},
			want: Classification{Equilateral, Acute},
		},
		{
			name: "isosceles a c",
			in:   Solved{A: 2, B: 3, C: 2, Alpha: 41.41, Beta: 97.18, Gamma: 41.41},
			want: Classification{Isosceles, Obtuse},
		},
		{
			name: "just outside side tolerance",
			in:   Solved{A: 2, B: 3, C: 2.011, Alpha: 41, Beta: 97, Gamma: 42},
			want: Classification{Scalene, Obtuse},
		},
		{
			name: "right",
			in:   Solved{A: 3, B: 4, C: 5, Alpha: 36.87, Beta: 53.13, Gamma: 90},
			want: Classification{Scalene, Right},
		},
		{
			name: "right wins over noisy obtuse",
			in:   Solved{A: 3, B: 4, C: 5, Alpha: 36.865, Beta: 53.13, Gamma: 90.005},
			want: Classification{Scalene, Right},
		},
		{
			name: "just past right",
			in:   Solved{A: 3, B: 4, C: 5.01, Alpha: 36.8, Beta: 53.18, Gamma: 90.02},
			want: Classification{Scalene, Obtuse},
		},
		{
			name: "acute",
			in:   Solved{A: 4, B: 5, C: 6, Alpha: 41.41, Beta: 55.77, Gamma: 82.82},
			want: Classification{Scalene, Acute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	in := Solved{A: 7, B: 10, C: 13.56, Alpha: 30, Beta: 45.58, Gamma: 104.42}
	first := Classify(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(in))
	}
}
