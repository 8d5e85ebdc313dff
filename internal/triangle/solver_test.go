package triangle

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestSolve_UnknownSchema(t *testing.T) {
	for _, tag := range []Schema{"", "SAS", "sws", "AAA"} {
		_, err := Solve(Spec{Schema: tag, A: 3, B: 4, C: 5})
		require.Error(t, err, "schema %q", tag)
		assert.True(t, errors.Is(err, ErrUnknownSchema))
	}
}

func TestSolve_DoesNotTouchInput(t *testing.T) {
	spec := Spec{Schema: WSW, Alpha: 40, Beta: 70, C: 4.8}
	before := spec

	_, err := Solve(spec)
	require.NoError(t, err)
	assert.Equal(t, before, spec)
}

func TestSolve_EveryTableRowDispatches(t *testing.T) {
	for _, s := range Schemas {
		_, ok := solvers[s]
		assert.True(t, ok, "schema %s has no solver", s)
	}
	assert.Len(t, solvers, len(Schemas))
}

// PropertySuite re-derives a set of reference triangles through every schema
// and checks that they agree.
type PropertySuite struct {
	suite.Suite
	references []Solved
}

func (s *PropertySuite) SetupSuite() {
	lengths := []float64{1, 2.5, 3, 4, 6.25, 7, 10}
	for _, a := range lengths {
		for _, b := range lengths {
			for _, c := range lengths {
				sol, err := Solve(Spec{Schema: SSS, A: a, B: b, C: c})
				if err != nil {
					continue
				}
				// Skip slivers, where re-derivation is ill-conditioned.
				if math.Min(sol.Alpha, math.Min(sol.Beta, sol.Gamma)) < 2 {
					continue
				}
				s.references = append(s.references, sol.Solved)
			}
		}
	}
	s.Require().NotEmpty(s.references)
}

func (s *PropertySuite) assertSame(want, got Solved, how string) {
	for _, f := range SideFields {
		w, g := want.Value(f), got.Value(f)
		s.InDelta(0, math.Abs(w-g)/w, 1e-6, "%s: side %s want %g got %g", how, f, w, g)
	}
	for _, f := range AngleFields {
		s.InDelta(want.Value(f), got.Value(f), 1e-6, "%s: angle %s", how, f)
	}
}

func (s *PropertySuite) TestInvariants() {
	for _, ref := range s.references {
		s.InDelta(180, ref.Alpha+ref.Beta+ref.Gamma, AngleSumTolerance)
		s.Less(ref.A, ref.B+ref.C)
		s.Less(ref.B, ref.A+ref.C)
		s.Less(ref.C, ref.A+ref.B)
	}
}

func (s *PropertySuite) TestRoundTripWSW() {
	for _, ref := range s.references {
		for _, side := range SideFields {
			ends := side.Adjacent()
			spec := ref.Present(WSW, side, ends[0], ends[1])
			sol, err := Solve(spec)
			s.Require().NoError(err, "%+v", spec)
			s.assertSame(ref, sol.Solved, "WSW "+side.String())
		}
	}
}

func (s *PropertySuite) TestRoundTripSWS() {
	for _, ref := range s.references {
		for _, included := range AngleFields {
			sides := included.Adjacent()
			spec := ref.Present(SWS, included, sides[0], sides[1])
			sol, err := Solve(spec)
			s.Require().NoError(err, "%+v", spec)
			s.assertSame(ref, sol.Solved, "SWS "+included.String())
		}
	}
}

func (s *PropertySuite) TestRoundTripSSW() {
	for _, ref := range s.references {
		// The angle facing the longest side pins down a single triangle, so the
		// preferred candidate must be the reference itself.
		longest := FieldA
		for _, f := range SideFields {
			if ref.Value(f) > ref.Value(longest) {
				longest = f
			}
		}
		for _, other := range SideFields {
			if other == longest {
				continue
			}
			spec := ref.Present(SSW, longest, other, longest.Opposite())
			sol, err := Solve(spec)
			s.Require().NoError(err, "%+v", spec)
			s.assertSame(ref, sol.Solved, "SSW "+longest.String()+other.String())
		}
	}
}

func (s *PropertySuite) TestClassificationIsPure() {
	for _, ref := range s.references {
		s.Equal(Classify(ref), Classify(ref))
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
