package triangle

import (
	"math"

	"trisolve/internal/angle"
)

// swsVariant says which angle was given; the two sides enclosing it are
// implied.
type swsVariant int

const (
	swsAlpha swsVariant = iota // alpha, b, c
	swsBeta                    // beta, a, c
	swsGamma                   // gamma, a, b
)

func (v swsVariant) included() Field {
	return AngleFields[v]
}

func validateSWS(spec Spec) (swsVariant, error) {
	sides, angles := spec.supplied()
	if len(angles) == 1 && len(sides) == 2 {
		for v := swsAlpha; v <= swsGamma; v++ {
			if angles[0] == v.included() && sameFields(sides, v.included().Adjacent()) {
				if err := straightOrMore(SWS, spec, v.included()); err != nil {
					return 0, err
				}
				return v, nil
			}
		}
	}
	return 0, newError(KindSchemaCardinalityMismatch, SWS,
		"invalid SWS input: give exactly one angle and the two sides enclosing it")
}

func computeSWS(spec Spec, v swsVariant) (Solved, error) {
	included := v.included()
	enclosing := included.Adjacent()
	theta := spec.Value(included)
	s1, s2 := spec.Value(enclosing[0]), spec.Value(enclosing[1])

	// Law of cosines for the side facing the given angle.
	opposite := math.Sqrt(s1*s1 + s2*s2 - 2*s1*s2*angle.CosDeg(theta))

	// And again, solved for the cosine of the angle facing s1.
	facingS1 := angle.AcosDeg((opposite*opposite + s2*s2 - s1*s1) / (2 * opposite * s2))

	var t Solved
	t.set(included, theta)
	t.set(enclosing[0], s1)
	t.set(enclosing[1], s2)
	t.set(included.Opposite(), opposite)
	t.set(enclosing[0].Opposite(), facingS1)
	t.set(enclosing[1].Opposite(), angle.Straight-theta-facingS1)
	return t, nil
}
