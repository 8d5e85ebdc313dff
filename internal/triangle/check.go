package triangle

import (
	"math"

	"trisolve/internal/angle"
)

// AngleSumTolerance is how far, in degrees, a solved angle sum may stray from
// 180°.
const AngleSumTolerance = 0.1

// sideSlack is the smallest share of the perimeter a solved side may have.
const sideSlack = 1e-12

// Check is the post-solve safety net run after every solver. It catches
// numerical drift and solver defects rather than user mistakes, but reports
// them the same way.
func Check(t Solved) error {
	for _, f := range AngleFields {
		if v := t.Value(f); !positiveFinite(v) {
			return newError(KindAngleSumOutOfTolerance, "", "invalid angles in solved triangle: %s = %g", f, v)
		}
	}
	if sum := t.Alpha + t.Beta + t.Gamma; math.Abs(sum-angle.Straight) > AngleSumTolerance {
		return newError(KindAngleSumOutOfTolerance, "", "invalid angles in solved triangle: sum is %g°", sum)
	}

	for _, f := range SideFields {
		if v := t.Value(f); !positiveFinite(v) {
			return newError(KindInvalidSolvedSides, "", "invalid sides in solved triangle: %s = %g", f, v)
		}
	}
	if p := t.Perimeter(); math.Min(t.A, math.Min(t.B, t.C)) < sideSlack*p {
		return newError(KindInvalidSolvedSides, "", "invalid sides in solved triangle: %g, %g, %g collapse to a line", t.A, t.B, t.C)
	}
	if !closes(t.A, t.B, t.C) {
		return newError(KindInvalidSolvedSides, "", "invalid sides in solved triangle: %g, %g, %g do not close", t.A, t.B, t.C)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
