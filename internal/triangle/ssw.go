package triangle

import (
	"math"

	"trisolve/internal/angle"
)

// unitSlack is how far past ±1 a law-of-sines ratio may drift and still be
// treated as touching the boundary rather than as "no triangle".
const unitSlack = 1e-12

// angleSlack is the smallest remaining angle, in degrees, that still counts
// as a third corner. Anything below it is rounding noise of a closed-up
// triangle.
const angleSlack = 1e-9

// sswPlan records which letters play which role in an SSW input.
type sswPlan struct {
	given Field // the supplied angle
	known Field // the supplied side facing it
	other Field // the remaining supplied side
}

func validateSSW(spec Spec) (sswPlan, error) {
	sides, angles := spec.supplied()
	if len(sides) != 2 || len(angles) != 1 {
		return sswPlan{}, newError(KindSchemaCardinalityMismatch, SSW,
			"invalid SSW input: give exactly two sides and one angle")
	}

	given := angles[0]
	if sameFields(sides, given.Adjacent()) {
		return sswPlan{}, newError(KindSchemaCrossoverRejected, SSW,
			"invalid SSW input: %s lies between %s and %s, use SWS for that", given, sides[0], sides[1])
	}

	known := given.Opposite()
	if !contains(sides, known) {
		return sswPlan{}, newError(KindAngleNotOppositeGivenSides, SSW,
			"invalid SSW input: %s must be opposite one of the given sides", given)
	}

	if err := straightOrMore(SSW, spec, given); err != nil {
		return sswPlan{}, err
	}

	plan := sswPlan{given: given, known: known}
	for _, s := range sides {
		if s != known {
			plan.other = s
		}
	}
	return plan, nil
}

// sswCandidate is one way of closing an SSW triangle: the angle facing the
// other given side, and the angle left over.
type sswCandidate struct {
	other     float64
	remaining float64
}

// sswCandidates returns the candidates that leave a remaining angle above
// angleSlack, keeping the order they were offered in.
func sswCandidates(given float64, options ...float64) []sswCandidate {
	var out []sswCandidate
	for _, o := range options {
		if remaining := angle.Straight - given - o; remaining > angleSlack {
			out = append(out, sswCandidate{other: o, remaining: remaining})
		}
	}
	return out
}

// sswOptions computes the law-of-sines candidates for plan, primary first.
func sswOptions(spec Spec, plan sswPlan) ([]sswCandidate, error) {
	g := spec.Value(plan.given)
	ratio := spec.Value(plan.other) * angle.SinDeg(g) / spec.Value(plan.known)
	if math.Abs(ratio) > 1+unitSlack || math.IsNaN(ratio) {
		return nil, newError(KindNoGeometricSolution, SSW,
			"no triangle exists: side %s = %g is too short to reach side %s",
			plan.known, spec.Value(plan.known), plan.other)
	}

	primary := angle.AsinDeg(ratio)
	candidates := sswCandidates(g, primary, angle.Straight-primary)
	if len(candidates) == 0 {
		return nil, newError(KindNoGeometricSolution, SSW,
			"no triangle exists: every candidate for %s leaves no room for a third angle", plan.other.Opposite())
	}
	return candidates, nil
}

// assemble places a chosen candidate into the canonical letter positions.
func (p sswPlan) assemble(spec Spec, c sswCandidate) Solved {
	g := spec.Value(p.given)
	otherAngle := p.other.Opposite()

	var remainingAngle Field
	for _, f := range AngleFields {
		if f != p.given && f != otherAngle {
			remainingAngle = f
		}
	}

	scale := spec.Value(p.known) / angle.SinDeg(g)

	var t Solved
	t.set(p.given, g)
	t.set(p.known, spec.Value(p.known))
	t.set(p.other, spec.Value(p.other))
	t.set(otherAngle, c.other)
	t.set(remainingAngle, c.remaining)
	t.set(remainingAngle.Opposite(), scale*angle.SinDeg(c.remaining))
	return t
}

// computeSSW reports exactly one triangle. When both candidates are valid the
// one with the smaller other angle wins; this is a product decision carried
// over from the calculator this engine backs, not a geometric necessity.
func computeSSW(spec Spec, plan sswPlan) (Solved, error) {
	candidates, err := sswOptions(spec, plan)
	if err != nil {
		return Solved{}, err
	}
	return plan.assemble(spec, candidates[0]), nil
}

// AlternateSSW returns the second SSW triangle when the input admits two. ok is
// false for non-SSW input, for input Solve rejects, and when only one triangle
// exists. Solve itself never returns this solution.
func AlternateSSW(spec Spec) (sol Solution, ok bool) {
	if spec.Schema != SSW {
		return Solution{}, false
	}
	plan, err := validateSSW(spec)
	if err != nil {
		return Solution{}, false
	}
	candidates, err := sswOptions(spec, plan)
	if err != nil || len(candidates) < 2 {
		return Solution{}, false
	}
	// Tangent case: both candidates are the same right angle.
	if math.Abs(candidates[0].other-candidates[1].other) < RightAngleTolerance {
		return Solution{}, false
	}

	solved := plan.assemble(spec, candidates[1])
	if Check(solved) != nil {
		return Solution{}, false
	}
	return Solution{Solved: solved, Classification: Classify(solved)}, true
}
