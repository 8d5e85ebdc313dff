package triangle

import "trisolve/internal/angle"

func validateSSS(spec Spec) (struct{}, error) {
	sides, angles := spec.supplied()
	if len(sides) != 3 || len(angles) != 0 {
		return struct{}{}, newError(KindSchemaCardinalityMismatch, SSS,
			"invalid SSS input: give exactly the three sides and no angle")
	}
	if !closes(spec.A, spec.B, spec.C) {
		return struct{}{}, newError(KindTriangleInequalityViolated, SSS,
			"sides %g, %g, %g violate the triangle inequality: each side must be shorter than the other two together",
			spec.A, spec.B, spec.C)
	}
	return struct{}{}, nil
}

// closes reports whether three lengths satisfy the strict triangle inequality.
func closes(a, b, c float64) bool {
	return a < b+c && b < a+c && c < a+b
}

func computeSSS(spec Spec, _ struct{}) (Solved, error) {
	a, b, c := spec.A, spec.B, spec.C
	alpha := angle.AcosDeg((b*b + c*c - a*a) / (2 * b * c))
	beta := angle.AcosDeg((a*a + c*c - b*b) / (2 * a * c))
	return Solved{
		A: a, B: b, C: c,
		Alpha: alpha,
		Beta:  beta,
		Gamma: angle.Straight - alpha - beta,
	}, nil
}
