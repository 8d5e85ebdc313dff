package triangle

import "trisolve/internal/angle"

// schemaSolver is one row of the dispatch table. Adding a schema means adding a
// row; the existing rows never change.
type schemaSolver struct {
	solve func(Spec) (Solved, error)
}

// bind pairs a schema's validation step with its computation. The plan P is
// whatever validation learned about the input (for SWS and WSW, which of the
// three positional variants applies) so compute never re-inspects raw fields.
func bind[P any](validate func(Spec) (P, error), compute func(Spec, P) (Solved, error)) schemaSolver {
	return schemaSolver{
		solve: func(spec Spec) (Solved, error) {
			plan, err := validate(spec)
			if err != nil {
				return Solved{}, err
			}
			return compute(spec, plan)
		},
	}
}

var solvers = map[Schema]schemaSolver{
	SWS: bind(validateSWS, computeSWS),
	WSW: bind(validateWSW, computeWSW),
	SSS: bind(validateSSS, computeSSS),
	SSW: bind(validateSSW, computeSSW),
}

// Solution is a solved triangle together with its classification.
type Solution struct {
	Solved         `yaml:",inline"`
	Classification `yaml:",inline"`
}

// Solve dispatches spec to its schema's solver, then runs the post-solve check
// and classifies the result. On error no partial result is returned.
func Solve(spec Spec) (Solution, error) {
	s, ok := solvers[spec.Schema]
	if !ok {
		return Solution{}, newError(KindUnknownSchema, spec.Schema, "invalid schema %q", string(spec.Schema))
	}

	solved, err := s.solve(spec)
	if err != nil {
		return Solution{}, err
	}
	if err := Check(solved); err != nil {
		if e, ok := err.(*Error); ok {
			e.Schema = spec.Schema
		}
		return Solution{}, err
	}

	return Solution{Solved: solved, Classification: Classify(solved)}, nil
}

// sameFields reports whether got holds exactly the two fields in want, both
// being in letter order.
func sameFields(got []Field, want [2]Field) bool {
	return len(got) == 2 && got[0] == want[0] && got[1] == want[1]
}

func contains(fields []Field, f Field) bool {
	for _, g := range fields {
		if g == f {
			return true
		}
	}
	return false
}

// straightOrMore rejects a single given angle that leaves no room for the
// other two.
func straightOrMore(schema Schema, spec Spec, f Field) error {
	if v := spec.Value(f); v >= angle.Straight {
		return newError(KindNoGeometricSolution, schema,
			"no triangle exists: %s = %g° must be less than 180°", f, v)
	}
	return nil
}
