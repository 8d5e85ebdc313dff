package triangle

import "trisolve/internal/angle"

// wswVariant says which side was given; the two angles at its ends are
// implied.
type wswVariant int

const (
	wswSideA wswVariant = iota // beta, gamma, a
	wswSideB                   // alpha, gamma, b
	wswSideC                   // alpha, beta, c
)

func (v wswVariant) side() Field {
	return SideFields[v]
}

func validateWSW(spec Spec) (wswVariant, error) {
	sides, angles := spec.supplied()
	if len(sides) == 1 && len(angles) == 2 {
		for v := wswSideA; v <= wswSideC; v++ {
			ends := v.side().Adjacent()
			if sides[0] == v.side() && sameFields(angles, ends) {
				if sum := spec.Value(ends[0]) + spec.Value(ends[1]); sum >= angle.Straight {
					return 0, newError(KindNoGeometricSolution, WSW,
						"no triangle exists: %s + %s = %g° leaves no room for a third angle",
						ends[0], ends[1], sum)
				}
				return v, nil
			}
		}
	}
	return 0, newError(KindSchemaCardinalityMismatch, WSW,
		"invalid WSW input: give exactly two angles and the side between them")
}

func computeWSW(spec Spec, v wswVariant) (Solved, error) {
	side := v.side()
	ends := side.Adjacent()
	facing := side.Opposite()

	var t Solved
	t.set(side, spec.Value(side))
	t.set(ends[0], spec.Value(ends[0]))
	t.set(ends[1], spec.Value(ends[1]))
	t.set(facing, angle.Straight-spec.Value(ends[0])-spec.Value(ends[1]))

	// Law of sines with the given side and the angle facing it as the ratio.
	ratio := spec.Value(side) / angle.SinDeg(t.Value(facing))
	for _, end := range ends {
		t.set(end.Opposite(), ratio*angle.SinDeg(t.Value(end)))
	}
	return t, nil
}
