package form

import (
	"fmt"

	"trisolve/internal/triangle"
)

func deriveSWS(in input) State {
	switch {
	case len(in.sides) == 2:
		included := pickThird([2]triangle.Field{in.sides[0].Opposite(), in.sides[1].Opposite()})
		return State{
			Mode:    ModeSides,
			Enabled: only(in.sides[0], in.sides[1], included),
			Hint:    fmt.Sprintf("%s and %s given: enter the angle %s between them", in.sides[0], in.sides[1], included),
		}

	case len(in.angles) == 1:
		given := in.angles[0]
		enclosing := given.Adjacent()
		return State{
			Mode:    ModeAngle,
			Enabled: only(given, enclosing[0], enclosing[1]),
			Hint:    fmt.Sprintf("%s given: enter sides %s and %s", given, enclosing[0], enclosing[1]),
		}
	}

	st := State{
		Mode:    ModeNone,
		Enabled: allOpen(),
		Hint:    "SWS: enter two sides and the angle between them",
	}
	if len(in.angles) > 1 {
		st.Problem = "SWS takes exactly one angle"
	}
	if len(in.sides) > 2 {
		st.Problem = "SWS takes exactly two sides"
	}
	return st
}

// wswPairs lists angle pairs in the order they are tried when several fit.
var wswPairs = [3][2]triangle.Field{
	{triangle.FieldAlpha, triangle.FieldBeta},
	{triangle.FieldAlpha, triangle.FieldGamma},
	{triangle.FieldBeta, triangle.FieldGamma},
}

func deriveWSW(in input) State {
	if len(in.sides) == 1 {
		side := in.sides[0]
		ends := side.Adjacent()
		return State{
			Mode:    ModeSide,
			Enabled: only(side, ends[0], ends[1]),
			Hint:    fmt.Sprintf("side %s given: enter angles %s and %s", side, ends[0], ends[1]),
		}
	}

	if pair, ok := in.wswPair(); ok {
		side := pickThird(pair).Opposite()
		return State{
			Mode:    ModeAngles,
			Enabled: only(pair[0], pair[1], side),
			Hint:    fmt.Sprintf("%s and %s given: enter side %s", pair[0], pair[1], side),
		}
	}

	st := State{
		Mode:    ModeNone,
		Enabled: allOpen(),
		Hint:    "WSW: choose two angles or one side",
	}
	if len(in.sides) > 1 {
		st.Problem = "WSW takes exactly one side"
	}
	return st
}

// wswPair picks the angle pair that steers a WSW form. When all three angles
// are filled in, the pair holding the last edited angle wins.
func (in input) wswPair() ([2]triangle.Field, bool) {
	var candidates [][2]triangle.Field
	for _, p := range wswPairs {
		if has(in.angles, p[0]) && has(in.angles, p[1]) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return [2]triangle.Field{}, false
	}
	for _, p := range candidates {
		if p[0] == in.last || p[1] == in.last {
			return p, true
		}
	}
	return candidates[0], true
}

// pickThird returns the angle not in pair.
func pickThird(pair [2]triangle.Field) triangle.Field {
	for _, f := range triangle.AngleFields {
		if f != pair[0] && f != pair[1] {
			return f
		}
	}
	return pair[0]
}

func deriveSSS(in input) State {
	st := State{
		Mode:    ModeFixed,
		Enabled: only(triangle.SideFields[:]...),
		Hint:    "SSS: enter the three side lengths",
	}
	if len(in.sides) == 3 {
		a, b, c := in.values.A, in.values.B, in.values.C
		if !(a+b > c && a+c > b && b+c > a) {
			st.Problem = "the side lengths violate the triangle inequality: any two sides together must be longer than the third"
		}
	}
	return st
}

func deriveSSW(in input) State {
	switch {
	case len(in.sides) == 2:
		included := pickThird([2]triangle.Field{in.sides[0].Opposite(), in.sides[1].Opposite()})
		allowed := [2]triangle.Field{in.sides[0].Opposite(), in.sides[1].Opposite()}
		st := State{
			Mode:    ModeSides,
			Enabled: only(in.sides[0], in.sides[1], allowed[0], allowed[1]),
			Hint: fmt.Sprintf("%s and %s given: enter angle %s or %s (not %s)",
				in.sides[0], in.sides[1], allowed[0], allowed[1], included),
		}
		if has(in.angles, allowed[0]) && has(in.angles, allowed[1]) {
			st.Problem = "SSW takes exactly one angle"
		}
		return st

	case len(in.angles) >= 1:
		chosen := in.angles[0]
		if has(in.angles, in.last) {
			chosen = in.last
		}
		opposite := chosen.Opposite()
		others := chosen.Adjacent()
		return State{
			Mode:    ModeAngle,
			Enabled: only(chosen, triangle.FieldA, triangle.FieldB, triangle.FieldC),
			Hint: fmt.Sprintf("%s given: enter side %s and exactly one of %s or %s",
				chosen, opposite, others[0], others[1]),
		}
	}

	st := State{
		Mode:    ModeNone,
		Enabled: allOpen(),
		Hint:    "SSW: enter exactly two sides and one angle",
	}
	if len(in.sides) > 2 {
		st.Problem = "SSW takes exactly two sides"
	}
	return st
}
