// Package form derives, for a partially filled triangle form, which inputs are
// open, which are locked and what to tell the user next. It mirrors the solver's
// schema rules so that a front end can steer input before calling the engine.
//
// Derive is a pure function of the current values; callers keep whatever UI
// state they need (focus, last edited field) themselves.
package form

import (
	"trisolve/internal/angle"
	"trisolve/internal/triangle"
)

// NoField marks "no field edited yet".
const NoField triangle.Field = -1

// Mode names which branch of a schema's rules is steering the form.
type Mode string

const (
	ModeNone   Mode = "none"   // nothing decisive entered yet; everything open
	ModeSides  Mode = "sides"  // a pair of sides fixes the rest
	ModeAngle  Mode = "angle"  // a single angle fixes the rest
	ModeAngles Mode = "angles" // a pair of angles fixes the rest
	ModeSide   Mode = "side"   // a single side fixes the rest
	ModeFixed  Mode = "fixed"  // the schema has only one layout (SSS)
)

// State is the derived form state.
type State struct {
	Schema  triangle.Schema
	Mode    Mode
	Enabled [6]bool // indexed by triangle.Field
	Hint    string
	Problem string
	Ready   bool
}

// IsEnabled reports whether f accepts input.
func (s State) IsEnabled(f triangle.Field) bool {
	return f >= triangle.FieldA && f <= triangle.FieldGamma && s.Enabled[f]
}

// Disabled lists the locked fields in letter order.
func (s State) Disabled() []triangle.Field {
	var out []triangle.Field
	for f := triangle.FieldA; f <= triangle.FieldGamma; f++ {
		if !s.Enabled[f] {
			out = append(out, f)
		}
	}
	return out
}

// Derive computes the form state for values under values.Schema. last is the
// most recently edited field, or NoField.
func Derive(values triangle.Spec, last triangle.Field) State {
	in := newInput(values, last)

	var st State
	switch values.Schema {
	case triangle.SWS:
		st = deriveSWS(in)
	case triangle.WSW:
		st = deriveWSW(in)
	case triangle.SSS:
		st = deriveSSS(in)
	case triangle.SSW:
		st = deriveSSW(in)
	default:
		st = State{Mode: ModeNone, Problem: "choose a schema: SWS, WSW, SSS or SSW"}
		st.Enabled = allOpen()
		return st
	}
	st.Schema = values.Schema

	if st.Problem == "" {
		st.Ready = in.countValid(st.IsEnabled) == 3 && in.countValid(nil) == 3
	}
	return st
}

// input is the validity view of the raw values: an angle must lie strictly
// between 0° and 180°, a side must be positive.
type input struct {
	values triangle.Spec
	last   triangle.Field
	sides  []triangle.Field
	angles []triangle.Field
}

func newInput(values triangle.Spec, last triangle.Field) input {
	in := input{values: values, last: last}
	for _, f := range triangle.SideFields {
		if in.valid(f) {
			in.sides = append(in.sides, f)
		}
	}
	for _, f := range triangle.AngleFields {
		if in.valid(f) {
			in.angles = append(in.angles, f)
		}
	}
	return in
}

func (in input) valid(f triangle.Field) bool {
	if !in.values.Supplied(f) {
		return false
	}
	if f.IsSide() {
		return true
	}
	return in.values.Value(f) < angle.Straight
}

// countValid counts valid values among fields accepted by keep (all when nil).
func (in input) countValid(keep func(triangle.Field) bool) int {
	n := 0
	for f := triangle.FieldA; f <= triangle.FieldGamma; f++ {
		if in.valid(f) && (keep == nil || keep(f)) {
			n++
		}
	}
	return n
}

func has(fields []triangle.Field, f triangle.Field) bool {
	for _, g := range fields {
		if g == f {
			return true
		}
	}
	return false
}

func allOpen() [6]bool {
	return [6]bool{true, true, true, true, true, true}
}

func only(fields ...triangle.Field) [6]bool {
	var out [6]bool
	for _, f := range fields {
		out[f] = true
	}
	return out
}
